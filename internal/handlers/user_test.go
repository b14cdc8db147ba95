package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskhive/task-management-api/internal/dto"
	"github.com/taskhive/task-management-api/internal/models"
	"github.com/taskhive/task-management-api/internal/repository"
	"github.com/taskhive/task-management-api/internal/services"
	"github.com/taskhive/task-management-api/internal/types"
)

type userTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userService *services.UserService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{}, &models.TaskTag{})
	require.NoError(t, err)

	userService := services.NewUserService(repository.NewUserRepository(db))
	handler := NewUserHandler(userService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users", handler.CreateUser)
	r.GET("/api/users", handler.ListUsers)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{
		db:          db,
		router:      r,
		userService: userService,
	}
}

func (env userTestEnv) request(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/users", map[string]string{
		"firstName": "Alice",
		"lastName":  "O'Connor",
		"birthDate": "1990-03-15",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "Alice", response.FirstName)
	require.Equal(t, "O'Connor", response.LastName)
	require.Equal(t, types.NewDate(1990, time.March, 15), response.BirthDate)
	require.GreaterOrEqual(t, response.Age, 18)
}

func TestUserHandler_CreateUser_ValidationErrors(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/users", map[string]string{
		"firstName": "Alice123",
		"lastName":  "",
		"birthDate": "1990-03-15",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "VALIDATION_ERROR", response.Code)
	require.Len(t, response.Details, 2)
}

func TestUserHandler_CreateUser_Underage(t *testing.T) {
	env := setupUserTestEnv(t)

	birth := time.Now().AddDate(-18, 0, 1).Format("2006-01-02")
	w := env.request(t, http.MethodPost, "/api/users", map[string]string{
		"firstName": "Young",
		"lastName":  "Person",
		"birthDate": birth,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Contains(t, w.Body.String(), "User must be at least 18 years old")
}

func TestUserHandler_ListUsers(t *testing.T) {
	env := setupUserTestEnv(t)

	for _, name := range []string{"Alice", "Bob", "Alicia"} {
		_, err := env.userService.CreateUser(services.CreateUserInput{
			FirstName: name,
			LastName:  "Tester",
			BirthDate: types.NewDate(1990, time.January, 1),
		})
		require.NoError(t, err)
	}

	w := env.request(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 3)
	require.Equal(t, "Alice", users[0].FirstName)

	w = env.request(t, http.MethodGet, "/api/users?firstName=ali", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)

	w = env.request(t, http.MethodGet, "/api/users?lastName=test", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 3)
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", w.Body.String())
}
