package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/task-management-api/internal/dto"
	apierrors "github.com/taskhive/task-management-api/internal/errors"
	"github.com/taskhive/task-management-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		apierrors.ValidationFailed(c, fieldErrors)
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserUnderage) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// ListUsers returns all users, optionally filtered by name substring
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(services.ListUsersInput{
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}
