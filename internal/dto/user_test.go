package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhive/task-management-api/internal/types"
	"github.com/taskhive/task-management-api/internal/validation"
)

func validCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		BirthDate: types.DateOf(time.Now().AddDate(-30, 0, 0)),
	}
}

func fieldMessage(errs []validation.FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func TestCreateUserRequest_Valid(t *testing.T) {
	assert.Empty(t, validCreateUserRequest().Validate())
}

func TestCreateUserRequest_FirstName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		message   string
	}{
		{"empty", "", "First name is required"},
		{"blank", "   ", "First name is required"},
		{"too long", strings.Repeat("a", 31), "First name can have at most 30 characters"},
		{"digits", "John3", "First name must contain only letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateUserRequest()
			req.FirstName = tt.firstName

			errs := req.Validate()
			assert.Equal(t, tt.message, fieldMessage(errs, "firstName"))
		})
	}
}

func TestCreateUserRequest_FirstNameAllowsNamePunctuation(t *testing.T) {
	req := validCreateUserRequest()
	req.FirstName = "Mary-Jane O'Neil"

	assert.Empty(t, req.Validate())
}

func TestCreateUserRequest_LastNameTooLong(t *testing.T) {
	req := validCreateUserRequest()
	req.LastName = strings.Repeat("b", 101)

	errs := req.Validate()
	assert.Equal(t, "Last name can have at most 100 characters", fieldMessage(errs, "lastName"))
}

func TestCreateUserRequest_BirthDateMissing(t *testing.T) {
	req := validCreateUserRequest()
	req.BirthDate = types.Date{}

	errs := req.Validate()
	assert.Equal(t, "Birth date is required", fieldMessage(errs, "birthDate"))
}

func TestCreateUserRequest_BirthDateInFuture(t *testing.T) {
	req := validCreateUserRequest()
	req.BirthDate = types.DateOf(time.Now().AddDate(0, 0, 1))

	errs := req.Validate()
	assert.Equal(t, "Birth date must be in the past", fieldMessage(errs, "birthDate"))
}

func TestCreateUserRequest_MinimumAgeBoundary(t *testing.T) {
	// 18th birthday tomorrow: one day short of 18.
	req := validCreateUserRequest()
	req.BirthDate = types.DateOf(time.Now().AddDate(-18, 0, 1))

	errs := req.Validate()
	assert.Equal(t, "User must be at least 18 years old", fieldMessage(errs, "birthDate"))

	// 18th birthday today: exactly 18.
	req.BirthDate = types.DateOf(time.Now().AddDate(-18, 0, 0))
	assert.Empty(t, req.Validate())
}

func TestCreateUserRequest_ReportsAllInvalidFields(t *testing.T) {
	req := CreateUserRequest{
		FirstName: "",
		LastName:  strings.Repeat("b", 101),
		BirthDate: types.DateOf(time.Now().AddDate(0, 0, 7)),
	}

	errs := req.Validate()
	assert.Len(t, errs, 3)
	assert.Equal(t, "First name is required", fieldMessage(errs, "firstName"))
	assert.Equal(t, "Last name can have at most 100 characters", fieldMessage(errs, "lastName"))
	assert.Equal(t, "Birth date must be in the past", fieldMessage(errs, "birthDate"))
}
