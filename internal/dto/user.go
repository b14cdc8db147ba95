package dto

import (
	"time"

	"github.com/taskhive/task-management-api/internal/models"
	"github.com/taskhive/task-management-api/internal/types"
	"github.com/taskhive/task-management-api/internal/validation"
)

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	FirstName string     `json:"firstName" validate:"required,notblank,max=30,personname"`
	LastName  string     `json:"lastName" validate:"required,notblank,max=100,personname"`
	BirthDate types.Date `json:"birthDate" validate:"required,pastdate,minage"`
}

var createUserMessages = map[string]string{
	"firstName.required":   "First name is required",
	"firstName.notblank":   "First name is required",
	"firstName.max":        "First name can have at most 30 characters",
	"firstName.personname": "First name must contain only letters",
	"lastName.required":    "Last name is required",
	"lastName.notblank":    "Last name is required",
	"lastName.max":         "Last name can have at most 100 characters",
	"lastName.personname":  "Last name must contain only letters",
	"birthDate.required":   "Birth date is required",
	"birthDate.pastdate":   "Birth date must be in the past",
	"birthDate.minage":     "User must be at least 18 years old",
}

// Validate returns every violated field constraint.
func (r CreateUserRequest) Validate() []validation.FieldError {
	return validation.Struct(r, createUserMessages)
}

// UserDTO represents a user in API responses, with the derived age.
type UserDTO struct {
	ID        uint64     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate types.Date `json:"birthDate"`
	Age       int        `json:"age"`
}

// UserSummaryDTO is the nested user shape inside task responses.
type UserSummaryDTO struct {
	ID        uint64     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate types.Date `json:"birthDate"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		BirthDate: user.BirthDate,
		Age:       user.BirthDate.AgeAt(time.Now()),
	}
}

// ToUserDTOs converts a slice of users, always yielding a non-nil slice.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, ToUserDTO(user))
	}
	return dtos
}

// ToUserSummaryDTO converts a User model to its nested summary shape
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		BirthDate: user.BirthDate,
	}
}
