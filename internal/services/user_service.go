package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskhive/task-management-api/internal/models"
	"github.com/taskhive/task-management-api/internal/repository"
	"github.com/taskhive/task-management-api/internal/types"
)

// ErrUserUnderage is returned when the birth date implies an age below 18.
var ErrUserUnderage = errors.New("User must be at least 18 years old")

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	FirstName string
	LastName  string
	BirthDate types.Date
}

// ListUsersInput represents optional name filters for listing users
type ListUsersInput struct {
	FirstName string
	LastName  string
}

// CreateUser persists a new user. The adult-age rule is enforced here as
// well as in request validation, so the service cannot be bypassed.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if input.BirthDate.AgeAt(time.Now()) < 18 {
		return nil, ErrUserUnderage
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ListUsers returns users in insertion order, optionally filtered by a
// case-insensitive substring of the first or last name.
func (s *UserService) ListUsers(input ListUsersInput) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)

	switch {
	case input.FirstName != "":
		users, err = s.userRepo.FindByFirstNameContaining(input.FirstName)
	case input.LastName != "":
		users, err = s.userRepo.FindByLastNameContaining(input.LastName)
	default:
		users, err = s.userRepo.FindAll()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
