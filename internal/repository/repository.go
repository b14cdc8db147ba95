package repository

import (
	"github.com/taskhive/task-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindAll returns all users in insertion order
	FindAll() ([]models.User, error)

	// FindByFirstNameContaining returns users whose first name contains the
	// given substring, case-insensitively
	FindByFirstNameContaining(name string) ([]models.User, error)

	// FindByLastNameContaining returns users whose last name contains the
	// given substring, case-insensitively
	FindByLastNameContaining(name string) ([]models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task together with its tag rows
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// FindAll returns all tasks with their relations
	FindAll() ([]models.Task, error)

	// FindByAssigneeID returns tasks assigned to the given user
	FindByAssigneeID(userID uint64) ([]models.Task, error)

	// SearchByTag returns tasks having at least one tag that contains the
	// given substring, case-insensitively
	SearchByTag(tag string) ([]models.Task, error)

	// FindByExactTag returns tasks having a tag equal to the given string
	FindByExactTag(tag string) ([]models.Task, error)

	// Update persists a task, replacing its tag rows with task.Tags
	Update(task *models.Task) error

	// Delete permanently removes a task and its tag rows
	Delete(id uint64) error

	// ExistsByID reports whether a task with the given ID exists
	ExistsByID(id uint64) (bool, error)
}
