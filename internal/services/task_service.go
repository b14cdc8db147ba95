package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/taskhive/task-management-api/internal/models"
	"github.com/taskhive/task-management-api/internal/repository"
	"github.com/taskhive/task-management-api/internal/types"
)

var (
	ErrTaskNotFound     = errors.New("Task not found")
	ErrCreatorNotFound  = errors.New("Creator not found")
	ErrAssigneeNotFound = errors.New("Assignee not found")
	ErrInvalidStatus    = errors.New("Invalid status value. Allowed values: " +
		strings.Join(models.TaskStatusValues(), ", "))
	ErrInvalidPriority = errors.New("Invalid priority. Allowed values: " +
		strings.Join(models.TaskPriorityValues(), ", "))
)

// taskRelations are the preloads needed to build a full task response.
var taskRelations = []string{"Creator", "Assignee", "Tags"}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	EndDate     types.Date
	CreatorID   uint64
	AssigneeID  uint64
	Tags        []string
	Priority    string
	Status      string
}

// UpdateTaskInput represents a partial update. Nil fields leave the
// current value unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	EndDate     *types.Date
	Tags        []string
	Priority    *string
	Status      *string
	AssigneeID  *uint64
}

// CreateTask creates a task after resolving its creator and assignee.
// The creator is checked first.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	creator, err := s.findUser(input.CreatorID, ErrCreatorNotFound)
	if err != nil {
		return nil, err
	}
	assignee, err := s.findUser(input.AssigneeID, ErrAssigneeNotFound)
	if err != nil {
		return nil, err
	}

	priority, ok := models.ParseTaskPriority(input.Priority)
	if !ok {
		return nil, ErrInvalidPriority
	}
	status, ok := models.ParseTaskStatus(input.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		EndDate:     input.EndDate,
		CreatorID:   creator.ID,
		AssigneeID:  assignee.ID,
		Priority:    priority,
		Status:      status,
	}
	task.SetTags(input.Tags)

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.reload(task.ID)
}

// UpdateTask applies a partial update to an existing task. Blank strings
// are treated as absent, never as "clear the field".
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Tags")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		task.Title = *input.Title
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) != "" {
		task.Description = *input.Description
	}
	if input.EndDate != nil {
		task.EndDate = *input.EndDate
	}
	if len(input.Tags) > 0 {
		task.SetTags(input.Tags)
	}
	if input.Priority != nil {
		priority, ok := models.ParseTaskPriority(*input.Priority)
		if !ok {
			return nil, ErrInvalidPriority
		}
		task.Priority = priority
	}
	if input.Status != nil {
		status, ok := models.ParseTaskStatus(*input.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}
	if input.AssigneeID != nil {
		assignee, err := s.findUser(*input.AssigneeID, ErrAssigneeNotFound)
		if err != nil {
			return nil, err
		}
		task.AssigneeID = assignee.ID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.reload(task.ID)
}

// UpdateTaskStatus sets a task's status. Any status may replace any other;
// there is no transition graph.
func (s *TaskService) UpdateTaskStatus(taskID uint64, newStatus string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Tags")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	status, ok := models.ParseTaskStatus(newStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}
	task.Status = status

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return s.reload(task.ID)
}

// DeleteTask permanently removes a task
func (s *TaskService) DeleteTask(taskID uint64) error {
	exists, err := s.taskRepo.ExistsByID(taskID)
	if err != nil {
		return fmt.Errorf("failed to check task existence: %w", err)
	}
	if !exists {
		return ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListAllTasks returns all tasks
func (s *TaskService) ListAllTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByUser returns tasks assigned to the given user. An unknown
// user yields an empty list, not an error.
func (s *TaskService) ListTasksByUser(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByAssigneeID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by user: %w", err)
	}
	return tasks, nil
}

// SearchTasksByTag finds tasks by tag. The default match is a
// case-insensitive substring; exact requires a tag equal to the query.
// An empty query returns an empty list.
func (s *TaskService) SearchTasksByTag(tag string, exact bool) ([]models.Task, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return []models.Task{}, nil
	}

	var (
		tasks []models.Task
		err   error
	)
	if exact {
		tasks, err = s.taskRepo.FindByExactTag(tag)
	} else {
		tasks, err = s.taskRepo.SearchByTag(tag)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks by tag: %w", err)
	}
	return tasks, nil
}

// findUser resolves a user ID, translating a missing record into the
// given role-specific error.
func (s *TaskService) findUser(id uint64, notFound error) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// reload fetches a task with the relations needed for a full response.
func (s *TaskService) reload(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, taskRelations...)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return task, nil
}
