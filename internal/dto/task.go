package dto

import (
	"time"

	"github.com/taskhive/task-management-api/internal/models"
	"github.com/taskhive/task-management-api/internal/types"
	"github.com/taskhive/task-management-api/internal/validation"
)

// CreateTaskRequest is the payload for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,notblank,max=100"`
	Description string     `json:"description" validate:"required,notblank,max=1000"`
	EndDate     types.Date `json:"endDate" validate:"required,todayorfuture"`
	CreatorID   uint64     `json:"creatorId" validate:"required"`
	AssigneeID  uint64     `json:"assigneeId" validate:"required"`
	Tags        []string   `json:"tags" validate:"max=7,dive,max=30"`
	Priority    string     `json:"priority" validate:"required,notblank,priority"`
	Status      string     `json:"status" validate:"required,notblank,taskstatus"`
}

var createTaskMessages = map[string]string{
	"title.required":          "Title is required",
	"title.notblank":          "Title is required",
	"title.max":               "Title must have less than 100 characters",
	"description.required":    "Description is required",
	"description.notblank":    "Description is required",
	"description.max":         "Description must have less than 1000 characters",
	"endDate.required":        "End date is required",
	"endDate.todayorfuture":   "End date cannot be in the past",
	"creatorId.required":      "Creator user ID is required",
	"assigneeId.required":     "Assignee user ID is required",
	"tags.max":                "Maximum of 7 tags allowed",
	"tags.item.max":           "Each tag must have less than 30 characters",
	"priority.required":       "Priority is required",
	"priority.notblank":       "Priority is required",
	"priority.priority":       "Invalid priority. Allowed values: LOW, MEDIUM, HIGH",
	"status.required":         "Status is required",
	"status.notblank":         "Status is required",
	"status.taskstatus":       "Invalid status value. Allowed values: PENDING, IN_PROGRESS, COMPLETED",
}

// Validate returns every violated field constraint.
func (r CreateTaskRequest) Validate() []validation.FieldError {
	return validation.Struct(r, createTaskMessages)
}

// UpdateTaskRequest is the partial-update payload for PUT /api/tasks/:id.
// Nil fields mean "leave unchanged".
type UpdateTaskRequest struct {
	Title       *string     `json:"title" validate:"omitempty,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=1000"`
	EndDate     *types.Date `json:"endDate" validate:"omitempty,todayorfuture"`
	Tags        []string    `json:"tags" validate:"omitempty,max=7,dive,max=30"`
	Priority    *string     `json:"priority" validate:"omitempty,priority"`
	Status      *string     `json:"status" validate:"omitempty,taskstatus"`
	AssigneeID  *uint64     `json:"assigneeId"`
}

var updateTaskMessages = map[string]string{
	"title.max":             "Title must have less than 100 characters",
	"description.max":       "Description must have less than 1000 characters",
	"endDate.todayorfuture": "End date cannot be in the past",
	"tags.max":              "Maximum of 7 tags allowed",
	"tags.item.max":         "Each tag must have less than 30 characters",
	"priority.priority":     "Invalid priority. Allowed values: LOW, MEDIUM, HIGH",
	"status.taskstatus":     "Invalid status value. Allowed values: PENDING, IN_PROGRESS, COMPLETED",
}

// Validate returns every violated field constraint.
func (r UpdateTaskRequest) Validate() []validation.FieldError {
	return validation.Struct(r, updateTaskMessages)
}

// UpdateTaskStatusRequest is the payload for PUT /api/tasks/:id/status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	EndDate     types.Date          `json:"endDate"`
	Creator     UserSummaryDTO      `json:"creator"`
	Assignee    UserSummaryDTO      `json:"assignee"`
	Tags        []string            `json:"tags"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		EndDate:     task.EndDate,
		Creator:     ToUserSummaryDTO(task.Creator),
		Assignee:    ToUserSummaryDTO(task.Assignee),
		Tags:        task.TagList(),
		Priority:    task.Priority,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, always yielding a non-nil slice.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, ToTaskDTO(task))
	}
	return dtos
}
