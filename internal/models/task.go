package models

import (
	"strings"
	"time"

	"github.com/taskhive/task-management-api/internal/types"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// TaskStatusValues returns the canonical status names in declaration order.
func TaskStatusValues() []string {
	return []string{
		string(TaskStatusPending),
		string(TaskStatusInProgress),
		string(TaskStatusCompleted),
	}
}

// ParseTaskStatus matches a status case-insensitively and returns the
// canonical value.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskStatusPending:
		return TaskStatusPending, true
	case TaskStatusInProgress:
		return TaskStatusInProgress, true
	case TaskStatusCompleted:
		return TaskStatusCompleted, true
	}
	return "", false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// TaskPriorityValues returns the canonical priority names in declaration order.
func TaskPriorityValues() []string {
	return []string{
		string(TaskPriorityLow),
		string(TaskPriorityMedium),
		string(TaskPriorityHigh),
	}
}

// ParseTaskPriority matches a priority case-insensitively and returns the
// canonical uppercase value.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch TaskPriority(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskPriorityLow:
		return TaskPriorityLow, true
	case TaskPriorityMedium:
		return TaskPriorityMedium, true
	case TaskPriorityHigh:
		return TaskPriorityHigh, true
	}
	return "", false
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"type:varchar(100);not null" json:"title"`
	Description string       `gorm:"type:varchar(1000);not null" json:"description"`
	EndDate     types.Date   `gorm:"not null" json:"endDate"`
	CreatorID   uint64       `gorm:"not null" json:"creatorId"`
	AssigneeID  uint64       `gorm:"not null" json:"assigneeId"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Relations
	Creator  User      `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Assignee User      `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Tags     []TaskTag `gorm:"foreignKey:TaskID" json:"tags,omitempty"`
}

// TaskTag is one entry of a task's ordered tag list.
type TaskTag struct {
	TaskID   uint64 `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Position int    `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Tag      string `gorm:"type:varchar(30);not null" json:"tag"`
}

// TagList flattens the ordered tag rows into plain strings.
func (t *Task) TagList() []string {
	tags := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tags = append(tags, tag.Tag)
	}
	return tags
}

// SetTags replaces the task's tag rows, preserving list order.
func (t *Task) SetTags(tags []string) {
	t.Tags = make([]TaskTag, 0, len(tags))
	for i, tag := range tags {
		t.Tags = append(t.Tags, TaskTag{TaskID: t.ID, Position: i, Tag: tag})
	}
}
