package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhive/task-management-api/internal/types"
)

func validCreateTaskRequest() CreateTaskRequest {
	return CreateTaskRequest{
		Title:       "Walk the dog",
		Description: "Take the dog out for a walk",
		EndDate:     types.DateOf(time.Now().AddDate(0, 0, 7)),
		CreatorID:   1,
		AssigneeID:  2,
		Tags:        []string{"chores"},
		Priority:    "LOW",
		Status:      "PENDING",
	}
}

func TestCreateTaskRequest_Valid(t *testing.T) {
	assert.Empty(t, validCreateTaskRequest().Validate())
}

func TestCreateTaskRequest_EndDateToday(t *testing.T) {
	req := validCreateTaskRequest()
	req.EndDate = types.Today()

	assert.Empty(t, req.Validate())
}

func TestCreateTaskRequest_EndDateInPast(t *testing.T) {
	req := validCreateTaskRequest()
	req.EndDate = types.DateOf(time.Now().AddDate(0, 0, -1))

	errs := req.Validate()
	assert.Equal(t, "End date cannot be in the past", fieldMessage(errs, "endDate"))
}

func TestCreateTaskRequest_MissingUserIDs(t *testing.T) {
	req := validCreateTaskRequest()
	req.CreatorID = 0
	req.AssigneeID = 0

	errs := req.Validate()
	assert.Equal(t, "Creator user ID is required", fieldMessage(errs, "creatorId"))
	assert.Equal(t, "Assignee user ID is required", fieldMessage(errs, "assigneeId"))
}

func TestCreateTaskRequest_TooManyTags(t *testing.T) {
	req := validCreateTaskRequest()
	req.Tags = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	errs := req.Validate()
	assert.Equal(t, "Maximum of 7 tags allowed", fieldMessage(errs, "tags"))
}

func TestCreateTaskRequest_TagTooLong(t *testing.T) {
	req := validCreateTaskRequest()
	req.Tags = []string{strings.Repeat("x", 31)}

	errs := req.Validate()
	assert.Equal(t, "Each tag must have less than 30 characters", fieldMessage(errs, "tags[0]"))
}

func TestCreateTaskRequest_NoTagsIsValid(t *testing.T) {
	req := validCreateTaskRequest()
	req.Tags = nil

	assert.Empty(t, req.Validate())
}

func TestCreateTaskRequest_Priority(t *testing.T) {
	req := validCreateTaskRequest()

	// Case-insensitive input is accepted.
	req.Priority = "medium"
	assert.Empty(t, req.Validate())

	req.Priority = "URGENT"
	errs := req.Validate()
	assert.Equal(t, "Invalid priority. Allowed values: LOW, MEDIUM, HIGH", fieldMessage(errs, "priority"))

	req.Priority = ""
	errs = req.Validate()
	assert.Equal(t, "Priority is required", fieldMessage(errs, "priority"))
}

func TestCreateTaskRequest_Status(t *testing.T) {
	req := validCreateTaskRequest()

	req.Status = "in_progress"
	assert.Empty(t, req.Validate())

	req.Status = "ARCHIVED"
	errs := req.Validate()
	assert.Equal(t,
		"Invalid status value. Allowed values: PENDING, IN_PROGRESS, COMPLETED",
		fieldMessage(errs, "status"))
}

func TestCreateTaskRequest_ReportsAllInvalidFields(t *testing.T) {
	req := CreateTaskRequest{
		Title:       "",
		Description: "",
		EndDate:     types.DateOf(time.Now().AddDate(0, 0, 7)),
		CreatorID:   1,
		AssigneeID:  2,
		Priority:    "LOW",
		Status:      "PENDING",
	}

	errs := req.Validate()
	assert.Len(t, errs, 2)
	assert.Equal(t, "Title is required", fieldMessage(errs, "title"))
	assert.Equal(t, "Description is required", fieldMessage(errs, "description"))
}

func TestUpdateTaskRequest_EmptyPatchIsValid(t *testing.T) {
	assert.Empty(t, UpdateTaskRequest{}.Validate())
}

func TestUpdateTaskRequest_BlankStringsAreValid(t *testing.T) {
	// Blank means "no change"; the service ignores it rather than
	// rejecting the patch.
	blank := ""
	req := UpdateTaskRequest{Title: &blank, Description: &blank}

	assert.Empty(t, req.Validate())
}

func TestUpdateTaskRequest_TitleTooLong(t *testing.T) {
	long := strings.Repeat("t", 101)
	req := UpdateTaskRequest{Title: &long}

	errs := req.Validate()
	assert.Equal(t, "Title must have less than 100 characters", fieldMessage(errs, "title"))
}

func TestUpdateTaskRequest_EndDateInPast(t *testing.T) {
	past := types.DateOf(time.Now().AddDate(0, 0, -3))
	req := UpdateTaskRequest{EndDate: &past}

	errs := req.Validate()
	assert.Equal(t, "End date cannot be in the past", fieldMessage(errs, "endDate"))
}

func TestUpdateTaskRequest_TagBounds(t *testing.T) {
	req := UpdateTaskRequest{Tags: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	errs := req.Validate()
	assert.Equal(t, "Maximum of 7 tags allowed", fieldMessage(errs, "tags"))

	req = UpdateTaskRequest{Tags: []string{strings.Repeat("x", 31)}}
	errs = req.Validate()
	assert.Equal(t, "Each tag must have less than 30 characters", fieldMessage(errs, "tags[0]"))
}

func TestUpdateTaskRequest_InvalidPriority(t *testing.T) {
	bad := "sometime"
	req := UpdateTaskRequest{Priority: &bad}

	errs := req.Validate()
	assert.Equal(t, "Invalid priority. Allowed values: LOW, MEDIUM, HIGH", fieldMessage(errs, "priority"))
}
