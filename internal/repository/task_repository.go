package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskhive/task-management-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// orderedTags keeps the tag list in its original order.
func orderedTags(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// withRelations preloads the creator, assignee, and ordered tags.
func (r *GormTaskRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Creator").
		Preload("Assignee").
		Preload("Tags", orderedTags)
}

// Create creates a new task together with its tag rows. Creator and
// assignee are referenced by ID only, never written through the task.
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit("Creator", "Assignee").Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		if p == "Tags" {
			query = query.Preload("Tags", orderedTags)
			continue
		}
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// FindAll returns all tasks with their relations
func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.withRelations(r.db).Order("tasks.id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByAssigneeID returns tasks assigned to the given user
func (r *GormTaskRepository) FindByAssigneeID(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.withRelations(r.db).
		Where("tasks.assignee_id = ?", userID).
		Order("tasks.id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchByTag returns tasks with at least one tag containing the substring
func (r *GormTaskRepository) SearchByTag(tag string) ([]models.Task, error) {
	pattern := "%" + strings.ToLower(tag) + "%"
	tagQuery := r.db.Model(&models.TaskTag{}).
		Select("1").
		Where("task_tags.task_id = tasks.id").
		Where("LOWER(task_tags.tag) LIKE ?", pattern)

	return r.findWhereTagExists(tagQuery)
}

// FindByExactTag returns tasks with a tag equal to the given string
func (r *GormTaskRepository) FindByExactTag(tag string) ([]models.Task, error) {
	tagQuery := r.db.Model(&models.TaskTag{}).
		Select("1").
		Where("task_tags.task_id = tasks.id").
		Where("task_tags.tag = ?", tag)

	return r.findWhereTagExists(tagQuery)
}

func (r *GormTaskRepository) findWhereTagExists(tagQuery *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.withRelations(r.db).
		Where("EXISTS (?)", tagQuery).
		Order("tasks.id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists a task and replaces its tag rows with task.Tags
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}

		if len(task.Tags) == 0 {
			return nil
		}

		for i := range task.Tags {
			task.Tags[i].TaskID = task.ID
		}
		return tx.Create(&task.Tags).Error
	})
}

// Delete permanently removes a task and its tag rows
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

// ExistsByID reports whether a task with the given ID exists
func (r *GormTaskRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
