package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/taskhive/task-management-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll returns all users in insertion order
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByFirstNameContaining returns users whose first name contains the substring
func (r *GormUserRepository) FindByFirstNameContaining(name string) ([]models.User, error) {
	return r.findByNameColumn("first_name", name)
}

// FindByLastNameContaining returns users whose last name contains the substring
func (r *GormUserRepository) FindByLastNameContaining(name string) ([]models.User, error) {
	return r.findByNameColumn("last_name", name)
}

func (r *GormUserRepository) findByNameColumn(column, name string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.
		Where("LOWER("+column+") LIKE ?", pattern).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
