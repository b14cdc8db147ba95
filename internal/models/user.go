package models

import (
	"time"

	"github.com/taskhive/task-management-api/internal/types"
)

type User struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	FirstName string     `gorm:"type:varchar(30);not null" json:"firstName"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"lastName"`
	BirthDate types.Date `gorm:"not null" json:"birthDate"`

	// Relations
	CreatedTasks  []Task `gorm:"foreignKey:CreatorID" json:"-"`
	AssignedTasks []Task `gorm:"foreignKey:AssigneeID" json:"-"`
}

// Age is derived from the birth date; it is never stored.
func (u *User) Age() int {
	return u.BirthDate.AgeAt(time.Now())
}
