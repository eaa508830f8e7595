package models

import (
	"github.com/google/uuid"
)

// Comment represents a collaboration comment on a task. Leaf of the
// ownership chain; its tenant is the task's project's organization.
type Comment struct {
	BaseModel
	TaskID      uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	Content     string    `json:"content" gorm:"type:text;not null" validate:"required"`
	AuthorEmail string    `json:"author_email" gorm:"not null;size:254" validate:"required,email"`

	// Relationships
	Task Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
