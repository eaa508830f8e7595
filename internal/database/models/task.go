package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists every valid task status value
var TaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusDone,
}

// IsValid reports whether the status is part of the closed enumeration
func (s TaskStatus) IsValid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// TaskStatusValues returns the valid status values joined for error messages
func TaskStatusValues() string {
	values := make([]string, len(TaskStatuses))
	for i, v := range TaskStatuses {
		values[i] = string(v)
	}
	return strings.Join(values, ", ")
}

// Task represents a work item belonging to a project.
// AssigneeEmail is optional; when set it must be a valid email address.
type Task struct {
	BaseModel
	ProjectID     uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title         string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description   string     `json:"description" gorm:"type:text;not null;default:''"`
	Status        TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'TODO';index"`
	AssigneeEmail string     `json:"assignee_email" gorm:"size:254;not null;default:''" validate:"omitempty,email"`
	DueDate       *time.Time `json:"due_date"`

	// Relationships
	Project  Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
