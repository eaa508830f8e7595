package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
)

// ProjectStatuses lists every valid project status value
var ProjectStatuses = []ProjectStatus{
	ProjectStatusActive,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
}

// IsValid reports whether the status is part of the closed enumeration
func (s ProjectStatus) IsValid() bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ProjectStatusValues returns the valid status values joined for error messages
func ProjectStatusValues() string {
	values := make([]string, len(ProjectStatuses))
	for i, v := range ProjectStatuses {
		values[i] = string(v)
	}
	return strings.Join(values, ", ")
}

// Project represents a project owned by an organization
type Project struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string        `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string        `json:"description" gorm:"type:text;not null;default:''"`
	Status         ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	DueDate        *time.Time    `json:"due_date"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Tasks        []Task       `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
