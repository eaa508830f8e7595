package models

// Organization represents the root entity for multi-tenancy.
// All descendant data is isolated by organization.
type Organization struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	ContactEmail string `json:"contact_email" gorm:"not null;size:254" validate:"required,email"`

	// Relationships
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
