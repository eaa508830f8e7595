package testutils

import (
	"time"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values. The slug gets a
// UUID suffix so repeated calls do not trip the unique index.
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Name:         "Test Organization",
		Slug:         "test-org-" + id.String()[:8],
		ContactEmail: "contact@test.com",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Project",
		Description:    "A test project",
		Status:         models.ProjectStatusActive,
	}
}

// WithOrganization sets the organization ID for the project
func (f *ProjectFactory) WithOrganization(orgID uuid.UUID) *models.Project {
	project := f.Create()
	project.OrganizationID = orgID
	return project
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ProjectID:     uuid.New(),
		Title:         "Test Task",
		Description:   "A test task",
		Status:        models.TaskStatusTodo,
		AssigneeEmail: "assignee@test.com",
	}
}

// WithProject sets the project ID for the task
func (f *TaskFactory) WithProject(projectID uuid.UUID) *models.Task {
	task := f.Create()
	task.ProjectID = projectID
	return task
}

// WithTitle sets a custom title for the task
func (f *TaskFactory) WithTitle(title string) *models.Task {
	task := f.Create()
	task.Title = title
	return task
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(status models.TaskStatus) *models.Task {
	task := f.Create()
	task.Status = status
	return task
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a test Comment with default values
func (f *CommentFactory) Create() *models.Comment {
	return &models.Comment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TaskID:      uuid.New(),
		Content:     "A test comment",
		AuthorEmail: "author@test.com",
	}
}

// WithTask sets the task ID for the comment
func (f *CommentFactory) WithTask(taskID uuid.UUID) *models.Comment {
	comment := f.Create()
	comment.TaskID = taskID
	return comment
}

// WithContent sets custom content for the comment
func (f *CommentFactory) WithContent(content string) *models.Comment {
	comment := f.Create()
	comment.Content = content
	return comment
}

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Organization *OrganizationFactory
	Project      *ProjectFactory
	Task         *TaskFactory
	Comment      *CommentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Project:      NewProjectFactory(),
		Task:         NewTaskFactory(),
		Comment:      NewCommentFactory(),
	}
}
