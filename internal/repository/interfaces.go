package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetAll() ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithOrganization(id uuid.UUID) (*models.Project, error)
	ListByOrganizationSlug(slug string, status models.ProjectStatus, search string) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TaskStatusCounts aggregates task counts per status for one project
type TaskStatusCounts struct {
	Total      int64
	Completed  int64
	InProgress int64
	Todo       int64
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetWithChain(id uuid.UUID) (*models.Task, error)
	ListByProject(projectID uuid.UUID, orgSlug string, status models.TaskStatus, search string) ([]models.Task, error)
	StatusCounts(projectID uuid.UUID) (*TaskStatusCounts, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetWithChain(id uuid.UUID) (*models.Comment, error)
	ListByTask(taskID uuid.UUID, orgSlug string) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uuid.UUID) error
}
