package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	List() ([]OrganizationResponse, error)
	GetBySlug(slug string) (*OrganizationResponse, error)
	Create(req *CreateOrganizationRequest) (*OrganizationPayload, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationPayload, error)
	Delete(id uuid.UUID) (*DeletePayload, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	List(orgSlug, status, search string) ([]ProjectResponse, error)
	Get(id uuid.UUID, tenantSlug string) (*ProjectResponse, error)
	Statistics(id uuid.UUID, tenantSlug string) (*ProjectStatisticsResponse, error)
	Create(req *CreateProjectRequest) (*ProjectPayload, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectPayload, error)
	Delete(id uuid.UUID) (*DeletePayload, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	ListByProject(projectID uuid.UUID, tenantSlug, status, search string) ([]TaskResponse, error)
	Get(id uuid.UUID, tenantSlug string) (*TaskResponse, error)
	Create(req *CreateTaskRequest) (*TaskPayload, error)
	Update(id uuid.UUID, req *UpdateTaskRequest) (*TaskPayload, error)
	Delete(id uuid.UUID) (*DeletePayload, error)
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	ListByTask(taskID uuid.UUID, tenantSlug string) ([]CommentResponse, error)
	Get(id uuid.UUID, tenantSlug string) (*CommentResponse, error)
	Create(req *CreateCommentRequest) (*CommentPayload, error)
	Update(id uuid.UUID, req *UpdateCommentRequest) (*CommentPayload, error)
	Delete(id uuid.UUID) (*DeletePayload, error)
}
