package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	taskRepo  repository.TaskRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		repo:      repo,
		orgRepo:   orgRepo,
		taskRepo:  taskRepo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	OrganizationSlug string     `json:"organization_slug" validate:"required"`
	Name             string     `json:"name" validate:"required,min=1,max=200"`
	Description      string     `json:"description,omitempty"`
	Status           string     `json:"status,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
}

// UpdateProjectRequest represents the request to update a project.
// Nil fields are left untouched (partial update semantics).
type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID             uuid.UUID                  `json:"id"`
	OrganizationID uuid.UUID                  `json:"organization_id"`
	Name           string                     `json:"name"`
	Description    string                     `json:"description"`
	Status         string                     `json:"status"`
	DueDate        *time.Time                 `json:"due_date,omitempty"`
	CreatedAt      string                     `json:"created_at"`
	TaskStats      *ProjectStatisticsResponse `json:"task_stats,omitempty"`
}

// ProjectStatisticsResponse aggregates a project's task completion data
type ProjectStatisticsResponse struct {
	TotalTasks      int64   `json:"total_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	TodoTasks       int64   `json:"todo_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
}

// ProjectPayload is the result of a project mutation
type ProjectPayload struct {
	Project *ProjectResponse       `json:"project"`
	Errors  []apperrors.FieldError `json:"errors"`
}

// List retrieves projects for an organization with optional status and
// search filters. Filters are ANDed with the ownership filter; they never
// widen scope beyond the tenant.
func (s *ProjectService) List(orgSlug, status, search string) ([]ProjectResponse, error) {
	projects, err := s.repo.ListByOrganizationSlug(orgSlug, models.ProjectStatus(status), search)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project)
	}
	return responses, nil
}

// Get retrieves a project by ID. When a tenant context is present the
// project's ownership chain must terminate at that tenant; a mismatch is
// indistinguishable from a truly absent id.
func (s *ProjectService) Get(id uuid.UUID, tenantSlug string) (*ProjectResponse, error) {
	project, err := s.getScoped(id, tenantSlug)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(project)
	if stats, err := s.statistics(project.ID); err == nil {
		response.TaskStats = stats
	}
	return response, nil
}

// Statistics computes completion statistics for a project's tasks
func (s *ProjectService) Statistics(id uuid.UUID, tenantSlug string) (*ProjectStatisticsResponse, error) {
	project, err := s.getScoped(id, tenantSlug)
	if err != nil {
		return nil, err
	}
	stats, err := s.statistics(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute project statistics: %w", err)
	}
	return stats, nil
}

// Create validates and creates a new project under an organization
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectPayload, error) {
	org, err := s.orgRepo.GetBySlug(req.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ProjectPayload{Errors: []apperrors.FieldError{
				{Field: "organization_slug", Message: "Organization not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}

	var fieldErrors []apperrors.FieldError
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "name", Message: "Name is required"})
	}
	if !status.IsValid() {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field:   "status",
			Message: "Invalid status. Must be one of: " + models.ProjectStatusValues(),
		})
	}
	if len(fieldErrors) > 0 {
		return &ProjectPayload{Errors: fieldErrors}, nil
	}

	project := &models.Project{
		OrganizationID: org.ID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         status,
		DueDate:        req.DueDate,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &ProjectPayload{Project: s.toResponse(project)}, nil
}

// Update applies a partial update to a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectPayload, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ProjectPayload{Errors: []apperrors.FieldError{
				{Field: "id", Message: "Project not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var fieldErrors []apperrors.FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "name", Message: "Name is required"})
	}
	if req.Status != nil && !models.ProjectStatus(*req.Status).IsValid() {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field:   "status",
			Message: "Invalid status. Must be one of: " + models.ProjectStatusValues(),
		})
	}
	if len(fieldErrors) > 0 {
		return &ProjectPayload{Errors: fieldErrors}, nil
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}
	if req.DueDate != nil {
		project.DueDate = req.DueDate
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &ProjectPayload{Project: s.toResponse(project)}, nil
}

// Delete removes a project and cascades to its tasks and comments
func (s *ProjectService) Delete(id uuid.UUID) (*DeletePayload, error) {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deleteFailure("id", "Project not found"), nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	return &DeletePayload{Success: true}, nil
}

func (s *ProjectService) getScoped(id uuid.UUID, tenantSlug string) (*models.Project, error) {
	project, err := s.repo.GetWithOrganization(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if tenantSlug != "" && project.Organization.Slug != tenantSlug {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) statistics(projectID uuid.UUID) (*ProjectStatisticsResponse, error) {
	counts, err := s.taskRepo.StatusCounts(projectID)
	if err != nil {
		return nil, err
	}
	return &ProjectStatisticsResponse{
		TotalTasks:      counts.Total,
		CompletedTasks:  counts.Completed,
		InProgressTasks: counts.InProgress,
		TodoTasks:       counts.Todo,
		CompletionRate:  completionRate(counts.Completed, counts.Total),
	}, nil
}

// completionRate returns completed/total as a percentage rounded to one
// decimal, and 0 when there are no tasks.
func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		Description:    project.Description,
		Status:         string(project.Status),
		DueDate:        project.DueDate,
		CreatedAt:      project.CreatedAt.Format(timeFormat),
	}
}
