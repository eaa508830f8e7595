package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/realtime"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo        repository.TaskRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	publisher   realtime.Publisher
	validator   *validator.Validate
	log         *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	publisher realtime.Publisher,
	validator *validator.Validate,
	log *logger.Logger,
) *TaskService {
	return &TaskService{
		repo:        repo,
		projectRepo: projectRepo,
		publisher:   publisher,
		validator:   validator,
		log:         log,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	ProjectID     uuid.UUID  `json:"project_id" validate:"required"`
	Title         string     `json:"title" validate:"required,min=1,max=200"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status,omitempty"`
	AssigneeEmail string     `json:"assignee_email,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the request to update a task.
// Nil fields are left untouched (partial update semantics).
type UpdateTaskRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Status        *string    `json:"status,omitempty"`
	AssigneeEmail *string    `json:"assignee_email,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     uuid.UUID  `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	AssigneeEmail string     `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     string     `json:"created_at"`
}

// TaskPayload is the result of a task mutation
type TaskPayload struct {
	Task   *TaskResponse          `json:"task"`
	Errors []apperrors.FieldError `json:"errors"`
}

// ListByProject retrieves a project's tasks with optional status and
// search filters, scoped to the tenant when one is present
func (s *TaskService) ListByProject(projectID uuid.UUID, tenantSlug, status, search string) ([]TaskResponse, error) {
	tasks, err := s.repo.ListByProject(projectID, tenantSlug, models.TaskStatus(status), search)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *s.toResponse(&task)
	}
	return responses, nil
}

// Get retrieves a task by ID. A task whose ownership chain ends at a
// different tenant is reported as not found.
func (s *TaskService) Get(id uuid.UUID, tenantSlug string) (*TaskResponse, error) {
	task, err := s.repo.GetWithChain(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if tenantSlug != "" && task.Project.Organization.Slug != tenantSlug {
		return nil, apperrors.ErrTaskNotFound
	}
	return s.toResponse(task), nil
}

// Create validates and creates a new task under a project, then notifies
// subscribers of the project's task stream
func (s *TaskService) Create(req *CreateTaskRequest) (*TaskPayload, error) {
	_, err := s.projectRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &TaskPayload{Errors: []apperrors.FieldError{
				{Field: "project_id", Message: "Project not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusTodo
	}

	var fieldErrors []apperrors.FieldError
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "title", Message: "Title is required"})
	}
	if !status.IsValid() {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field:   "status",
			Message: "Invalid status. Must be one of: " + models.TaskStatusValues(),
		})
	}
	if req.AssigneeEmail != "" {
		if err := s.validator.Var(req.AssigneeEmail, "email"); err != nil {
			fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "assignee_email", Message: "Invalid email format"})
		}
	}
	if len(fieldErrors) > 0 {
		return &TaskPayload{Errors: fieldErrors}, nil
	}

	task := &models.Task{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       req.DueDate,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.notifyTaskChanged(task)
	return &TaskPayload{Task: s.toResponse(task)}, nil
}

// Update applies a partial update to a task and notifies subscribers
func (s *TaskService) Update(id uuid.UUID, req *UpdateTaskRequest) (*TaskPayload, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &TaskPayload{Errors: []apperrors.FieldError{
				{Field: "id", Message: "Task not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	var fieldErrors []apperrors.FieldError
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "title", Message: "Title is required"})
	}
	if req.Status != nil && !models.TaskStatus(*req.Status).IsValid() {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field:   "status",
			Message: "Invalid status. Must be one of: " + models.TaskStatusValues(),
		})
	}
	if req.AssigneeEmail != nil && *req.AssigneeEmail != "" {
		if err := s.validator.Var(*req.AssigneeEmail, "email"); err != nil {
			fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "assignee_email", Message: "Invalid email format"})
		}
	}
	if len(fieldErrors) > 0 {
		return &TaskPayload{Errors: fieldErrors}, nil
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.AssigneeEmail != nil {
		task.AssigneeEmail = *req.AssigneeEmail
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.notifyTaskChanged(task)
	return &TaskPayload{Task: s.toResponse(task)}, nil
}

// Delete removes a task and cascades to its comments
func (s *TaskService) Delete(id uuid.UUID) (*DeletePayload, error) {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deleteFailure("id", "Task not found"), nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	return &DeletePayload{Success: true}, nil
}

// notifyTaskChanged publishes a task snapshot to the project's task
// stream. Delivery failures never fail the mutation.
func (s *TaskService) notifyTaskChanged(task *models.Task) {
	result := s.publisher.PublishTaskChanged(task.ProjectID, realtime.NewTaskSnapshot(task))
	s.log.WithFields(map[string]interface{}{
		"task_id":    task.ID,
		"project_id": task.ProjectID,
		"matched":    result.Matched,
		"delivered":  result.Delivered,
		"dropped":    result.Dropped,
	}).Debug("Published task change event")
}

// toResponse converts a task model to response
func (s *TaskService) toResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:            task.ID,
		ProjectID:     task.ProjectID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        string(task.Status),
		AssigneeEmail: task.AssigneeEmail,
		DueDate:       task.DueDate,
		CreatedAt:     task.CreatedAt.Format(timeFormat),
	}
}
