package service

import (
	"errors"
	"fmt"
	"strings"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/realtime"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for comments
type CommentService struct {
	repo      repository.CommentRepositoryInterface
	taskRepo  repository.TaskRepositoryInterface
	publisher realtime.Publisher
	validator *validator.Validate
	log       *logger.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	repo repository.CommentRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	publisher realtime.Publisher,
	validator *validator.Validate,
	log *logger.Logger,
) *CommentService {
	return &CommentService{
		repo:      repo,
		taskRepo:  taskRepo,
		publisher: publisher,
		validator: validator,
		log:       log,
	}
}

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	TaskID      uuid.UUID `json:"task_id" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	AuthorEmail string    `json:"author_email" validate:"required,email"`
}

// UpdateCommentRequest represents the request to update a comment.
// Nil fields are left untouched (partial update semantics).
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}

// CommentResponse represents the response for comment operations
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   string    `json:"created_at"`
}

// CommentPayload is the result of a comment mutation
type CommentPayload struct {
	Comment *CommentResponse       `json:"comment"`
	Errors  []apperrors.FieldError `json:"errors"`
}

// ListByTask retrieves a task's comments, newest first, scoped to the
// tenant when one is present
func (s *CommentService) ListByTask(taskID uuid.UUID, tenantSlug string) ([]CommentResponse, error) {
	comments, err := s.repo.ListByTask(taskID, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = *s.toResponse(&comment)
	}
	return responses, nil
}

// Get retrieves a comment by ID. A comment whose ownership chain ends at
// a different tenant is reported as not found.
func (s *CommentService) Get(id uuid.UUID, tenantSlug string) (*CommentResponse, error) {
	comment, err := s.repo.GetWithChain(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if tenantSlug != "" && comment.Task.Project.Organization.Slug != tenantSlug {
		return nil, apperrors.ErrCommentNotFound
	}
	return s.toResponse(comment), nil
}

// Create validates and creates a new comment under a task, then notifies
// subscribers of the task's comment stream
func (s *CommentService) Create(req *CreateCommentRequest) (*CommentPayload, error) {
	_, err := s.taskRepo.GetByID(req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CommentPayload{Errors: []apperrors.FieldError{
				{Field: "task_id", Message: "Task not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	var fieldErrors []apperrors.FieldError
	if strings.TrimSpace(req.Content) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "content", Message: "Content is required"})
	}
	if req.AuthorEmail == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "author_email", Message: "Author email is required"})
	} else if err := s.validator.Var(req.AuthorEmail, "email"); err != nil {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "author_email", Message: "Invalid email format"})
	}
	if len(fieldErrors) > 0 {
		return &CommentPayload{Errors: fieldErrors}, nil
	}

	comment := &models.Comment{
		TaskID:      req.TaskID,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.notifyCommentAdded(comment)
	return &CommentPayload{Comment: s.toResponse(comment)}, nil
}

// Update applies a partial update to a comment. Edits do not replay on
// the comment stream; only newly added comments are broadcast.
func (s *CommentService) Update(id uuid.UUID, req *UpdateCommentRequest) (*CommentPayload, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CommentPayload{Errors: []apperrors.FieldError{
				{Field: "id", Message: "Comment not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return &CommentPayload{Errors: []apperrors.FieldError{
			{Field: "content", Message: "Content is required"},
		}}, nil
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}

	if err := s.repo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &CommentPayload{Comment: s.toResponse(comment)}, nil
}

// Delete removes a comment
func (s *CommentService) Delete(id uuid.UUID) (*DeletePayload, error) {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deleteFailure("id", "Comment not found"), nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return &DeletePayload{Success: true}, nil
}

// notifyCommentAdded publishes a comment snapshot to the task's comment
// stream. Delivery failures never fail the mutation.
func (s *CommentService) notifyCommentAdded(comment *models.Comment) {
	result := s.publisher.PublishCommentAdded(comment.TaskID, realtime.NewCommentSnapshot(comment))
	s.log.WithFields(map[string]interface{}{
		"comment_id": comment.ID,
		"task_id":    comment.TaskID,
		"matched":    result.Matched,
		"delivered":  result.Delivered,
		"dropped":    result.Dropped,
	}).Debug("Published comment added event")
}

// toResponse converts a comment model to response
func (s *CommentService) toResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          comment.ID,
		TaskID:      comment.TaskID,
		Content:     comment.Content,
		AuthorEmail: comment.AuthorEmail,
		CreatedAt:   comment.CreatedAt.Format(timeFormat),
	}
}
