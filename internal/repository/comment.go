package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for task comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetWithChain retrieves a comment with its full ownership chain
// (task, project and organization) preloaded for tenant resolution.
func (r *CommentRepository) GetWithChain(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Task.Project.Organization").First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTask retrieves comments for a task, newest first. When orgSlug is
// non-empty the ownership chain is enforced in the query.
func (r *CommentRepository) ListByTask(taskID uuid.UUID, orgSlug string) ([]models.Comment, error) {
	var comments []models.Comment

	query := r.db.Model(&models.Comment{}).Where("comments.task_id = ?", taskID)

	if orgSlug != "" {
		query = query.
			Joins("JOIN tasks ON tasks.id = comments.task_id").
			Joins("JOIN projects ON projects.id = tasks.project_id").
			Joins("JOIN organizations ON organizations.id = projects.organization_id").
			Where("organizations.slug = ?", orgSlug)
	}

	err := query.Order("comments.created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates a comment
func (r *CommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete deletes a comment
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}
