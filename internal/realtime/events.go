package realtime

import (
	"time"

	"project-tracker-backend/internal/database/models"
)

// TaskSnapshot is the externally visible task shape carried by a
// task-changed event.
type TaskSnapshot struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	AssigneeEmail string     `json:"assigneeEmail"`
	DueDate       *time.Time `json:"dueDate"`
}

// CommentSnapshot is the externally visible comment shape carried by a
// comment-added event.
type CommentSnapshot struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTaskSnapshot builds the event snapshot from a persisted task
func NewTaskSnapshot(task *models.Task) TaskSnapshot {
	return TaskSnapshot{
		ID:            task.ID.String(),
		Title:         task.Title,
		Description:   task.Description,
		Status:        string(task.Status),
		AssigneeEmail: task.AssigneeEmail,
		DueDate:       task.DueDate,
	}
}

// NewCommentSnapshot builds the event snapshot from a persisted comment
func NewCommentSnapshot(comment *models.Comment) CommentSnapshot {
	return CommentSnapshot{
		ID:          comment.ID.String(),
		Content:     comment.Content,
		AuthorEmail: comment.AuthorEmail,
		CreatedAt:   comment.CreatedAt,
	}
}
