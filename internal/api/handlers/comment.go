package handlers

import (
	"errors"
	"net/http"

	"project-tracker-backend/internal/api/middleware"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for comments
type CommentHandler struct {
	service service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListTaskComments handles GET /api/v1/tasks/:id/comments
// @Summary List a task's comments
// @Description List comments under a task, newest first
// @Tags comments
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} service.CommentResponse "Successfully retrieved comments"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks/{id}/comments [get]
func (h *CommentHandler) ListTaskComments(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	comments, err := h.service.ListByTask(taskID, middleware.TenantSlug(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetComment handles GET /api/v1/comments/:id
// @Summary Get comment by ID
// @Description Get a comment owned by the tenant; comments of other tenants read as not found
// @Tags comments
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} service.CommentResponse "Successfully retrieved comment"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID: invalid UUID format"})
		return
	}

	comment, err := h.service.Get(id, middleware.TenantSlug(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// CreateComment handles POST /api/v1/comments
// @Summary Create a new comment
// @Description Create a comment under a task and notify the task's comment stream; validation failures are returned in the payload errors list
// @Tags comments
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} service.CommentPayload "Mutation payload"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	payload, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment", "details": err.Error()})
		return
	}
	if len(payload.Errors) > 0 {
		c.JSON(http.StatusOK, payload)
		return
	}

	c.JSON(http.StatusCreated, payload)
}

// UpdateComment handles PUT /api/v1/comments/:id
// @Summary Update a comment
// @Description Partially update a comment; edits are not rebroadcast
// @Tags comments
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Comment ID (UUID)"
// @Param comment body service.UpdateCommentRequest true "Fields to update"
// @Success 200 {object} service.CommentPayload "Mutation payload"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID: invalid UUID format"})
		return
	}

	var req service.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	payload, err := h.service.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// DeleteComment handles DELETE /api/v1/comments/:id
// @Summary Delete a comment
// @Description Delete a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} service.DeletePayload "Deletion payload"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID: invalid UUID format"})
		return
	}

	payload, err := h.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}
