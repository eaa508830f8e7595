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

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	service service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListProjectTasks handles GET /api/v1/projects/:id/tasks
// @Summary List a project's tasks
// @Description List tasks under a project, newest first, with optional status and search filters
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Project ID (UUID)"
// @Param status query string false "Filter by task status"
// @Param search query string false "Case-insensitive match against title and description"
// @Success 200 {array} service.TaskResponse "Successfully retrieved tasks"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/tasks [get]
func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	tasks, err := h.service.ListByProject(
		projectID,
		middleware.TenantSlug(c),
		c.Query("status"),
		c.Query("search"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /api/v1/tasks/:id
// @Summary Get task by ID
// @Description Get a task owned by the tenant; tasks of other tenants read as not found
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	task, err := h.service.Get(id, middleware.TenantSlug(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get task", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /api/v1/tasks
// @Summary Create a new task
// @Description Create a task under a project and notify the project's task stream; validation failures are returned in the payload errors list
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskPayload "Mutation payload"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	payload, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task", "details": err.Error()})
		return
	}
	if len(payload.Errors) > 0 {
		c.JSON(http.StatusOK, payload)
		return
	}

	c.JSON(http.StatusCreated, payload)
}

// UpdateTask handles PUT /api/v1/tasks/:id
// @Summary Update a task
// @Description Partially update a task and notify the project's task stream; omitted fields keep their values
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.TaskPayload "Mutation payload"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	payload, err := h.service.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// DeleteTask handles DELETE /api/v1/tasks/:id
// @Summary Delete a task
// @Description Delete a task together with its comments
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.DeletePayload "Deletion payload"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	payload, err := h.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}
