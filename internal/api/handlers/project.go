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

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	service service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects handles GET /api/v1/projects
// @Summary List the tenant's projects
// @Description List projects belonging to the tenant, newest first, with optional status and search filters
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param status query string false "Filter by project status"
// @Param search query string false "Case-insensitive match against name and description"
// @Success 200 {array} service.ProjectResponse "Successfully retrieved projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.List(
		middleware.TenantSlug(c),
		c.Query("status"),
		c.Query("search"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /api/v1/projects/:id
// @Summary Get project by ID
// @Description Get a project owned by the tenant; projects of other tenants read as not found
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	project, err := h.service.Get(id, middleware.TenantSlug(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProjectStatistics handles GET /api/v1/projects/:id/statistics
// @Summary Get project task statistics
// @Description Aggregate the project's task counts and completion rate
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectStatisticsResponse "Successfully computed statistics"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/statistics [get]
func (h *ProjectHandler) GetProjectStatistics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	stats, err := h.service.Statistics(id, middleware.TenantSlug(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateProject handles POST /api/v1/projects
// @Summary Create a new project
// @Description Create a project under an organization; validation failures are returned in the payload errors list
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectPayload "Mutation payload"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.OrganizationSlug == "" {
		req.OrganizationSlug = middleware.TenantSlug(c)
	}

	payload, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project", "details": err.Error()})
		return
	}
	if len(payload.Errors) > 0 {
		c.JSON(http.StatusOK, payload)
		return
	}

	c.JSON(http.StatusCreated, payload)
}

// UpdateProject handles PUT /api/v1/projects/:id
// @Summary Update a project
// @Description Partially update a project; omitted fields keep their values
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} service.ProjectPayload "Mutation payload"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	payload, err := h.service.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// DeleteProject handles DELETE /api/v1/projects/:id
// @Summary Delete a project
// @Description Delete a project together with its tasks and comments
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Slug header string true "Tenant organization slug"
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.DeletePayload "Deletion payload"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	payload, err := h.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}
