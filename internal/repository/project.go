package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithOrganization retrieves a project with its owning organization,
// so callers can resolve the project's tenant.
func (r *ProjectRepository) GetWithOrganization(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Organization").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByOrganizationSlug retrieves projects owned by the organization with
// the given slug, newest first. Status and search filters are ANDed with
// the ownership filter; they never widen scope beyond the tenant.
func (r *ProjectRepository) ListByOrganizationSlug(slug string, status models.ProjectStatus, search string) ([]models.Project, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("organizations.slug = ?", slug)

	if status != "" {
		query = query.Where("projects.status = ?", status)
	}
	if search != "" {
		query = query.Where("(projects.name ILIKE ? OR projects.description ILIKE ?)", "%"+search+"%", "%"+search+"%")
	}

	err := query.Order("projects.created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project and, via ON DELETE CASCADE, its tasks and comments
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
