package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetWithChain retrieves a task with its full ownership chain
// (project and organization) preloaded for tenant resolution.
func (r *TaskRepository) GetWithChain(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Project.Organization").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject retrieves tasks for a project, newest first. When orgSlug is
// non-empty the ownership chain is enforced in the query, so a project id
// belonging to another tenant yields an empty result.
func (r *TaskRepository) ListByProject(projectID uuid.UUID, orgSlug string, status models.TaskStatus, search string) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("tasks.project_id = ?", projectID)

	if orgSlug != "" {
		query = query.
			Joins("JOIN projects ON projects.id = tasks.project_id").
			Joins("JOIN organizations ON organizations.id = projects.organization_id").
			Where("organizations.slug = ?", orgSlug)
	}
	if status != "" {
		query = query.Where("tasks.status = ?", status)
	}
	if search != "" {
		query = query.Where("(tasks.title ILIKE ? OR tasks.description ILIKE ?)", "%"+search+"%", "%"+search+"%")
	}

	err := query.Order("tasks.created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// StatusCounts aggregates task counts for a project's statistics
func (r *TaskRepository) StatusCounts(projectID uuid.UUID) (*TaskStatusCounts, error) {
	counts := &TaskStatusCounts{}

	base := r.db.Model(&models.Task{}).Where("project_id = ?", projectID)
	if err := base.Count(&counts.Total).Error; err != nil {
		return nil, err
	}

	type row struct {
		Status models.TaskStatus
		N      int64
	}
	var rows []row
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS n").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		switch rw.Status {
		case models.TaskStatusDone:
			counts.Completed = rw.N
		case models.TaskStatusInProgress:
			counts.InProgress = rw.N
		case models.TaskStatusTodo:
			counts.Todo = rw.N
		}
	}

	return counts, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task and, via ON DELETE CASCADE, its comments
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
