package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the seed file schema
type OrganizationData struct {
	Name         string        `yaml:"name"`
	Slug         string        `yaml:"slug"`
	ContactEmail string        `yaml:"contact_email"`
	Projects     []ProjectData `yaml:"projects,omitempty"`
}

type ProjectData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Status      string     `yaml:"status,omitempty"`
	DueDate     *time.Time `yaml:"due_date,omitempty"`
	Tasks       []TaskData `yaml:"tasks,omitempty"`
}

type TaskData struct {
	Title         string        `yaml:"title"`
	Description   string        `yaml:"description,omitempty"`
	Status        string        `yaml:"status,omitempty"`
	AssigneeEmail string        `yaml:"assignee_email,omitempty"`
	DueDate       *time.Time    `yaml:"due_date,omitempty"`
	Comments      []CommentData `yaml:"comments,omitempty"`
}

type CommentData struct {
	Content     string `yaml:"content"`
	AuthorEmail string `yaml:"author_email"`
}

type SeedFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	seed, err := loadSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	if err := applySeed(db, seed); err != nil {
		log.Fatalf("Failed to apply seed data: %v", err)
	}

	log.Println("Seed data loaded successfully")
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &seed, nil
}

// applySeed upserts organizations by slug, then rebuilds their projects,
// tasks and comments. Re-running the script is safe.
func applySeed(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, orgData := range seed.Organizations {
			org, err := upsertOrganization(tx, orgData)
			if err != nil {
				return err
			}
			log.Printf("Seeded organization %q (%s)", org.Name, org.Slug)

			for _, projectData := range orgData.Projects {
				project, err := createProject(tx, org.ID, projectData)
				if err != nil {
					return err
				}

				for _, taskData := range projectData.Tasks {
					task, err := createTask(tx, project.ID, taskData)
					if err != nil {
						return err
					}

					for _, commentData := range taskData.Comments {
						if err := createComment(tx, task.ID, commentData); err != nil {
							return err
						}
					}
				}
			}
		}
		return nil
	})
}

func upsertOrganization(tx *gorm.DB, data OrganizationData) (*models.Organization, error) {
	var org models.Organization
	err := tx.Where("slug = ?", data.Slug).First(&org).Error
	switch {
	case err == nil:
		// Replace the organization's content: cascade clears old projects
		org.Name = data.Name
		org.ContactEmail = data.ContactEmail
		if err := tx.Save(&org).Error; err != nil {
			return nil, fmt.Errorf("updating organization %s: %w", data.Slug, err)
		}
		if err := tx.Where("organization_id = ?", org.ID).Delete(&models.Project{}).Error; err != nil {
			return nil, fmt.Errorf("clearing projects for %s: %w", data.Slug, err)
		}
		return &org, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		org = models.Organization{
			Name:         data.Name,
			Slug:         data.Slug,
			ContactEmail: data.ContactEmail,
		}
		if err := tx.Create(&org).Error; err != nil {
			return nil, fmt.Errorf("creating organization %s: %w", data.Slug, err)
		}
		return &org, nil
	default:
		return nil, fmt.Errorf("looking up organization %s: %w", data.Slug, err)
	}
}

func createProject(tx *gorm.DB, orgID uuid.UUID, data ProjectData) (*models.Project, error) {
	status := models.ProjectStatus(data.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}
	project := models.Project{
		OrganizationID: orgID,
		Name:           data.Name,
		Description:    data.Description,
		Status:         status,
		DueDate:        data.DueDate,
	}
	if err := tx.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("creating project %s: %w", data.Name, err)
	}
	return &project, nil
}

func createTask(tx *gorm.DB, projectID uuid.UUID, data TaskData) (*models.Task, error) {
	status := models.TaskStatus(data.Status)
	if status == "" {
		status = models.TaskStatusTodo
	}
	task := models.Task{
		ProjectID:     projectID,
		Title:         data.Title,
		Description:   data.Description,
		Status:        status,
		AssigneeEmail: data.AssigneeEmail,
		DueDate:       data.DueDate,
	}
	if err := tx.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("creating task %s: %w", data.Title, err)
	}
	return &task, nil
}

func createComment(tx *gorm.DB, taskID uuid.UUID, data CommentData) error {
	comment := models.Comment{
		TaskID:      taskID,
		Content:     data.Content,
		AuthorEmail: data.AuthorEmail,
	}
	if err := tx.Create(&comment).Error; err != nil {
		return fmt.Errorf("creating comment by %s: %w", data.AuthorEmail, err)
	}
	return nil
}
