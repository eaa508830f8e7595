package service_test

import (
	"testing"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockOrgRepo     *mocks.MockOrganizationRepositoryInterface
	mockTaskRepo    *mocks.MockTaskRepositoryInterface
	projectService  *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)

	suite.projectService = service.NewProjectService(
		suite.mockProjectRepo,
		suite.mockOrgRepo,
		suite.mockTaskRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) projectWithOrg(slug string) *models.Project {
	orgID := uuid.New()
	return &models.Project{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		OrganizationID: orgID,
		Name:           "Website Redesign",
		Status:         models.ProjectStatusActive,
		Organization: models.Organization{
			BaseModel: models.BaseModel{ID: orgID},
			Name:      "Acme",
			Slug:      slug,
		},
	}
}

// TestCreateProject tests creating a project under an organization
func (suite *ProjectServiceTestSuite) TestCreateProject() {
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Acme",
		Slug:      "acme",
	}

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme").
		Return(org, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(project *models.Project) error {
			assert.Equal(suite.T(), org.ID, project.OrganizationID)
			assert.Equal(suite.T(), models.ProjectStatusActive, project.Status)
			return nil
		}).
		Times(1)

	payload, err := suite.projectService.Create(&service.CreateProjectRequest{
		OrganizationSlug: "acme",
		Name:             "Website Redesign",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), payload.Project)
	assert.Empty(suite.T(), payload.Errors)
	assert.Equal(suite.T(), "ACTIVE", payload.Project.Status)
}

// TestCreateProjectOrganizationNotFound tests that a missing parent is a payload error
func (suite *ProjectServiceTestSuite) TestCreateProjectOrganizationNotFound() {
	suite.mockOrgRepo.EXPECT().
		GetBySlug("missing").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	payload, err := suite.projectService.Create(&service.CreateProjectRequest{
		OrganizationSlug: "missing",
		Name:             "Website Redesign",
	})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), payload.Project)
	assert.Len(suite.T(), payload.Errors, 1)
	assert.Equal(suite.T(), "organization_slug", payload.Errors[0].Field)
	assert.Equal(suite.T(), "Organization not found", payload.Errors[0].Message)
}

// TestCreateProjectInvalidStatus tests rejecting an unknown status value
func (suite *ProjectServiceTestSuite) TestCreateProjectInvalidStatus() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Slug: "acme"}

	suite.mockOrgRepo.EXPECT().
		GetBySlug("acme").
		Return(org, nil).
		Times(1)

	payload, err := suite.projectService.Create(&service.CreateProjectRequest{
		OrganizationSlug: "acme",
		Name:             "Website Redesign",
		Status:           "PAUSED",
	})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), payload.Project)
	assert.Len(suite.T(), payload.Errors, 1)
	assert.Equal(suite.T(), "status", payload.Errors[0].Field)
	assert.Contains(suite.T(), payload.Errors[0].Message, "Invalid status")
	assert.Contains(suite.T(), payload.Errors[0].Message, "ACTIVE")
}

// TestGetScopedToTenant tests that a tenant mismatch reads as not found
func (suite *ProjectServiceTestSuite) TestGetScopedToTenant() {
	project := suite.projectWithOrg("acme")

	suite.mockProjectRepo.EXPECT().
		GetWithOrganization(project.ID).
		Return(project, nil).
		Times(1)

	response, err := suite.projectService.Get(project.ID, "globex")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

// TestGetMatchingTenant tests retrieving a project within the tenant
func (suite *ProjectServiceTestSuite) TestGetMatchingTenant() {
	project := suite.projectWithOrg("acme")

	suite.mockProjectRepo.EXPECT().
		GetWithOrganization(project.ID).
		Return(project, nil).
		Times(1)

	suite.mockTaskRepo.EXPECT().
		StatusCounts(project.ID).
		Return(&repository.TaskStatusCounts{Total: 4, Completed: 1, InProgress: 2, Todo: 1}, nil).
		Times(1)

	response, err := suite.projectService.Get(project.ID, "acme")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), project.ID, response.ID)
	assert.NotNil(suite.T(), response.TaskStats)
	assert.Equal(suite.T(), int64(4), response.TaskStats.TotalTasks)
	assert.Equal(suite.T(), 25.0, response.TaskStats.CompletionRate)
}

// TestStatistics tests the completion rate rounding
func (suite *ProjectServiceTestSuite) TestStatistics() {
	project := suite.projectWithOrg("acme")

	suite.mockProjectRepo.EXPECT().
		GetWithOrganization(project.ID).
		Return(project, nil).
		Times(1)

	suite.mockTaskRepo.EXPECT().
		StatusCounts(project.ID).
		Return(&repository.TaskStatusCounts{Total: 3, Completed: 1, InProgress: 1, Todo: 1}, nil).
		Times(1)

	stats, err := suite.projectService.Statistics(project.ID, "acme")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), stats.TotalTasks)
	// 1/3 = 33.333..., rounded to one decimal
	assert.Equal(suite.T(), 33.3, stats.CompletionRate)
}

// TestStatisticsEmptyProject tests that no tasks yields a zero rate
func (suite *ProjectServiceTestSuite) TestStatisticsEmptyProject() {
	project := suite.projectWithOrg("acme")

	suite.mockProjectRepo.EXPECT().
		GetWithOrganization(project.ID).
		Return(project, nil).
		Times(1)

	suite.mockTaskRepo.EXPECT().
		StatusCounts(project.ID).
		Return(&repository.TaskStatusCounts{}, nil).
		Times(1)

	stats, err := suite.projectService.Statistics(project.ID, "acme")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), stats.TotalTasks)
	assert.Equal(suite.T(), 0.0, stats.CompletionRate)
}

// TestList tests listing projects with filters passed through
func (suite *ProjectServiceTestSuite) TestList() {
	projects := []models.Project{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "One", Status: models.ProjectStatusActive},
	}

	suite.mockProjectRepo.EXPECT().
		ListByOrganizationSlug("acme", models.ProjectStatusActive, "web").
		Return(projects, nil).
		Times(1)

	responses, err := suite.projectService.List("acme", "ACTIVE", "web")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), "One", responses[0].Name)
}

// TestUpdateProjectPartial tests that omitted fields keep their values
func (suite *ProjectServiceTestSuite) TestUpdateProjectPartial() {
	id := uuid.New()
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Website Redesign",
		Description: "Old description",
		Status:      models.ProjectStatusActive,
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(id).
		Return(project, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	newStatus := "COMPLETED"
	payload, err := suite.projectService.Update(id, &service.UpdateProjectRequest{
		Status: &newStatus,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "COMPLETED", payload.Project.Status)
	assert.Equal(suite.T(), "Website Redesign", payload.Project.Name)
	assert.Equal(suite.T(), "Old description", payload.Project.Description)
}

// TestUpdateProjectInvalidStatus tests rejecting an unknown status on update
func (suite *ProjectServiceTestSuite) TestUpdateProjectInvalidStatus() {
	id := uuid.New()
	project := &models.Project{BaseModel: models.BaseModel{ID: id}, Name: "One", Status: models.ProjectStatusActive}

	suite.mockProjectRepo.EXPECT().
		GetByID(id).
		Return(project, nil).
		Times(1)

	bad := "NOPE"
	payload, err := suite.projectService.Update(id, &service.UpdateProjectRequest{Status: &bad})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), payload.Project)
	assert.Len(suite.T(), payload.Errors, 1)
	assert.Equal(suite.T(), "status", payload.Errors[0].Field)
}

// TestDeleteProjectNotFound tests deleting a missing project
func (suite *ProjectServiceTestSuite) TestDeleteProjectNotFound() {
	id := uuid.New()

	suite.mockProjectRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	payload, err := suite.projectService.Delete(id)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), payload.Success)
	assert.Equal(suite.T(), "Project not found", payload.Errors[0].Message)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
