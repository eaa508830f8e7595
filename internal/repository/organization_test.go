package repository

import (
	"testing"

	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *OrganizationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating and retrieving an organization
func (suite *OrganizationRepositoryTestSuite) TestCreateAndGetByID() {
	org := suite.factories.Organization.WithName("Acme Corp")

	err := suite.repo.Create(org)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal("Acme Corp", retrieved.Name)
	suite.Equal(org.Slug, retrieved.Slug)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(org)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetBySlug tests retrieving an organization by slug
func (suite *OrganizationRepositoryTestSuite) TestGetBySlug() {
	org := suite.factories.Organization.WithSlug("acme-corp")
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetBySlug("acme-corp")
	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestGetBySlugNotFound tests retrieving a non-existent slug
func (suite *OrganizationRepositoryTestSuite) TestGetBySlugNotFound() {
	org, err := suite.repo.GetBySlug("missing")

	suite.Error(err)
	suite.Nil(org)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateSlugRejected tests the unique index on slug
func (suite *OrganizationRepositoryTestSuite) TestDuplicateSlugRejected() {
	first := suite.factories.Organization.WithSlug("acme-corp")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Organization.WithSlug("acme-corp")
	err := suite.repo.Create(second)
	suite.Error(err)
}

// TestGetAllOrderedByName tests listing organizations in name order
func (suite *OrganizationRepositoryTestSuite) TestGetAllOrderedByName() {
	suite.NoError(suite.repo.Create(suite.factories.Organization.WithName("Globex")))
	suite.NoError(suite.repo.Create(suite.factories.Organization.WithName("Acme Corp")))
	suite.NoError(suite.repo.Create(suite.factories.Organization.WithName("Initech")))

	orgs, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(orgs, 3)
	suite.Equal("Acme Corp", orgs[0].Name)
	suite.Equal("Globex", orgs[1].Name)
	suite.Equal("Initech", orgs[2].Name)
}

// TestUpdate tests updating an organization
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	org.Name = "Renamed"
	suite.NoError(suite.repo.Update(org))

	retrieved, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Name)
}

// TestDeleteCascades tests that deleting an organization removes its subtree
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascades() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	project := suite.factories.Project.WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(project).Error)

	task := suite.factories.Task.WithProject(project.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(task).Error)

	comment := suite.factories.Comment.WithTask(task.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(comment).Error)

	suite.NoError(suite.repo.Delete(org.ID))

	var projectCount, taskCount, commentCount int64
	suite.baseTestSuite.DB.Model(&models.Project{}).Count(&projectCount)
	suite.baseTestSuite.DB.Model(&models.Task{}).Count(&taskCount)
	suite.baseTestSuite.DB.Model(&models.Comment{}).Count(&commentCount)
	suite.Equal(int64(0), projectCount)
	suite.Equal(int64(0), taskCount)
	suite.Equal(int64(0), commentCount)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
