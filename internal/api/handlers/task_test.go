package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/api/middleware"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	handler     *handlers.TaskHandler
	router      *gin.Engine
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTaskHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.Use(middleware.TenantRequired())
	suite.router.GET("/api/v1/projects/:id/tasks", suite.handler.ListProjectTasks)
	suite.router.GET("/api/v1/tasks/:id", suite.handler.GetTask)
	suite.router.POST("/api/v1/tasks", suite.handler.CreateTask)
	suite.router.PUT("/api/v1/tasks/:id", suite.handler.UpdateTask)
	suite.router.DELETE("/api/v1/tasks/:id", suite.handler.DeleteTask)
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) tenantRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	req.Header.Set(middleware.TenantHeader, "acme")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) TestListProjectTasks_PassesFilters() {
	projectID := uuid.New()
	tasks := []service.TaskResponse{
		{ID: uuid.New(), ProjectID: projectID, Title: "Fix login flow", Status: "IN_PROGRESS"},
	}
	suite.mockService.EXPECT().
		ListByProject(projectID, "acme", "IN_PROGRESS", "login").
		Return(tasks, nil)

	w := suite.tenantRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/tasks?status=IN_PROGRESS&search=login", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.TaskResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Fix login flow", got[0].Title)
}

func (suite *TaskHandlerTestSuite) TestListProjectTasks_InvalidProjectID() {
	w := suite.tenantRequest(http.MethodGet, "/api/v1/projects/not-a-uuid/tasks", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid UUID format")
}

func (suite *TaskHandlerTestSuite) TestListProjectTasks_MissingTenant() {
	projectID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/tasks", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "X-Organization-Slug header is required")
}

func (suite *TaskHandlerTestSuite) TestGetTask_Success() {
	id := uuid.New()
	task := &service.TaskResponse{ID: id, Title: "Fix login flow", Status: "TODO"}
	suite.mockService.EXPECT().Get(id, "acme").Return(task, nil)

	w := suite.tenantRequest(http.MethodGet, "/api/v1/tasks/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(id, "acme").Return(nil, apperrors.ErrTaskNotFound)

	w := suite.tenantRequest(http.MethodGet, "/api/v1/tasks/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	projectID := uuid.New()
	payload := &service.TaskPayload{
		Task: &service.TaskResponse{ID: uuid.New(), ProjectID: projectID, Title: "Fix login flow", Status: "TODO"},
	}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(payload, nil)

	body, _ := json.Marshal(service.CreateTaskRequest{ProjectID: projectID, Title: "Fix login flow"})
	w := suite.tenantRequest(http.MethodPost, "/api/v1/tasks", body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_PayloadErrors() {
	payload := &service.TaskPayload{
		Errors: []apperrors.FieldError{{Field: "project_id", Message: "Project not found"}},
	}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(payload, nil)

	body, _ := json.Marshal(service.CreateTaskRequest{ProjectID: uuid.New(), Title: "Orphan"})
	w := suite.tenantRequest(http.MethodPost, "/api/v1/tasks", body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TaskPayload
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Nil(suite.T(), got.Task)
	assert.Equal(suite.T(), "Project not found", got.Errors[0].Message)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_Success() {
	id := uuid.New()
	status := "DONE"
	payload := &service.TaskPayload{
		Task: &service.TaskResponse{ID: id, Title: "Fix login flow", Status: status},
	}
	suite.mockService.EXPECT().Update(id, gomock.Any()).Return(payload, nil)

	body, _ := json.Marshal(service.UpdateTaskRequest{Status: &status})
	w := suite.tenantRequest(http.MethodPut, "/api/v1/tasks/"+id.String(), body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_InvalidUUID() {
	w := suite.tenantRequest(http.MethodPut, "/api/v1/tasks/not-a-uuid", []byte(`{}`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(&service.DeletePayload{Success: true}, nil)

	w := suite.tenantRequest(http.MethodDelete, "/api/v1/tasks/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
