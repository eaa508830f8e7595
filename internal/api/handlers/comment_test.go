package handlers_test

import (
	"net/http"
	"testing"

	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/api/middleware"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CommentHandlerTestSuite defines the test suite for CommentHandler
type CommentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCommentServiceInterface
	handler     *handlers.CommentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CommentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCommentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCommentHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(middleware.TenantRequired())

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/tasks/:id/comments", suite.handler.ListTaskComments)
	comments := v1.Group("/comments")
	{
		comments.POST("", suite.handler.CreateComment)
		comments.GET("/:id", suite.handler.GetComment)
		comments.PUT("/:id", suite.handler.UpdateComment)
		comments.DELETE("/:id", suite.handler.DeleteComment)
	}
}

// TearDownTest cleans up after each test
func (suite *CommentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListTaskComments tests listing a task's comments
func (suite *CommentHandlerTestSuite) TestListTaskComments() {
	taskID := uuid.New()
	comments := []service.CommentResponse{
		{ID: uuid.New(), TaskID: taskID, Content: "Newest", AuthorEmail: "a@acme.test"},
		{ID: uuid.New(), TaskID: taskID, Content: "Oldest", AuthorEmail: "b@acme.test"},
	}
	suite.mockService.EXPECT().ListByTask(taskID, "acme").Return(comments, nil)

	recorder := suite.httpSuite.MakeTenantRequest("GET", "/api/v1/tasks/"+taskID.String()+"/comments", nil, "acme")

	var got []service.CommentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Newest", got[0].Content)
}

// TestListTaskCommentsInvalidTaskID tests listing with a malformed task id
func (suite *CommentHandlerTestSuite) TestListTaskCommentsInvalidTaskID() {
	recorder := suite.httpSuite.MakeTenantRequest("GET", "/api/v1/tasks/not-a-uuid/comments", nil, "acme")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID format")
}

// TestGetComment tests retrieving a comment
func (suite *CommentHandlerTestSuite) TestGetComment() {
	id := uuid.New()
	comment := &service.CommentResponse{ID: id, Content: "On it", AuthorEmail: "dev@acme.test"}
	suite.mockService.EXPECT().Get(id, "acme").Return(comment, nil)

	recorder := suite.httpSuite.MakeTenantRequest("GET", "/api/v1/comments/"+id.String(), nil, "acme")

	var got service.CommentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "On it", got.Content)
}

// TestGetCommentNotFound tests retrieving a comment outside the tenant
func (suite *CommentHandlerTestSuite) TestGetCommentNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(id, "acme").Return(nil, apperrors.ErrCommentNotFound)

	recorder := suite.httpSuite.MakeTenantRequest("GET", "/api/v1/comments/"+id.String(), nil, "acme")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "comment not found")
}

// TestCreateComment tests creating a comment
func (suite *CommentHandlerTestSuite) TestCreateComment() {
	taskID := uuid.New()
	payload := &service.CommentPayload{
		Comment: &service.CommentResponse{ID: uuid.New(), TaskID: taskID, Content: "On it", AuthorEmail: "dev@acme.test"},
	}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(payload, nil)

	body := map[string]interface{}{
		"task_id":      taskID.String(),
		"content":      "On it",
		"author_email": "dev@acme.test",
	}
	recorder := suite.httpSuite.MakeTenantRequest("POST", "/api/v1/comments", body, "acme")

	var got service.CommentPayload
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), "On it", got.Comment.Content)
	assert.Empty(suite.T(), got.Errors)
}

// TestCreateCommentPayloadErrors tests domain failures travelling in the payload
func (suite *CommentHandlerTestSuite) TestCreateCommentPayloadErrors() {
	payload := &service.CommentPayload{
		Errors: []apperrors.FieldError{{Field: "task_id", Message: "Task not found"}},
	}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(payload, nil)

	body := map[string]interface{}{
		"task_id":      uuid.New().String(),
		"content":      "Orphan",
		"author_email": "dev@acme.test",
	}
	recorder := suite.httpSuite.MakeTenantRequest("POST", "/api/v1/comments", body, "acme")

	var got service.CommentPayload
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Nil(suite.T(), got.Comment)
	assert.Equal(suite.T(), "Task not found", got.Errors[0].Message)
}

// TestCreateCommentMissingTenant tests that the guard runs before the handler
func (suite *CommentHandlerTestSuite) TestCreateCommentMissingTenant() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/comments", map[string]string{"content": "no tenant"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "X-Organization-Slug header is required")
}

// TestUpdateComment tests updating a comment
func (suite *CommentHandlerTestSuite) TestUpdateComment() {
	id := uuid.New()
	payload := &service.CommentPayload{
		Comment: &service.CommentResponse{ID: id, Content: "Edited"},
	}
	suite.mockService.EXPECT().Update(id, gomock.Any()).Return(payload, nil)

	recorder := suite.httpSuite.MakeTenantRequest("PUT", "/api/v1/comments/"+id.String(), map[string]string{"content": "Edited"}, "acme")

	var got service.CommentPayload
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "Edited", got.Comment.Content)
}

// TestDeleteComment tests deleting a comment
func (suite *CommentHandlerTestSuite) TestDeleteComment() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(&service.DeletePayload{Success: true}, nil)

	recorder := suite.httpSuite.MakeTenantRequest("DELETE", "/api/v1/comments/"+id.String(), nil, "acme")

	var got service.DeletePayload
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.True(suite.T(), got.Success)
}

// TestCommentHandlerTestSuite runs the test suite
func TestCommentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}
