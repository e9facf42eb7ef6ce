package handlers_test

import (
	"net/http"
	"testing"

	"team-docs-backend/internal/api/handlers"
	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"
	"team-docs-backend/internal/mocks"
	"team-docs-backend/internal/service"
	"team-docs-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VersionHandlerTestSuite defines the test suite for VersionHandler
type VersionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockVersionServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *VersionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockVersionServiceInterface(suite.ctrl)

	handler := handlers.NewVersionHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/documents/:id/history", handler.GetHistory)
	versions := suite.httpSuite.Router.Group("/api/versions")
	{
		versions.POST("/:id/approvers", handler.AddApprover)
		versions.POST("/:id/approve", handler.Approve)
		versions.POST("/:id/reject", handler.Reject)
	}
}

// TearDownTest cleans up after each test
func (suite *VersionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VersionHandlerTestSuite) TestGetHistory() {
	docID := uuid.New()
	expected := &service.VersionHistoryResponse{
		Versions: []service.VersionResponse{
			{ID: uuid.New(), DocumentID: docID, Version: 2, ChangeType: models.ChangeTypeUpdated},
			{ID: uuid.New(), DocumentID: docID, Version: 1, ChangeType: models.ChangeTypeCreated},
		},
		Pagination: service.Pagination{Total: 2, Limit: 10},
	}

	suite.mockService.EXPECT().ListByDocument(docID, 0, 0).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/"+docID.String()+"/history", nil)

	var response service.VersionHistoryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Versions, 2)
	assert.Equal(suite.T(), 2, response.Versions[0].Version)
}

func (suite *VersionHandlerTestSuite) TestGetHistoryDocumentNotFound() {
	docID := uuid.New()

	suite.mockService.EXPECT().
		ListByDocument(docID, 0, 0).
		Return(nil, apperrors.ErrDocumentNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/"+docID.String()+"/history", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *VersionHandlerTestSuite) TestAddApprover() {
	versionID := uuid.New()
	expected := &service.VersionResponse{
		ID: versionID,
		Approval: models.Approval{
			IsRequired:  true,
			FinalStatus: models.ApprovalPending,
			Approvers: []models.Approver{
				{UserID: "u1", UserName: "User One", Status: models.ApprovalPending},
			},
		},
	}

	suite.mockService.EXPECT().AddApprover(versionID, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/versions/"+versionID.String()+"/approvers", map[string]interface{}{
		"user_id":   "u1",
		"user_name": "User One",
	})

	var response service.VersionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Approval.Approvers, 1)
}

func (suite *VersionHandlerTestSuite) TestAddApproverDuplicate() {
	versionID := uuid.New()

	suite.mockService.EXPECT().
		AddApprover(versionID, gomock.Any()).
		Return(nil, apperrors.ErrApproverExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/versions/"+versionID.String()+"/approvers", map[string]interface{}{
		"user_id":   "u1",
		"user_name": "User One",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already exists")
}

func (suite *VersionHandlerTestSuite) TestApprove() {
	versionID := uuid.New()
	expected := &service.VersionResponse{
		ID:       versionID,
		Approval: models.Approval{FinalStatus: models.ApprovalApproved},
	}

	suite.mockService.EXPECT().Approve(versionID, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/versions/"+versionID.String()+"/approve", map[string]interface{}{
		"user_id": "u1",
		"comment": "looks good",
	})

	var response service.VersionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.ApprovalApproved, response.Approval.FinalStatus)
}

func (suite *VersionHandlerTestSuite) TestApproveUnknownApprover() {
	versionID := uuid.New()

	suite.mockService.EXPECT().
		Approve(versionID, gomock.Any()).
		Return(nil, apperrors.ErrApproverNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/versions/"+versionID.String()+"/approve", map[string]interface{}{
		"user_id": "ghost",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *VersionHandlerTestSuite) TestReject() {
	versionID := uuid.New()
	expected := &service.VersionResponse{
		ID:       versionID,
		Approval: models.Approval{FinalStatus: models.ApprovalRejected},
	}

	suite.mockService.EXPECT().Reject(versionID, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/versions/"+versionID.String()+"/reject", map[string]interface{}{
		"user_id": "u1",
		"comment": "needs work",
	})

	var response service.VersionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.ApprovalRejected, response.Approval.FinalStatus)
}

func (suite *VersionHandlerTestSuite) TestInvalidVersionID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/versions/nope/approve", map[string]interface{}{
		"user_id": "u1",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid version ID")
}

// TestVersionHandlerTestSuite runs the test suite
func TestVersionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VersionHandlerTestSuite))
}
