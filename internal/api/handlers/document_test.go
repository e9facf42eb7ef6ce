package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
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

// DocumentHandlerTestSuite defines the test suite for DocumentHandler
type DocumentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDocumentServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DocumentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDocumentServiceInterface(suite.ctrl)

	handler := handlers.NewDocumentHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	documents := suite.httpSuite.Router.Group("/api/documents")
	{
		documents.GET("", handler.ListDocuments)
		documents.POST("", handler.CreateDocument)
		documents.GET("/search", handler.SearchDocuments)
		documents.GET("/:id", handler.GetDocument)
		documents.PUT("/:id", handler.UpdateDocument)
		documents.DELETE("/:id", handler.ArchiveDocument)
		documents.POST("/:id/relations", handler.AddRelation)
		documents.GET("/:id/versions", handler.ListVersions)
	}
	suite.httpSuite.Router.GET("/api/teams/:id/documents", handler.ListTeamDocuments)
}

// TearDownTest cleans up after each test
func (suite *DocumentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DocumentHandlerTestSuite) TestListDocuments() {
	expected := &service.DocumentListResponse{
		Documents: []service.DocumentSummary{
			{ID: uuid.New(), Title: "API Guide", Slug: "api-guide", Version: 2},
		},
		Pagination: service.Pagination{Total: 1, Limit: 20, Skip: 0, HasMore: false},
	}

	suite.mockService.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(q *service.ListDocumentsQuery) (*service.DocumentListResponse, error) {
			assert.Nil(suite.T(), q.TeamID)
			assert.Equal(suite.T(), "updatedAt", q.SortBy)
			assert.Equal(suite.T(), "desc", q.SortOrder)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents", nil)

	var response service.DocumentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Documents, 1)
	assert.Equal(suite.T(), int64(1), response.Pagination.Total)
}

func (suite *DocumentHandlerTestSuite) TestListDocumentsQueryParams() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(q *service.ListDocumentsQuery) (*service.DocumentListResponse, error) {
			assert.Equal(suite.T(), &teamID, q.TeamID)
			assert.Equal(suite.T(), "approved", q.Status)
			assert.Equal(suite.T(), []string{"api", "guide"}, q.Tags)
			assert.Equal(suite.T(), 5, q.Limit)
			assert.Equal(suite.T(), 10, q.Skip)
			assert.Equal(suite.T(), "title", q.SortBy)
			assert.Equal(suite.T(), "asc", q.SortOrder)
			return &service.DocumentListResponse{Documents: []service.DocumentSummary{}}, nil
		}).
		Times(1)

	url := "/api/documents?team_id=" + teamID.String() +
		"&status=approved&tags=api,%20guide&limit=5&skip=10&sortBy=title&sortOrder=asc"
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *DocumentHandlerTestSuite) TestListDocumentsInvalidTeamID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents?team_id=nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

func (suite *DocumentHandlerTestSuite) TestListTeamDocuments() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(q *service.ListDocumentsQuery) (*service.DocumentListResponse, error) {
			assert.Equal(suite.T(), &teamID, q.TeamID)
			return &service.DocumentListResponse{Documents: []service.DocumentSummary{}}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/teams/"+teamID.String()+"/documents", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *DocumentHandlerTestSuite) TestSearchDocuments() {
	expected := &service.SearchResponse{
		Query:   "deploy",
		Results: []service.DocumentSummary{{ID: uuid.New(), Title: "Deploy Guide"}},
		Count:   1,
	}

	suite.mockService.EXPECT().
		Search(gomock.Any()).
		DoAndReturn(func(q *service.SearchQuery) (*service.SearchResponse, error) {
			assert.Equal(suite.T(), "deploy", q.Query)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/search?q=deploy", nil)

	var response service.SearchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 1, response.Count)
}

func (suite *DocumentHandlerTestSuite) TestSearchDocumentsQueryTooShort() {
	suite.mockService.EXPECT().
		Search(gomock.Any()).
		Return(nil, apperrors.ErrSearchQueryTooShort).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/search?q=a", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "at least 2 characters")
}

func (suite *DocumentHandlerTestSuite) TestGetDocument() {
	id := uuid.New()
	expected := &service.DocumentResponse{
		ID:      id,
		Title:   "API Guide",
		Slug:    "api-guide",
		Status:  models.DocumentStatusDraft,
		Version: 1,
	}

	suite.mockService.EXPECT().GetByID(id).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/"+id.String(), nil)

	var response service.DocumentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), id, response.ID)
}

func (suite *DocumentHandlerTestSuite) TestGetDocumentNotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		GetByID(id).
		Return(nil, apperrors.ErrDocumentNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *DocumentHandlerTestSuite) TestGetDocumentInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid document ID")
}

func (suite *DocumentHandlerTestSuite) TestCreateDocument() {
	teamID := uuid.New()
	expected := &service.DocumentResponse{
		ID:      uuid.New(),
		Title:   "API Guide",
		Slug:    "api-guide",
		TeamID:  teamID,
		Status:  models.DocumentStatusDraft,
		Version: 1,
	}

	suite.mockService.EXPECT().Create(gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/documents", map[string]interface{}{
		"title":       "API Guide",
		"content":     "# API Guide",
		"team_id":     teamID.String(),
		"author_id":   "u1",
		"author_name": "User One",
	})

	var response service.DocumentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "api-guide", response.Slug)
}

func (suite *DocumentHandlerTestSuite) TestCreateDocumentDuplicateSlug() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrDocumentSlugExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/documents", map[string]interface{}{
		"title":       "API Guide",
		"content":     "# API Guide",
		"team_id":     uuid.New().String(),
		"author_id":   "u1",
		"author_name": "User One",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already exists")
}

func (suite *DocumentHandlerTestSuite) TestCreateDocumentInvalidJSON() {
	recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/api/documents")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *DocumentHandlerTestSuite) TestUpdateDocument() {
	id := uuid.New()
	expected := &service.DocumentResponse{ID: uuid.New(), Title: "API Guide", Version: 2}

	suite.mockService.EXPECT().Update(id, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/documents/"+id.String(), map[string]interface{}{
		"content":        "# API Guide v2",
		"author_id":      "u1",
		"author_name":    "User One",
		"change_summary": "Expanded the guide",
	})

	var response service.DocumentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Version)
}

func (suite *DocumentHandlerTestSuite) TestUpdateDocumentNotLatest() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrNotLatestVersion).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/documents/"+id.String(), map[string]interface{}{
		"content":        "stale",
		"author_id":      "u1",
		"author_name":    "User One",
		"change_summary": "Stale edit",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *DocumentHandlerTestSuite) TestUpdateDocumentVersionConflict() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrVersionConflict).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/documents/"+id.String(), map[string]interface{}{
		"content":        "racing",
		"author_id":      "u1",
		"author_name":    "User One",
		"change_summary": "Racing edit",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *DocumentHandlerTestSuite) TestArchiveDocument() {
	id := uuid.New()

	suite.mockService.EXPECT().Archive(id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/documents/"+id.String(), nil)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "document archived", response["message"])
}

func (suite *DocumentHandlerTestSuite) TestAddRelation() {
	id := uuid.New()
	target := uuid.New()
	expected := &service.DocumentResponse{
		ID: id,
		RelatedDocuments: []models.DocumentRelation{
			{DocumentID: target, RelationType: models.RelationReference, Strength: 0.5},
		},
	}

	suite.mockService.EXPECT().AddRelation(id, gomock.Any()).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/documents/"+id.String()+"/relations", map[string]interface{}{
		"document_id":   target.String(),
		"relation_type": "reference",
	})

	var response service.DocumentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.RelatedDocuments, 1)
}

func (suite *DocumentHandlerTestSuite) TestAddRelationInvalidType() {
	id := uuid.New()

	suite.mockService.EXPECT().
		AddRelation(id, gomock.Any()).
		Return(nil, apperrors.ErrInvalidRelationType).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/documents/"+id.String()+"/relations", map[string]interface{}{
		"document_id":   uuid.New().String(),
		"relation_type": "friends-with",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *DocumentHandlerTestSuite) TestListVersions() {
	id := uuid.New()
	expected := &service.VersionChainResponse{
		Versions: []service.DocumentSummary{
			{ID: uuid.New(), Version: 2},
			{ID: id, Version: 1},
		},
		Pagination: service.Pagination{Total: 2, Limit: 10},
	}

	suite.mockService.EXPECT().ListVersions(id, 5, 0).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/"+id.String()+"/versions?limit=5", nil)

	var response service.VersionChainResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Versions, 2)
}

func (suite *DocumentHandlerTestSuite) TestInternalErrorShape() {
	id := uuid.New()

	suite.mockService.EXPECT().
		GetByID(id).
		Return(nil, assert.AnError).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/documents/"+id.String(), nil)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	assert.Equal(suite.T(), "failed to get document", response["message"])
	assert.NotEmpty(suite.T(), response["error"])
}

func (suite *DocumentHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)
	return recorder
}

// TestDocumentHandlerTestSuite runs the test suite
func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
