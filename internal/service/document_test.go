package service_test

import (
	"testing"

	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"
	"team-docs-backend/internal/events"
	"team-docs-backend/internal/mocks"
	"team-docs-backend/internal/repository"
	"team-docs-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// capturePublisher records published events for assertions
type capturePublisher struct {
	published []events.Event
}

func (p *capturePublisher) PublishDocumentEvent(evt events.Event) {
	p.published = append(p.published, evt)
}

// DocumentServiceTestSuite defines the test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDocRepo     *mocks.MockDocumentRepositoryInterface
	mockVersionRepo *mocks.MockDocumentVersionRepositoryInterface
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	publisher       *capturePublisher
	documentService *service.DocumentService
	validator       *validator.Validate
	team            *models.Team
}

// SetupTest sets up the test suite
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDocRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockDocumentVersionRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.publisher = &capturePublisher{}
	suite.validator = validator.New()

	suite.documentService = service.NewDocumentService(
		suite.mockDocRepo, suite.mockVersionRepo, suite.mockTeamRepo, suite.validator, suite.publisher)

	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Engineering",
		Slug:      "engineering",
		IsActive:  true,
		Settings: models.TeamSettings{
			RequireApproval: true,
		},
	}
}

// TearDownTest cleans up after each test
func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DocumentServiceTestSuite) headDocument() *models.Document {
	return &models.Document{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Title:           "Design Notes",
		Slug:            "design-notes",
		Content:         "original content",
		ContentType:     models.ContentTypeMarkdown,
		TeamID:          suite.team.ID,
		AuthorID:        "u1",
		AuthorName:      "User One",
		Status:          models.DocumentStatusDraft,
		Category:        models.CategoryOther,
		Tags:            models.StringList{"design"},
		Version:         1,
		IsLatestVersion: true,
		Statistics:      models.DocumentStatistics{Views: 12, EditCount: 0},
		Team:            suite.team,
	}
}

func (suite *DocumentServiceTestSuite) TestCreateDocument() {
	req := &service.CreateDocumentRequest{
		Title:      "Hello, World! 2024",
		Content:    "some content",
		TeamID:     suite.team.ID,
		AuthorID:   "u1",
		AuthorName: "User One",
		Tags:       []string{"greeting"},
	}

	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil).Times(1)
	suite.mockDocRepo.EXPECT().SlugExists(suite.team.ID, "hello-world-2024").Return(false, nil).Times(1)

	var capturedDoc *models.Document
	var capturedEntry *models.DocumentVersion
	suite.mockDocRepo.EXPECT().
		CreateWithVersion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(doc *models.Document, entry *models.DocumentVersion) error {
			doc.ID = uuid.New()
			capturedDoc = doc
			capturedEntry = entry
			return nil
		}).
		Times(1)

	response, err := suite.documentService.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "hello-world-2024", response.Slug)
	assert.Equal(suite.T(), 1, response.Version)
	assert.True(suite.T(), response.IsLatestVersion)
	assert.Nil(suite.T(), response.ParentDocumentID)
	assert.Equal(suite.T(), models.DocumentStatusDraft, response.Status)
	assert.Equal(suite.T(), models.ContentTypeMarkdown, response.ContentType)

	require.NotNil(suite.T(), capturedDoc)
	require.NotNil(suite.T(), capturedEntry)
	assert.Equal(suite.T(), 1, capturedEntry.Version)
	assert.Equal(suite.T(), models.ChangeTypeCreated, capturedEntry.ChangeType)
	assert.Equal(suite.T(), "Initial document creation", capturedEntry.ChangeSummary)
	assert.True(suite.T(), capturedEntry.Approval.IsRequired)
	assert.Equal(suite.T(), models.ApprovalPending, capturedEntry.Approval.FinalStatus)

	require.Len(suite.T(), suite.publisher.published, 1)
	assert.Equal(suite.T(), events.DocumentCreated, suite.publisher.published[0].Event)
	assert.Equal(suite.T(), suite.team.ID.String(), suite.publisher.published[0].TeamID)
}

func (suite *DocumentServiceTestSuite) TestCreateDocumentApprovalNotRequired() {
	suite.team.Settings.RequireApproval = false

	req := &service.CreateDocumentRequest{
		Title:      "No Review Needed",
		Content:    "content",
		TeamID:     suite.team.ID,
		AuthorID:   "u1",
		AuthorName: "User One",
	}

	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil).Times(1)
	suite.mockDocRepo.EXPECT().SlugExists(suite.team.ID, "no-review-needed").Return(false, nil).Times(1)

	var capturedEntry *models.DocumentVersion
	suite.mockDocRepo.EXPECT().
		CreateWithVersion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(doc *models.Document, entry *models.DocumentVersion) error {
			capturedEntry = entry
			return nil
		}).
		Times(1)

	_, err := suite.documentService.Create(req)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), capturedEntry.Approval.IsRequired)
	assert.Equal(suite.T(), models.ApprovalApproved, capturedEntry.Approval.FinalStatus)
}

func (suite *DocumentServiceTestSuite) TestCreateDocumentExplicitSlug() {
	req := &service.CreateDocumentRequest{
		Title:      "Some Title",
		Slug:       "custom-slug",
		Content:    "content",
		TeamID:     suite.team.ID,
		AuthorID:   "u1",
		AuthorName: "User One",
	}

	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil).Times(1)
	suite.mockDocRepo.EXPECT().SlugExists(suite.team.ID, "custom-slug").Return(false, nil).Times(1)
	suite.mockDocRepo.EXPECT().CreateWithVersion(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.documentService.Create(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "custom-slug", response.Slug)
}

func (suite *DocumentServiceTestSuite) TestCreateDocumentDuplicateSlug() {
	req := &service.CreateDocumentRequest{
		Title:      "Design Notes",
		Content:    "content",
		TeamID:     suite.team.ID,
		AuthorID:   "u1",
		AuthorName: "User One",
	}

	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil).Times(1)
	suite.mockDocRepo.EXPECT().SlugExists(suite.team.ID, "design-notes").Return(true, nil).Times(1)

	response, err := suite.documentService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentSlugExists)
	assert.Empty(suite.T(), suite.publisher.published)
}

func (suite *DocumentServiceTestSuite) TestCreateDocumentTeamNotFound() {
	req := &service.CreateDocumentRequest{
		Title:      "Design Notes",
		Content:    "content",
		TeamID:     uuid.New(),
		AuthorID:   "u1",
		AuthorName: "User One",
	}

	suite.mockTeamRepo.EXPECT().GetByID(req.TeamID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.documentService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *DocumentServiceTestSuite) TestCreateDocumentEmptySlug() {
	req := &service.CreateDocumentRequest{
		Title:      "!!!",
		Content:    "content",
		TeamID:     suite.team.ID,
		AuthorID:   "u1",
		AuthorName: "User One",
	}

	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil).Times(1)

	response, err := suite.documentService.Create(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DocumentServiceTestSuite) TestUpdateDocumentPublishesNewVersion() {
	prev := suite.headDocument()
	prev.Statistics.EditCount = 2

	newContent := "revised content"
	req := &service.UpdateDocumentRequest{
		Content:       &newContent,
		AuthorID:      "u2",
		AuthorName:    "User Two",
		ChangeSummary: "Revised the content",
	}

	suite.mockDocRepo.EXPECT().GetWithTeam(prev.ID).Return(prev, nil).Times(1)

	var capturedNext *models.Document
	var capturedEntry *models.DocumentVersion
	suite.mockDocRepo.EXPECT().
		ReplaceHead(prev, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, next *models.Document, entry *models.DocumentVersion) error {
			next.ID = uuid.New()
			capturedNext = next
			capturedEntry = entry
			return nil
		}).
		Times(1)

	response, err := suite.documentService.Update(prev.ID, req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), capturedNext)

	assert.Equal(suite.T(), 2, capturedNext.Version)
	assert.Equal(suite.T(), &prev.ID, capturedNext.ParentDocumentID)
	assert.True(suite.T(), capturedNext.IsLatestVersion)
	assert.Equal(suite.T(), "revised content", capturedNext.Content)
	assert.Equal(suite.T(), prev.Title, capturedNext.Title)
	assert.Equal(suite.T(), prev.Slug, capturedNext.Slug)
	assert.Equal(suite.T(), models.DocumentStatusReview, capturedNext.Status)
	assert.Equal(suite.T(), 0, capturedNext.Statistics.Views)
	assert.Equal(suite.T(), 3, capturedNext.Statistics.EditCount)

	assert.Equal(suite.T(), models.ChangeTypeUpdated, capturedEntry.ChangeType)
	assert.Equal(suite.T(), "Revised the content", capturedEntry.ChangeSummary)
	assert.Equal(suite.T(), &prev.ID, capturedEntry.ParentVersionID)

	assert.Equal(suite.T(), 2, response.Version)

	require.Len(suite.T(), suite.publisher.published, 1)
	assert.Equal(suite.T(), events.DocumentUpdated, suite.publisher.published[0].Event)
	assert.Equal(suite.T(), 2, suite.publisher.published[0].Version)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocumentApprovalNotRequired() {
	suite.team.Settings.RequireApproval = false
	prev := suite.headDocument()

	req := &service.UpdateDocumentRequest{
		AuthorID:      "u2",
		AuthorName:    "User Two",
		ChangeSummary: "No review needed",
	}

	suite.mockDocRepo.EXPECT().GetWithTeam(prev.ID).Return(prev, nil).Times(1)

	var capturedNext *models.Document
	suite.mockDocRepo.EXPECT().
		ReplaceHead(prev, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, next *models.Document, entry *models.DocumentVersion) error {
			capturedNext = next
			return nil
		}).
		Times(1)

	_, err := suite.documentService.Update(prev.ID, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DocumentStatusApproved, capturedNext.Status)
}

func (suite *DocumentServiceTestSuite) TestUpdateRequiresChangeSummary() {
	prev := suite.headDocument()

	newContent := "revised content"
	req := &service.UpdateDocumentRequest{
		Content:    &newContent,
		AuthorID:   "u2",
		AuthorName: "User Two",
	}

	response, err := suite.documentService.Update(prev.ID, req)

	assert.Nil(suite.T(), response)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(suite.T(), err, &validationErrs)
	assert.Empty(suite.T(), suite.publisher.published)
}

func (suite *DocumentServiceTestSuite) TestUpdateNotLatestVersion() {
	prev := suite.headDocument()
	prev.IsLatestVersion = false

	req := &service.UpdateDocumentRequest{
		AuthorID:      "u2",
		AuthorName:    "User Two",
		ChangeSummary: "Stale edit",
	}

	suite.mockDocRepo.EXPECT().GetWithTeam(prev.ID).Return(prev, nil).Times(1)

	response, err := suite.documentService.Update(prev.ID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotLatestVersion)
	assert.Empty(suite.T(), suite.publisher.published)
}

func (suite *DocumentServiceTestSuite) TestUpdateVersionConflict() {
	prev := suite.headDocument()

	req := &service.UpdateDocumentRequest{
		AuthorID:      "u2",
		AuthorName:    "User Two",
		ChangeSummary: "Racing edit",
	}

	suite.mockDocRepo.EXPECT().GetWithTeam(prev.ID).Return(prev, nil).Times(1)
	suite.mockDocRepo.EXPECT().
		ReplaceHead(prev, gomock.Any(), gomock.Any()).
		Return(apperrors.ErrVersionConflict).
		Times(1)

	response, err := suite.documentService.Update(prev.ID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionConflict)
}

func (suite *DocumentServiceTestSuite) TestGetByIDCountsView() {
	doc := suite.headDocument()

	suite.mockDocRepo.EXPECT().GetWithTeam(doc.ID).Return(doc, nil).Times(1)
	suite.mockDocRepo.EXPECT().IncrementViews(doc.ID).Return(nil).Times(1)

	response, err := suite.documentService.GetByID(doc.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 13, response.Statistics.Views)
	assert.NotNil(suite.T(), response.Statistics.LastViewedAt)
}

func (suite *DocumentServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockDocRepo.EXPECT().GetWithTeam(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.documentService.GetByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentNotFound)
}

func (suite *DocumentServiceTestSuite) TestListAppliesDefaults() {
	docs := []models.Document{*suite.headDocument()}

	suite.mockDocRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.DocumentFilter) ([]models.Document, int64, error) {
			suite.True(filter.LatestOnly)
			suite.Equal(20, filter.Limit)
			suite.Equal(0, filter.Offset)
			return docs, 1, nil
		}).
		Times(1)

	result, err := suite.documentService.List(&service.ListDocumentsQuery{})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Documents, 1)
	assert.Equal(suite.T(), 20, result.Pagination.Limit)
	assert.False(suite.T(), result.Pagination.HasMore)
}

func (suite *DocumentServiceTestSuite) TestListInvalidStatus() {
	result, err := suite.documentService.List(&service.ListDocumentsQuery{Status: "published"})

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DocumentServiceTestSuite) TestListHasMore() {
	docs := make([]models.Document, 20)
	for i := range docs {
		docs[i] = *suite.headDocument()
	}

	suite.mockDocRepo.EXPECT().List(gomock.Any()).Return(docs, int64(45), nil).Times(1)

	result, err := suite.documentService.List(&service.ListDocumentsQuery{Limit: 20, Skip: 20})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Pagination.HasMore)
	assert.Equal(suite.T(), int64(45), result.Pagination.Total)
}

func (suite *DocumentServiceTestSuite) TestSearchQueryTooShort() {
	result, err := suite.documentService.Search(&service.SearchQuery{Query: " a "})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSearchQueryTooShort)
}

func (suite *DocumentServiceTestSuite) TestSearch() {
	docs := []models.Document{*suite.headDocument()}

	suite.mockDocRepo.EXPECT().Search(gomock.Any()).Return(docs, nil).Times(1)

	result, err := suite.documentService.Search(&service.SearchQuery{Query: "design"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "design", result.Query)
	assert.Equal(suite.T(), 1, result.Count)
	assert.Len(suite.T(), result.Results, 1)
}

func (suite *DocumentServiceTestSuite) TestArchive() {
	doc := suite.headDocument()

	suite.mockDocRepo.EXPECT().GetByID(doc.ID).Return(doc, nil).Times(1)
	suite.mockDocRepo.EXPECT().Save(doc).Return(nil).Times(1)

	var capturedEntry *models.DocumentVersion
	suite.mockVersionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.DocumentVersion) error {
			capturedEntry = entry
			return nil
		}).
		Times(1)

	err := suite.documentService.Archive(doc.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DocumentStatusArchived, doc.Status)
	assert.Equal(suite.T(), models.ChangeTypeArchived, capturedEntry.ChangeType)

	require.Len(suite.T(), suite.publisher.published, 1)
	assert.Equal(suite.T(), events.DocumentArchived, suite.publisher.published[0].Event)
}

func (suite *DocumentServiceTestSuite) TestAddRelation() {
	doc := suite.headDocument()
	target := suite.headDocument()

	req := &service.AddRelationRequest{
		DocumentID:   target.ID,
		RelationType: "reference",
	}

	suite.mockDocRepo.EXPECT().GetWithTeam(doc.ID).Return(doc, nil).Times(1)
	suite.mockDocRepo.EXPECT().GetByID(target.ID).Return(target, nil).Times(1)
	suite.mockDocRepo.EXPECT().Save(doc).Return(nil).Times(1)

	response, err := suite.documentService.AddRelation(doc.ID, req)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), response.RelatedDocuments, 1)
	assert.Equal(suite.T(), target.ID, response.RelatedDocuments[0].DocumentID)
	assert.Equal(suite.T(), 0.5, response.RelatedDocuments[0].Strength)
}

func (suite *DocumentServiceTestSuite) TestAddRelationInvalidType() {
	req := &service.AddRelationRequest{
		DocumentID:   uuid.New(),
		RelationType: "linked",
	}

	response, err := suite.documentService.AddRelation(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRelationType)
}

func (suite *DocumentServiceTestSuite) TestAddRelationInvalidStrength() {
	strength := 1.5
	req := &service.AddRelationRequest{
		DocumentID:   uuid.New(),
		RelationType: "reference",
		Strength:     &strength,
	}

	response, err := suite.documentService.AddRelation(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStrength)
}

func (suite *DocumentServiceTestSuite) TestAddRelationTargetMissing() {
	doc := suite.headDocument()
	targetID := uuid.New()

	req := &service.AddRelationRequest{
		DocumentID:   targetID,
		RelationType: "reference",
	}

	suite.mockDocRepo.EXPECT().GetWithTeam(doc.ID).Return(doc, nil).Times(1)
	suite.mockDocRepo.EXPECT().GetByID(targetID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.documentService.AddRelation(doc.ID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRelatedDocumentNotFound)
}

func (suite *DocumentServiceTestSuite) TestListVersionsResolvesRoot() {
	root := suite.headDocument()
	v2 := suite.headDocument()
	v2.ParentDocumentID = &root.ID
	v2.Version = 2

	suite.mockDocRepo.EXPECT().GetByID(v2.ID).Return(v2, nil).Times(1)
	suite.mockDocRepo.EXPECT().
		ListVersionChain(root.ID, 10, 0).
		Return([]models.Document{*v2, *root}, int64(2), nil).
		Times(1)

	result, err := suite.documentService.ListVersions(v2.ID, 0, 0)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Versions, 2)
	assert.Equal(suite.T(), 2, result.Versions[0].Version)
	assert.Equal(suite.T(), int64(2), result.Pagination.Total)
}

// TestDocumentServiceTestSuite runs the test suite
func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
