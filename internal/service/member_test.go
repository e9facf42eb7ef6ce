package service_test

import (
	"testing"

	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"
	"team-docs-backend/internal/mocks"
	"team-docs-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	memberService  *service.MemberService
	validator      *validator.Validate
	teamID         uuid.UUID
	team           *models.Team
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.memberService = service.NewMemberService(suite.mockTeamRepo, suite.mockMemberRepo, suite.validator)

	suite.teamID = uuid.New()
	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: suite.teamID},
		Name:      "Engineering",
		Slug:      "engineering",
		IsActive:  true,
	}
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) reloadedTeam(members ...models.TeamMember) *models.Team {
	team := *suite.team
	team.Members = members
	return &team
}

func (suite *MemberServiceTestSuite) TestAddMember() {
	req := &service.AddMemberRequest{
		UserID:   "u1",
		UserName: "User One",
	}

	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(suite.team, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(suite.teamID, "u1").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockTeamRepo.EXPECT().
		GetWithMembers(suite.teamID).
		Return(suite.reloadedTeam(models.TeamMember{
			TeamID: suite.teamID, UserID: "u1", UserName: "User One", Role: models.MemberRoleMember,
		}), nil).
		Times(1)

	response, err := suite.memberService.AddMember(suite.teamID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Members, 1)
	assert.Equal(suite.T(), "u1", response.Members[0].UserID)
	assert.Equal(suite.T(), models.MemberRoleMember, response.Members[0].Role)
}

func (suite *MemberServiceTestSuite) TestAddMemberDuplicate() {
	req := &service.AddMemberRequest{
		UserID:   "u1",
		UserName: "User One",
	}

	existing := &models.TeamMember{TeamID: suite.teamID, UserID: "u1"}

	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(suite.team, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(suite.teamID, "u1").
		Return(existing, nil).
		Times(1)

	response, err := suite.memberService.AddMember(suite.teamID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberExists)
}

func (suite *MemberServiceTestSuite) TestAddMemberInvalidRole() {
	req := &service.AddMemberRequest{
		UserID:   "u1",
		UserName: "User One",
		Role:     "admin",
	}

	response, err := suite.memberService.AddMember(suite.teamID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

func (suite *MemberServiceTestSuite) TestAddMemberTeamNotFound() {
	req := &service.AddMemberRequest{
		UserID:   "u1",
		UserName: "User One",
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(suite.teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.memberService.AddMember(suite.teamID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *MemberServiceTestSuite) TestRemoveMember() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(suite.team, nil).Times(1)
	suite.mockMemberRepo.EXPECT().Delete(suite.teamID, "u1").Return(nil).Times(1)
	suite.mockTeamRepo.EXPECT().
		GetWithMembers(suite.teamID).
		Return(suite.reloadedTeam(), nil).
		Times(1)

	response, err := suite.memberService.RemoveMember(suite.teamID, "u1")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Members)
}

func (suite *MemberServiceTestSuite) TestRemoveMemberNotFound() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(suite.team, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		Delete(suite.teamID, "ghost").
		Return(gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.memberService.RemoveMember(suite.teamID, "ghost")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

func (suite *MemberServiceTestSuite) TestUpdateMemberRole() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(suite.team, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		UpdateRole(suite.teamID, "u1", models.MemberRoleLeader).
		Return(nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		GetWithMembers(suite.teamID).
		Return(suite.reloadedTeam(models.TeamMember{
			TeamID: suite.teamID, UserID: "u1", UserName: "User One", Role: models.MemberRoleLeader,
		}), nil).
		Times(1)

	response, err := suite.memberService.UpdateMemberRole(suite.teamID, "u1", "leader")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MemberRoleLeader, response.Members[0].Role)
}

func (suite *MemberServiceTestSuite) TestUpdateMemberRoleInvalid() {
	response, err := suite.memberService.UpdateMemberRole(suite.teamID, "u1", "owner")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
