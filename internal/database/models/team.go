package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamSettings holds per-team behavior toggles. RequireApproval drives the
// status of every new document version created for the team.
type TeamSettings struct {
	AllowPublicView bool `json:"allow_public_view" gorm:"default:false"`
	RequireApproval bool `json:"require_approval" gorm:"default:true"`
}

// Team represents a team that owns documents and carries a member list
type Team struct {
	BaseModel
	Name        string       `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Slug        string       `json:"slug" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string       `json:"description" gorm:"size:500" validate:"max=500"`
	Color       string       `json:"color" gorm:"size:20;default:'#6366f1'"`
	Icon        string       `json:"icon" gorm:"size:20;default:'📋'"`
	IsActive    bool         `json:"is_active" gorm:"default:true"`
	Settings    TeamSettings `json:"settings" gorm:"embedded;embeddedPrefix:settings_"`

	// Relationships
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Documents []Document   `json:"documents,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember is one entry of a team's member list. The (team_id, user_id)
// pair is unique; user identity is a plain string, not a foreign key.
type TeamMember struct {
	BaseModel
	TeamID   uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	UserID   string     `json:"user_id" gorm:"size:100;not null;uniqueIndex:idx_team_members_team_user" validate:"required,max=100"`
	UserName string     `json:"user_name" gorm:"size:200;not null" validate:"required,max=200"`
	Role     MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt time.Time  `json:"joined_at"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
