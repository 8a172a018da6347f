package entity

import (
	"time"

	"github.com/devsocial/backend/pkg/enum"
)

type ProjectStatus string

var (
	ProjectActive    = enum.New(ProjectStatus("active"))
	ProjectCompleted = enum.New(ProjectStatus("completed"))
	ProjectOnHold    = enum.New(ProjectStatus("on_hold"))
)

type CollaboratorRole string

var (
	RoleOwner       = enum.New(CollaboratorRole("owner"))
	RoleContributor = enum.New(CollaboratorRole("contributor"))
	RoleViewer      = enum.New(CollaboratorRole("viewer"))
)

type RequestStatus string

var (
	RequestPending  = enum.New(RequestStatus("pending"))
	RequestApproved = enum.New(RequestStatus("approved"))
	RequestRejected = enum.New(RequestStatus("rejected"))
)

type Project struct {
	Base

	CreatorID string `gorm:"not null;index"`
	Creator   User   `gorm:"foreignKey:CreatorID"`

	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	RepoURL     string
	Status      ProjectStatus `gorm:"default:active"`

	TechStack []Skill `gorm:"many2many:project_skills;"`
}

func (Project) TableName() string {
	return "projects"
}

type Skill struct {
	Base

	Name     string `gorm:"unique;not null"`
	Category string `gorm:"default:other"`
}

func (Skill) TableName() string {
	return "skills"
}

type ProjectCollaborator struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	ProjectID string  `gorm:"primaryKey"`
	Project   Project `gorm:"foreignKey:ProjectID"`

	Role     CollaboratorRole `gorm:"not null"`
	JoinedAt time.Time
}

func (ProjectCollaborator) TableName() string {
	return "project_collaborators"
}

// CollaborationRequest holds at most one row per (user, project) pair.
// pending is the only non-terminal status.
type CollaborationRequest struct {
	Base

	UserID string `gorm:"not null;uniqueIndex:idx_request_user_project"`
	User   User   `gorm:"foreignKey:UserID"`

	ProjectID string  `gorm:"not null;uniqueIndex:idx_request_user_project"`
	Project   Project `gorm:"foreignKey:ProjectID"`

	Message string        `gorm:"type:text"`
	Status  RequestStatus `gorm:"default:pending"`
}

func (CollaborationRequest) TableName() string {
	return "collaboration_requests"
}
