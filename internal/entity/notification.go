package entity

import "github.com/devsocial/backend/pkg/enum"

type NotificationType string

var (
	NotificationLike            = enum.New(NotificationType("like"))
	NotificationComment         = enum.New(NotificationType("comment"))
	NotificationFollow          = enum.New(NotificationType("follow"))
	NotificationMention         = enum.New(NotificationType("mention"))
	NotificationProjectInvite   = enum.New(NotificationType("project_invite"))
	NotificationProjectRequest  = enum.New(NotificationType("project_request"))
	NotificationProjectAccepted = enum.New(NotificationType("project_accepted"))
	NotificationProjectRejected = enum.New(NotificationType("project_rejected"))
)

// TargetType tags the entity a notification points at. Consumers switch
// over the known kinds instead of looking tables up at runtime.
type TargetType string

var (
	TargetPost                 = enum.New(TargetType("post"))
	TargetComment              = enum.New(TargetType("comment"))
	TargetUser                 = enum.New(TargetType("user"))
	TargetProject              = enum.New(TargetType("project"))
	TargetCollaborationRequest = enum.New(TargetType("collaboration_request"))
)

type Notification struct {
	SnowflakeBase

	RecipientID string `gorm:"not null;index:idx_recipient_created_at"`
	Recipient   User   `gorm:"foreignKey:RecipientID"`

	SenderID string `gorm:"not null"`
	Sender   User   `gorm:"foreignKey:SenderID"`

	Type NotificationType `gorm:"not null"`

	TargetType TargetType `gorm:"not null"`
	TargetID   string     `gorm:"not null"`

	Text   string `gorm:"not null"`
	IsRead bool   `gorm:"default:false"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationSetting is one-to-one with users. A missing row means every
// toggle is enabled; rows are only written by the explicit settings update,
// which always sets all fields, so no column-level defaults are needed.
type NotificationSetting struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	EmailLikes           bool
	EmailComments        bool
	EmailFollows         bool
	EmailMentions        bool
	EmailProjectInvites  bool
	EmailProjectRequests bool

	PushLikes           bool
	PushComments        bool
	PushFollows         bool
	PushMentions        bool
	PushProjectInvites  bool
	PushProjectRequests bool
}

func (NotificationSetting) TableName() string {
	return "notification_settings"
}
