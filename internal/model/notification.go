package model

type Notification struct {
	ID         int64  `json:"id"`
	Sender     User   `json:"sender"`
	Type       string `json:"type"`
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
	Text       string `json:"text"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

type NotificationSetting struct {
	EmailLikes           bool `json:"email_likes"`
	EmailComments        bool `json:"email_comments"`
	EmailFollows         bool `json:"email_follows"`
	EmailMentions        bool `json:"email_mentions"`
	EmailProjectInvites  bool `json:"email_project_invites"`
	EmailProjectRequests bool `json:"email_project_requests"`

	PushLikes           bool `json:"push_likes"`
	PushComments        bool `json:"push_comments"`
	PushFollows         bool `json:"push_follows"`
	PushMentions        bool `json:"push_mentions"`
	PushProjectInvites  bool `json:"push_project_invites"`
	PushProjectRequests bool `json:"push_project_requests"`
}

type GetNotificationsRequest struct {
	UnreadOnly bool `json:"unread_only"`
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
}

type GetNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type MarkNotificationReadRequest struct {
	NotificationID int64 `json:"notification_id"`
}

type MarkNotificationReadResponse struct{}

type MarkAllNotificationsReadRequest struct{}

type MarkAllNotificationsReadResponse struct {
	Updated int64 `json:"updated"`
}

type GetUnreadCountRequest struct{}

type GetUnreadCountResponse struct {
	Count int64 `json:"count"`
}

type DeleteNotificationRequest struct {
	NotificationID int64 `json:"notification_id"`
}

type DeleteNotificationResponse struct{}

type GetNotificationSettingsRequest struct{}

type GetNotificationSettingsResponse NotificationSetting

type UpdateNotificationSettingsRequest NotificationSetting

type UpdateNotificationSettingsResponse NotificationSetting

type ServeNotificationRequest struct{}
