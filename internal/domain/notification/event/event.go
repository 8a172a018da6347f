package event

import "github.com/devsocial/backend/internal/model"

// Channel is the pub/sub channel the api process publishes envelopes on and
// proxy processes subscribe to.
const Channel = "notifications"

const (
	// TypeNotification is pushed to the client when a new notification is
	// written for it.
	TypeNotification = "notification"

	// TypeMarkAsRead is sent by the client over the stream to mark a single
	// notification as read.
	TypeMarkAsRead = "mark_as_read"

	// TypeNotificationMarkedRead acknowledges a successful TypeMarkAsRead.
	TypeNotificationMarkedRead = "notification_marked_read"
)

// Message is the frame exchanged on the notification stream. Type selects
// which payload field is meaningful.
type Message struct {
	Type           string              `json:"type"`
	Notification   *model.Notification `json:"notification,omitempty"`
	NotificationID int64               `json:"notification_id,omitempty"`
}

func NewNotification(notification model.Notification) *Message {
	return &Message{
		Type:         TypeNotification,
		Notification: &notification,
	}
}

func NewMarkedRead(notificationID int64) *Message {
	return &Message{
		Type:           TypeNotificationMarkedRead,
		NotificationID: notificationID,
	}
}

// Envelope carries a notification between the api process and the proxy
// over the broker. Delivery is best effort; the durable copy is already in
// the database before the envelope is published.
type Envelope struct {
	RecipientID  string             `json:"recipient_id"`
	Notification model.Notification `json:"notification"`
}
