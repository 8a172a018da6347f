package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type NotificationFilter struct {
	RecipientID string
	UnreadOnly  bool
	Offset      int
	Limit       int
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	Get(ctx context.Context, id int64, recipientID string) (*entity.Notification, error)
	GetList(ctx context.Context, filter NotificationFilter) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id int64, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	Delete(ctx context.Context, id int64, recipientID string) (int64, error)
}

type notificationRepository struct{}

func NewNotificationRepository() *notificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return xcontext.DB(ctx).Create(notification).Error
}

// Get scopes lookups by recipient. A notification owned by someone else is
// indistinguishable from one that never existed.
func (r *notificationRepository) Get(
	ctx context.Context, id int64, recipientID string,
) (*entity.Notification, error) {
	var result entity.Notification
	err := xcontext.DB(ctx).
		Preload("Sender").
		Take(&result, "id=? AND recipient_id=?", id, recipientID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *notificationRepository) GetList(
	ctx context.Context, filter NotificationFilter,
) ([]entity.Notification, error) {
	tx := xcontext.DB(ctx).
		Preload("Sender").
		Where("recipient_id=?", filter.RecipientID)
	if filter.UnreadOnly {
		tx = tx.Where("is_read=?", false)
	}

	// Snowflake ids are time sortable, so they break created_at ties in
	// insertion order.
	var result []entity.Notification
	err := tx.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64, recipientID string) error {
	return xcontext.DB(ctx).
		Model(&entity.Notification{}).
		Where("id=? AND recipient_id=?", id, recipientID).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Notification{}).
		Where("recipient_id=? AND is_read=?", recipientID, false).
		Update("is_read", true)
	return tx.RowsAffected, tx.Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Notification{}).
		Where("recipient_id=? AND is_read=?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) Delete(ctx context.Context, id int64, recipientID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("id=? AND recipient_id=?", id, recipientID).
		Delete(&entity.Notification{})
	return tx.RowsAffected, tx.Error
}
