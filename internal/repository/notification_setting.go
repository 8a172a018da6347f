package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type NotificationSettingRepository interface {
	Get(ctx context.Context, userID string) (*entity.NotificationSetting, error)
	Upsert(ctx context.Context, setting *entity.NotificationSetting) error
}

type notificationSettingRepository struct{}

func NewNotificationSettingRepository() *notificationSettingRepository {
	return &notificationSettingRepository{}
}

func (r *notificationSettingRepository) Get(
	ctx context.Context, userID string,
) (*entity.NotificationSetting, error) {
	var result entity.NotificationSetting
	if err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *notificationSettingRepository) Upsert(
	ctx context.Context, setting *entity.NotificationSetting,
) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(setting).Error
}
