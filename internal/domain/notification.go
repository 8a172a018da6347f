package domain

import (
	"context"
	"errors"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type NotificationDomain interface {
	GetList(context.Context, *model.GetNotificationsRequest) (*model.GetNotificationsResponse, error)
	MarkRead(context.Context, *model.MarkNotificationReadRequest) (*model.MarkNotificationReadResponse, error)
	MarkAllRead(context.Context, *model.MarkAllNotificationsReadRequest) (*model.MarkAllNotificationsReadResponse, error)
	GetUnreadCount(context.Context, *model.GetUnreadCountRequest) (*model.GetUnreadCountResponse, error)
	Delete(context.Context, *model.DeleteNotificationRequest) (*model.DeleteNotificationResponse, error)
	GetSettings(context.Context, *model.GetNotificationSettingsRequest) (*model.GetNotificationSettingsResponse, error)
	UpdateSettings(context.Context, *model.UpdateNotificationSettingsRequest) (*model.UpdateNotificationSettingsResponse, error)
}

type notificationDomain struct {
	notificationRepo repository.NotificationRepository
	settingRepo      repository.NotificationSettingRepository
}

func NewNotificationDomain(
	notificationRepo repository.NotificationRepository,
	settingRepo repository.NotificationSettingRepository,
) *notificationDomain {
	return &notificationDomain{
		notificationRepo: notificationRepo,
		settingRepo:      settingRepo,
	}
}

func (d *notificationDomain) GetList(
	ctx context.Context, req *model.GetNotificationsRequest,
) (*model.GetNotificationsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	notifications, err := d.notificationRepo.GetList(ctx, repository.NotificationFilter{
		RecipientID: xcontext.RequestUserID(ctx),
		UnreadOnly:  req.UnreadOnly,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get notifications: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.Notification{}
	for i := range notifications {
		converted = append(converted, model.ConvertNotification(&notifications[i]))
	}

	return &model.GetNotificationsResponse{Notifications: converted}, nil
}

// MarkRead is idempotent. Marking an already read notification succeeds;
// marking someone else's notification is a not found error.
func (d *notificationDomain) MarkRead(
	ctx context.Context, req *model.MarkNotificationReadRequest,
) (*model.MarkNotificationReadResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if _, err := d.notificationRepo.Get(ctx, req.NotificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found notification")
		}

		xcontext.Logger(ctx).Errorf("Cannot get notification: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.notificationRepo.MarkRead(ctx, req.NotificationID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notification as read: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MarkNotificationReadResponse{}, nil
}

func (d *notificationDomain) MarkAllRead(
	ctx context.Context, req *model.MarkAllNotificationsReadRequest,
) (*model.MarkAllNotificationsReadResponse, error) {
	updated, err := d.notificationRepo.MarkAllRead(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notifications as read: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MarkAllNotificationsReadResponse{Updated: updated}, nil
}

func (d *notificationDomain) GetUnreadCount(
	ctx context.Context, req *model.GetUnreadCountRequest,
) (*model.GetUnreadCountResponse, error) {
	count, err := d.notificationRepo.CountUnread(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count unread notifications: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUnreadCountResponse{Count: count}, nil
}

func (d *notificationDomain) Delete(
	ctx context.Context, req *model.DeleteNotificationRequest,
) (*model.DeleteNotificationResponse, error) {
	rows, err := d.notificationRepo.Delete(ctx, req.NotificationID, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete notification: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found notification")
	}

	return &model.DeleteNotificationResponse{}, nil
}

func (d *notificationDomain) GetSettings(
	ctx context.Context, req *model.GetNotificationSettingsRequest,
) (*model.GetNotificationSettingsResponse, error) {
	setting, err := d.settingRepo.Get(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp := model.GetNotificationSettingsResponse(defaultNotificationSetting())
			return &resp, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get notification settings: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetNotificationSettingsResponse(model.ConvertNotificationSetting(setting))
	return &resp, nil
}

func (d *notificationDomain) UpdateSettings(
	ctx context.Context, req *model.UpdateNotificationSettingsRequest,
) (*model.UpdateNotificationSettingsResponse, error) {
	setting := &entity.NotificationSetting{
		UserID:               xcontext.RequestUserID(ctx),
		EmailLikes:           req.EmailLikes,
		EmailComments:        req.EmailComments,
		EmailFollows:         req.EmailFollows,
		EmailMentions:        req.EmailMentions,
		EmailProjectInvites:  req.EmailProjectInvites,
		EmailProjectRequests: req.EmailProjectRequests,
		PushLikes:            req.PushLikes,
		PushComments:         req.PushComments,
		PushFollows:          req.PushFollows,
		PushMentions:         req.PushMentions,
		PushProjectInvites:   req.PushProjectInvites,
		PushProjectRequests:  req.PushProjectRequests,
	}

	if err := d.settingRepo.Upsert(ctx, setting); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert notification settings: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateNotificationSettingsResponse(model.ConvertNotificationSetting(setting))
	return &resp, nil
}

func defaultNotificationSetting() model.NotificationSetting {
	return model.NotificationSetting{
		EmailLikes:           true,
		EmailComments:        true,
		EmailFollows:         true,
		EmailMentions:        true,
		EmailProjectInvites:  true,
		EmailProjectRequests: true,
		PushLikes:            true,
		PushComments:         true,
		PushFollows:          true,
		PushMentions:         true,
		PushProjectInvites:   true,
		PushProjectRequests:  true,
	}
}
