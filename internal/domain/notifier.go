package domain

import (
	"context"
	"errors"
	"regexp"

	"github.com/devsocial/backend/internal/domain/notification"
	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/xcontext"
	"gorm.io/gorm"
)

var mentionRegexp = regexp.MustCompile(`@([a-zA-Z0-9_]+)`)

// Notifier writes a notification row and pushes it to the recipient's live
// sessions. It is shared by every domain that emits notifications.
//
// Notify must be called outside of any transaction; the push happens right
// after the row is written and cannot be rolled back.
type Notifier struct {
	notificationRepo repository.NotificationRepository
	settingRepo      repository.NotificationSettingRepository
	dispatcher       notification.Dispatcher
}

func NewNotifier(
	notificationRepo repository.NotificationRepository,
	settingRepo repository.NotificationSettingRepository,
	dispatcher notification.Dispatcher,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		settingRepo:      settingRepo,
		dispatcher:       dispatcher,
	}
}

// Notify is best effort. Failures are logged and never propagated to the
// action that triggered the notification.
func (n *Notifier) Notify(
	ctx context.Context,
	recipientID string,
	sender *entity.User,
	notificationType entity.NotificationType,
	targetType entity.TargetType,
	targetID string,
	text string,
) {
	if sender == nil || recipientID == sender.ID {
		return
	}

	record := &entity.Notification{
		SnowflakeBase: entity.SnowflakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		RecipientID:   recipientID,
		SenderID:      sender.ID,
		Type:          notificationType,
		TargetType:    targetType,
		TargetID:      targetID,
		Text:          text,
	}

	if err := n.notificationRepo.Create(ctx, record); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create notification: %v", err)
		return
	}

	if !n.pushEnabled(ctx, recipientID, notificationType) {
		return
	}

	record.Sender = *sender
	n.dispatcher.Dispatch(ctx, recipientID, model.ConvertNotification(record))
}

// NotifyMentions scans content for @username references and notifies every
// mentioned user. The author and the recipient of the primary notification
// are skipped so nobody is notified twice for one action.
func (n *Notifier) NotifyMentions(
	ctx context.Context,
	userRepo repository.UserRepository,
	sender *entity.User,
	content string,
	targetType entity.TargetType,
	targetID string,
	skipIDs ...string,
) {
	matches := mentionRegexp.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return
	}

	usernames := []string{}
	for _, m := range matches {
		usernames = append(usernames, m[1])
	}

	users, err := userRepo.GetByUsernames(ctx, usernames)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mentioned users: %v", err)
		return
	}

	skip := map[string]bool{}
	for _, id := range skipIDs {
		skip[id] = true
	}

	for i := range users {
		if skip[users[i].ID] {
			continue
		}

		n.Notify(ctx, users[i].ID, sender, entity.NotificationMention,
			targetType, targetID, sender.Username+" mentioned you")
	}
}

func (n *Notifier) pushEnabled(
	ctx context.Context, recipientID string, notificationType entity.NotificationType,
) bool {
	setting, err := n.settingRepo.Get(ctx, recipientID)
	if err != nil {
		// No row means the user never changed the defaults.
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get notification settings: %v", err)
		}
		return true
	}

	switch notificationType {
	case entity.NotificationLike:
		return setting.PushLikes
	case entity.NotificationComment:
		return setting.PushComments
	case entity.NotificationFollow:
		return setting.PushFollows
	case entity.NotificationMention:
		return setting.PushMentions
	case entity.NotificationProjectInvite:
		return setting.PushProjectInvites
	case entity.NotificationProjectRequest,
		entity.NotificationProjectAccepted,
		entity.NotificationProjectRejected:
		return setting.PushProjectRequests
	}

	return true
}
