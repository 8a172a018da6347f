package domain

import (
	"context"

	"github.com/devsocial/backend/internal/domain/notification"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
)

// captureDispatcher records every dispatched notification so tests can
// assert on the push path without a live websocket.
type captureDispatcher struct {
	dispatched []model.Notification
	recipients []string
}

func (d *captureDispatcher) Dispatch(
	ctx context.Context, recipientID string, n model.Notification,
) {
	d.recipients = append(d.recipients, recipientID)
	d.dispatched = append(d.dispatched, n)
}

func newTestNotifier() (*Notifier, *captureDispatcher) {
	dispatcher := &captureDispatcher{}
	notifier := NewNotifier(
		repository.NewNotificationRepository(),
		repository.NewNotificationSettingRepository(),
		dispatcher,
	)

	return notifier, dispatcher
}

var _ notification.Dispatcher = (*captureDispatcher)(nil)
