package notification

import (
	"context"
	"encoding/json"

	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/devsocial/backend/internal/domain/notification/proxy"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

// Dispatcher pushes a freshly written notification towards live websocket
// sessions. Dispatch is called after the database write committed and must
// never fail the request; delivery is at most once.
type Dispatcher interface {
	Dispatch(ctx context.Context, recipientID string, notification model.Notification)
}

// localDispatcher routes directly to hubs living in the same process.
type localDispatcher struct {
	router *proxy.Router
}

func NewLocalDispatcher(router *proxy.Router) *localDispatcher {
	return &localDispatcher{router: router}
}

func (d *localDispatcher) Dispatch(
	ctx context.Context, recipientID string, notification model.Notification,
) {
	d.router.Route(recipientID, event.NewNotification(notification))
}

// redisDispatcher publishes envelopes for proxy processes subscribed on the
// same channel.
type redisDispatcher struct {
	client  *redis.Client
	channel string
}

func NewRedisDispatcher(client *redis.Client, channel string) *redisDispatcher {
	return &redisDispatcher{client: client, channel: channel}
}

func (d *redisDispatcher) Dispatch(
	ctx context.Context, recipientID string, notification model.Notification,
) {
	b, err := json.Marshal(event.Envelope{
		RecipientID:  recipientID,
		Notification: notification,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal envelope: %v", err)
		return
	}

	if err := d.client.Publish(ctx, d.channel, b).Err(); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish envelope: %v", err)
	}
}

// multiDispatcher fans out to every wrapped dispatcher.
type multiDispatcher struct {
	dispatchers []Dispatcher
}

func NewMultiDispatcher(dispatchers ...Dispatcher) *multiDispatcher {
	return &multiDispatcher{dispatchers: dispatchers}
}

func (d *multiDispatcher) Dispatch(
	ctx context.Context, recipientID string, notification model.Notification,
) {
	for _, dispatcher := range d.dispatchers {
		dispatcher.Dispatch(ctx, recipientID, notification)
	}
}
