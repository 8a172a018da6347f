package proxy

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProxyServer struct {
	router           *Router
	notificationRepo repository.NotificationRepository
}

func NewProxyServer(
	router *Router,
	notificationRepo repository.NotificationRepository,
) *ProxyServer {
	return &ProxyServer{
		router:           router,
		notificationRepo: notificationRepo,
	}
}

// ServeNotification keeps a client connected to its notification stream. It
// returns when the client disconnects or the session is torn down.
func (server *ProxyServer) ServeNotification(
	ctx context.Context, req *model.ServeNotificationRequest,
) error {
	userID := xcontext.RequestUserID(ctx)

	session := NewSession(userID)
	session.Join(server.router.GetHub(userID))
	defer session.Leave()

	wsClient := xcontext.WSClient(ctx)
	for {
		select {
		case msg, ok := <-session.C:
			if !ok {
				return errorx.New(errorx.Unavailable, "Session is closed")
			}

			b, err := json.Marshal(msg)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Cannot marshal message: %v", err)
				continue
			}

			if err := wsClient.Write(b); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot send message to client: %v", err)
				return errorx.Unknown
			}

		case raw, ok := <-wsClient.R:
			if !ok {
				return nil
			}

			var msg event.Message
			if err := json.Unmarshal(raw, &msg); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot unmarshal message: %v", err)
				return errorx.New(errorx.BadRequest, "Invalid message")
			}

			switch msg.Type {
			case event.TypeMarkAsRead:
				server.handleMarkAsRead(ctx, wsClient.Write, userID, msg.NotificationID)
			}
		}
	}
}

func (server *ProxyServer) handleMarkAsRead(
	ctx context.Context, write func([]byte) error, userID string, notificationID int64,
) {
	_, err := server.notificationRepo.Get(ctx, notificationID, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get notification: %v", err)
		}
		return
	}

	if err := server.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notification as read: %v", err)
		return
	}

	b, err := json.Marshal(event.NewMarkedRead(notificationID))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal ack: %v", err)
		return
	}

	if err := write(b); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot send ack to client: %v", err)
	}
}
