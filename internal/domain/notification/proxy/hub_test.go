package proxy

import (
	"context"
	"testing"

	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/devsocial/backend/internal/model"
	"github.com/stretchr/testify/require"
)

func notificationMessage(id int64) *event.Message {
	return event.NewNotification(model.Notification{ID: id})
}

func Test_UserHub_Send_fanOut(t *testing.T) {
	hub := NewUserHub("user1")

	first := NewSession("user1")
	second := NewSession("user1")
	first.Join(hub)
	second.Join(hub)

	hub.Send(notificationMessage(1))

	require.Equal(t, int64(1), (<-first.C).Notification.ID)
	require.Equal(t, int64(1), (<-second.C).Notification.ID)

	// After a session leaves, only the remaining one receives.
	first.Leave()
	hub.Send(notificationMessage(2))

	require.Equal(t, int64(2), (<-second.C).Notification.ID)
	require.Empty(t, first.C)
}

func Test_UserHub_Send_dropsWhenBufferFull(t *testing.T) {
	hub := NewUserHub("user1")

	session := NewSession("user1")
	session.Join(hub)

	for i := 0; i < cap(session.C)+10; i++ {
		hub.Send(notificationMessage(int64(i)))
	}

	// Overflowing messages are dropped, never blocked on.
	require.Len(t, session.C, cap(session.C))
}

func Test_Router_GetHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := NewRouter(ctx)
	require.Same(t, router.GetHub("user1"), router.GetHub("user1"))
	require.NotSame(t, router.GetHub("user1"), router.GetHub("user2"))
}

func Test_Router_Route(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := NewRouter(ctx)
	session := NewSession("user1")
	session.Join(router.GetHub("user1"))

	router.Route("user1", notificationMessage(1))
	require.Equal(t, int64(1), (<-session.C).Notification.ID)

	// Unknown recipients are skipped without error.
	router.Route("nobody", notificationMessage(2))
	require.Empty(t, session.C)
}

func Test_Router_cleanup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := NewRouter(ctx)
	session := NewSession("user1")
	session.Join(router.GetHub("user1"))
	router.GetHub("user2")

	router.cleanup()

	// Only hubs without sessions are collected.
	router.mutex.RLock()
	_, busy := router.hubs["user1"]
	_, idle := router.hubs["user2"]
	router.mutex.RUnlock()
	require.True(t, busy)
	require.False(t, idle)
}
