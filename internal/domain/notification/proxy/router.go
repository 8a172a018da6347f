package proxy

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

// Router keeps one UserHub per connected user and routes incoming envelopes
// to them. Hubs with no sessions left are garbage collected periodically.
type Router struct {
	hubs map[string]*UserHub

	mutex sync.RWMutex
}

func NewRouter(ctx context.Context) *Router {
	router := &Router{
		hubs:  make(map[string]*UserHub),
		mutex: sync.RWMutex{},
	}

	go router.run(ctx)
	return router
}

func (r *Router) GetHub(userID string) *UserHub {
	r.mutex.RLock()
	hub, ok := r.hubs[userID]
	r.mutex.RUnlock()
	if ok {
		return hub
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	// Double check.
	if _, ok := r.hubs[userID]; !ok {
		r.hubs[userID] = NewUserHub(userID)
	}

	return r.hubs[userID]
}

// Route delivers msg to every live session of recipientID. A recipient with
// no hub on this process is simply skipped.
func (r *Router) Route(recipientID string, msg *event.Message) {
	r.mutex.RLock()
	hub, ok := r.hubs[recipientID]
	r.mutex.RUnlock()

	if ok {
		hub.Send(msg)
	}
}

// Subscribe consumes envelopes published by the api process and routes them
// to local hubs. It blocks until ctx is cancelled.
func (r *Router) Subscribe(ctx context.Context, client *redis.Client, channel string) {
	pubsub := client.Subscribe(ctx, channel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}

			var envelope event.Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot unmarshal envelope: %v", err)
				continue
			}

			r.Route(envelope.RecipientID, event.NewNotification(envelope.Notification))
		}
	}
}

func (r *Router) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(30 * time.Second):
			r.cleanup()
		}
	}
}

func (r *Router) cleanup() {
	emptyHubs := []string{}

	r.mutex.RLock()
	for _, h := range r.hubs {
		if h.IsEmpty() {
			emptyHubs = append(emptyHubs, h.userID)
		}
	}
	r.mutex.RUnlock()

	if len(emptyHubs) == 0 {
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, userID := range emptyHubs {
		if hub, ok := r.hubs[userID]; ok && hub.IsEmpty() {
			delete(r.hubs, userID)
		}
	}
}
