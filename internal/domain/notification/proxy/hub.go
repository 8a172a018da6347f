package proxy

import (
	"sync"

	"github.com/devsocial/backend/internal/domain/notification/event"
)

// UserHub fans a message out to every live session of one user. Sends are
// best effort; a session whose buffer is full misses the message rather
// than blocking the hub.
type UserHub struct {
	userID   string
	sessions map[string]*Session

	mutex sync.RWMutex
}

func NewUserHub(userID string) *UserHub {
	return &UserHub{
		userID:   userID,
		sessions: make(map[string]*Session),
		mutex:    sync.RWMutex{},
	}
}

func (h *UserHub) Send(msg *event.Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, s := range h.sessions {
		select {
		case s.C <- msg:
		default:
		}
	}
}

func (h *UserHub) register(session *Session) {
	h.mutex.RLock()
	_, ok := h.sessions[session.id]
	h.mutex.RUnlock()
	if ok {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	// Double check.
	if _, ok := h.sessions[session.id]; !ok {
		h.sessions[session.id] = session
	}
}

func (h *UserHub) unregister(session *Session) {
	h.mutex.RLock()
	_, ok := h.sessions[session.id]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.sessions, session.id)
}

func (h *UserHub) IsEmpty() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.sessions) == 0
}
