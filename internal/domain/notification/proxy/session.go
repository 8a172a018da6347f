package proxy

import (
	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/google/uuid"
)

// Session is one websocket connection of one user. A user can hold several
// sessions at once; each receives its own copy of every message.
type Session struct {
	C chan *event.Message

	id        string
	userID    string
	joinedHub *UserHub
}

func NewSession(userID string) *Session {
	return &Session{
		C:         make(chan *event.Message, 16),
		id:        uuid.NewString(),
		userID:    userID,
		joinedHub: nil,
	}
}

func (s *Session) Join(hub *UserHub) {
	hub.register(s)
	s.joinedHub = hub
}

func (s *Session) Leave() {
	if s.joinedHub != nil {
		s.joinedHub.unregister(s)
		s.joinedHub = nil
	}

	close(s.C)
}
