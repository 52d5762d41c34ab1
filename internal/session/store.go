// Package session keeps per-conversation message logs. Logs are append-only,
// start from a fixed greeting, and are never persisted beyond the session.
package session

import (
	"sync"
	"time"

	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const Greeting = "Hi! I'm your AI Career Assistant. I can help you with:\n\n" +
	"• Interview preparation\n" +
	"• Resume and cover letter advice\n" +
	"• Career path guidance\n" +
	"• Salary negotiation tips\n" +
	"• Skill development recommendations\n" +
	"• Job search strategies\n\n" +
	"What would you like to discuss today?"

type Store struct {
	mu       sync.Mutex
	sessions *gocache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: gocache.New(ttl, 2*ttl)}
}

// Create starts a conversation containing only the greeting and returns its
// id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.sessions.SetDefault(id, []entities.ChatMessage{greetingMessage()})
	return id
}

// Append adds a message to an existing conversation. Appending to an unknown
// or expired session starts a fresh one under the same id.
func (s *Store) Append(id string, message entities.ChatMessage) []entities.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := []entities.ChatMessage{greetingMessage()}
	if cached, found := s.sessions.Get(id); found {
		history = cached.([]entities.ChatMessage)
	}

	history = append(history, message)
	s.sessions.SetDefault(id, history)
	return history
}

func (s *Store) History(id string) ([]entities.ChatMessage, bool) {
	cached, found := s.sessions.Get(id)
	if !found {
		return nil, false
	}
	return cached.([]entities.ChatMessage), true
}

// Reset returns the conversation to its initial greeting-only state.
func (s *Store) Reset(id string) []entities.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := []entities.ChatMessage{greetingMessage()}
	s.sessions.SetDefault(id, history)
	return history
}

func greetingMessage() entities.ChatMessage {
	return entities.ChatMessage{
		Role:      entities.RoleAssistant,
		Content:   Greeting,
		Timestamp: time.Now().UTC(),
	}
}
