// Package chat holds the linear transcript of the dashboard assistant.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
)

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in the transcript. Messages are immutable once
// appended; the transcript is append-only and insertion-ordered.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

var (
	// ErrEmptyMessage is returned for empty or whitespace-only input.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrPending is returned while a prior exchange is still in flight.
	// Exchanges are serialized: one at a time.
	ErrPending = errors.New("chat: a response is still pending")
)

const greeting = "System online. Organic Intelligence interface ready. Awaiting command input."

// Session is a single user's conversation with the assistant.
type Session struct {
	conv ai.Converser

	mu       sync.Mutex
	messages []Message
	pending  bool
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession(conv ai.Converser) *Session {
	return &Session{
		conv: conv,
		messages: []Message{{
			ID:        uuid.NewString(),
			Role:      RoleAssistant,
			Text:      greeting,
			Timestamp: time.Now(),
		}},
	}
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Pending reports whether an exchange is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Send appends a user turn, obtains the assistant reply and appends it.
// Empty input and sends while a prior exchange is pending are rejected
// without touching the transcript. The reply cannot fail: provider errors
// are already degraded to a fallback string by the Converser.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return Message{}, ErrPending
	}
	s.pending = true
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      trimmed,
		Timestamp: time.Now(),
	})
	s.mu.Unlock()

	reply := s.conv.Converse(ctx, trimmed)

	s.mu.Lock()
	defer s.mu.Unlock()
	msg := Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Text:      reply,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	s.pending = false
	log.Debug().Int("transcriptLen", len(s.messages)).Msg("chat exchange completed")
	return msg, nil
}
