// Package chat holds the per-turn conversation session: an ordered message
// history with the invariant that at most one system message exists and, if
// present, it sits at position 0. The server is stateless across turns; a
// Session is built from the client-supplied history on every request and
// discarded once the response is returned.
package chat

import (
	"fmt"
	"time"

	"local-llm-chat/models"
)

// ValidationError reports a malformed client-supplied history.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Session is an append-only message sequence. Existing messages are never
// mutated after Normalize accepts them.
type Session struct {
	messages []models.ChatMessage
}

// Normalize validates a raw history and builds a Session from it.
//
// When systemPrompt is non-empty and the history carries no system message,
// one is prepended. When the history already starts with a system message,
// that message wins and the prompt is ignored (clients commonly send the
// same prompt both ways). A system message anywhere past position 0, or a
// second system message, rejects the whole history.
func Normalize(raw []models.ChatMessage, systemPrompt string) (*Session, error) {
	now := time.Now()
	out := make([]models.ChatMessage, 0, len(raw)+1)

	hasSystem := false
	for i, msg := range raw {
		if !models.KnownRole(msg.Role) {
			return nil, &ValidationError{Reason: fmt.Sprintf("message %d has unknown role %q", i, msg.Role)}
		}
		if msg.Content == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("message %d has empty content", i)}
		}
		if msg.Role == models.RoleSystem {
			if hasSystem {
				return nil, &ValidationError{Reason: fmt.Sprintf("message %d is a second system message", i)}
			}
			if i != 0 {
				return nil, &ValidationError{Reason: fmt.Sprintf("system message at position %d, must be first", i)}
			}
			hasSystem = true
		}
		if msg.Timestamp.IsZero() {
			msg.Timestamp = now
		}
		out = append(out, msg)
	}

	if systemPrompt != "" && !hasSystem {
		out = append([]models.ChatMessage{{
			Role:      models.RoleSystem,
			Content:   systemPrompt,
			Timestamp: now,
		}}, out...)
	}

	return &Session{messages: out}, nil
}

// Append adds one message to the end of the session. The system-first
// invariant still holds: a system message can only ever enter through
// Normalize.
func (s *Session) Append(msg models.ChatMessage) error {
	if msg.Role == models.RoleSystem {
		return &ValidationError{Reason: "system messages cannot be appended"}
	}
	if !models.KnownRole(msg.Role) {
		return &ValidationError{Reason: fmt.Sprintf("unknown role %q", msg.Role)}
	}
	s.messages = append(s.messages, msg)
	return nil
}

// Messages returns a copy of the ordered history.
func (s *Session) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the session.
func (s *Session) Len() int {
	return len(s.messages)
}
