package dto

import (
	"time"

	"local-llm-chat/models"
)

// ChatMessageDTO mirrors the message objects the web UI exchanges with the
// server. Timestamps are optional on the way in.
type ChatMessageDTO struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type ChatRequestDTO struct {
	Messages     []ChatMessageDTO `json:"messages"`
	Temperature  *float64         `json:"temperature"`
	Endpoint     string           `json:"endpoint"`
	Model        string           `json:"model"`
	SystemPrompt string           `json:"systemPrompt"`
}

type ChatResponseDTO struct {
	Response string `json:"response"`
}

// ToModel converts a wire message into the immutable domain message.
func (m ChatMessageDTO) ToModel() models.ChatMessage {
	msg := models.ChatMessage{Role: m.Role, Content: m.Content}
	if m.Timestamp != nil {
		msg.Timestamp = *m.Timestamp
	}
	return msg
}

// ToModelMessages converts a wire history in order.
func ToModelMessages(in []ChatMessageDTO) []models.ChatMessage {
	out := make([]models.ChatMessage, len(in))
	for i, m := range in {
		out[i] = m.ToModel()
	}
	return out
}

// FromModelMessages converts a domain history back to the wire shape.
func FromModelMessages(in []models.ChatMessage) []ChatMessageDTO {
	out := make([]ChatMessageDTO, len(in))
	for i, m := range in {
		out[i] = ChatMessageDTO{Role: m.Role, Content: m.Content}
		if !m.Timestamp.IsZero() {
			ts := m.Timestamp
			out[i].Timestamp = &ts
		}
	}
	return out
}
