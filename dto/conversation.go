package dto

import "time"

type SaveConversationRequestDTO struct {
	Messages []ChatMessageDTO `json:"messages"`
}

type SaveConversationResponseDTO struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type ConversationSummaryDTO struct {
	Filename     string    `json:"filename"`
	Timestamp    time.Time `json:"timestamp"`
	MessageCount int       `json:"message_count"`
}

type ListConversationsResponseDTO struct {
	Conversations []ConversationSummaryDTO `json:"conversations"`
}

type ConversationDTO struct {
	Filename  string           `json:"filename"`
	Timestamp time.Time        `json:"timestamp"`
	Messages  []ChatMessageDTO `json:"messages"`
}
