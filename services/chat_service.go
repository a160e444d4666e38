package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"local-llm-chat/backend"
	"local-llm-chat/chat"
	"local-llm-chat/models"
)

// ChatService runs one chat turn: normalize the client-supplied history,
// pick the adapter for the configured endpoint, and translate failures into
// the HTTP status the router should answer with.
type ChatService struct {
	defaults backend.Config

	// newAdapter is swapped out in tests.
	newAdapter func(backend.Config) backend.Adapter
}

// ChatInput is one chat turn as received from the client. Zero-valued fields
// fall back to the configured defaults.
type ChatInput struct {
	Messages     []models.ChatMessage
	Endpoint     string
	Model        string
	Temperature  *float64
	SystemPrompt string
}

// ChatError pairs a failure with the HTTP status it maps to.
type ChatError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *ChatError) Error() string {
	if e == nil {
		return "chat_failed"
	}
	return e.ErrorCode
}

func NewChatService(defaults backend.Config) *ChatService {
	return &ChatService{defaults: defaults, newAdapter: backend.New}
}

// Chat performs one request/response exchange and returns the assistant
// message. The service holds no state between calls.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (models.ChatMessage, *ChatError) {
	cfg, chatErr := s.resolveConfig(in)
	if chatErr != nil {
		return models.ChatMessage{}, chatErr
	}

	session, err := chat.Normalize(in.Messages, cfg.SystemPrompt)
	if err != nil {
		return models.ChatMessage{}, &ChatError{StatusCode: http.StatusBadRequest, ErrorCode: "validation_failed", Cause: err}
	}

	content, err := s.newAdapter(cfg).Send(ctx, session.Messages())
	if err != nil {
		status, code := normalizeBackendError(err)
		return models.ChatMessage{}, &ChatError{StatusCode: status, ErrorCode: code, Cause: err}
	}

	return models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}, nil
}

func (s *ChatService) resolveConfig(in ChatInput) (backend.Config, *ChatError) {
	cfg := backend.Config{
		Endpoint:     in.Endpoint,
		Model:        in.Model,
		Temperature:  s.defaults.Temperature,
		SystemPrompt: in.SystemPrompt,
		Timeout:      s.defaults.Timeout,
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = s.defaults.Endpoint
	}
	if cfg.Model == "" {
		cfg.Model = s.defaults.Model
	}
	if cfg.Model == "" {
		return backend.Config{}, &ChatError{StatusCode: http.StatusBadRequest, ErrorCode: "model_required"}
	}
	if in.Temperature != nil {
		cfg.Temperature = *in.Temperature
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return backend.Config{}, &ChatError{StatusCode: http.StatusBadRequest, ErrorCode: "invalid_temperature"}
	}
	return cfg, nil
}

// normalizeBackendError maps the adapter error taxonomy onto HTTP statuses:
// "down" (503) stays distinguishable from "slow" (504) and from "speaking a
// different dialect" (502).
func normalizeBackendError(err error) (int, string) {
	var backendErr *backend.Error
	if errors.As(err, &backendErr) {
		switch backendErr.Kind {
		case backend.KindUnavailable:
			return http.StatusServiceUnavailable, "backend_unavailable"
		case backend.KindTimeout:
			return http.StatusGatewayTimeout, "backend_timeout"
		case backend.KindProtocol:
			return http.StatusBadGateway, "backend_protocol_error"
		}
	}
	return http.StatusInternalServerError, "chat_failed"
}
