package services

import (
	"context"
	"errors"
	"net/http"

	"local-llm-chat/models"
	"local-llm-chat/repositories"
)

// ConversationService wraps the transcript repository and maps its failures
// onto HTTP statuses.
type ConversationService struct {
	repo *repositories.ConversationRepository
}

type ConversationError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *ConversationError) Error() string {
	if e == nil {
		return "storage_failed"
	}
	return e.ErrorCode
}

func NewConversationService(repo *repositories.ConversationRepository) *ConversationService {
	return &ConversationService{repo: repo}
}

// Dir returns the storage root, used by the save response to tell the client
// where its transcript went.
func (s *ConversationService) Dir() string {
	return s.repo.Dir()
}

func (s *ConversationService) Save(ctx context.Context, messages []models.ChatMessage) (*models.SavedConversation, *ConversationError) {
	if len(messages) == 0 {
		return nil, &ConversationError{StatusCode: http.StatusBadRequest, ErrorCode: "no_messages"}
	}
	saved, err := s.repo.Save(ctx, messages)
	if err != nil {
		return nil, &ConversationError{StatusCode: http.StatusInternalServerError, ErrorCode: "storage_failed", Cause: err}
	}
	return saved, nil
}

func (s *ConversationService) List(ctx context.Context) ([]repositories.ConversationSummary, *ConversationError) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, &ConversationError{StatusCode: http.StatusInternalServerError, ErrorCode: "storage_failed", Cause: err}
	}
	return summaries, nil
}

func (s *ConversationService) Get(ctx context.Context, id string) (*models.SavedConversation, *ConversationError) {
	saved, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &ConversationError{StatusCode: http.StatusNotFound, ErrorCode: "not_found", Cause: err}
		}
		return nil, &ConversationError{StatusCode: http.StatusInternalServerError, ErrorCode: "storage_failed", Cause: err}
	}
	return saved, nil
}
