package services

import (
	"context"

	"local-llm-chat/backend"
	"local-llm-chat/logger"
)

// BackendService answers the model-listing and status probes the chat UI
// polls while the user picks an endpoint.
type BackendService struct {
	defaults backend.Config
}

func NewBackendService(defaults backend.Config) *BackendService {
	return &BackendService{defaults: defaults}
}

func (s *BackendService) resolve(endpoint string) backend.Config {
	cfg := s.defaults
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg
}

// Models lists the models the endpoint serves. A probe failure is reported
// to the UI as an empty list, not an error; the status endpoint is the one
// that distinguishes "down" from "no models".
func (s *BackendService) Models(ctx context.Context, endpoint string) []string {
	cfg := s.resolve(endpoint)
	names, err := backend.New(cfg).ListModels(ctx)
	if err != nil {
		logger.ErrorWithFields("model listing failed", logger.Fields{
			"endpoint": cfg.Endpoint,
			"error":    err.Error(),
		})
		return []string{}
	}
	return names
}

// Status probes the endpoint and reports whether it is serving.
func (s *BackendService) Status(ctx context.Context, endpoint string) backend.StatusInfo {
	return backend.Status(ctx, s.resolve(endpoint))
}
