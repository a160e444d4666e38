package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"local-llm-chat/httpclient"
	"local-llm-chat/models"
)

// ollamaAdapter speaks the native Ollama chat API.
type ollamaAdapter struct {
	cfg  Config
	base *httpclient.BaseClient
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type ollamaChatResponse struct {
	Model     string       `json:"model"`
	CreatedAt string       `json:"created_at"`
	Message   *wireMessage `json:"message"`
	Done      bool         `json:"done"`
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (a *ollamaAdapter) Protocol() Protocol {
	return ProtocolOllama
}

func (a *ollamaAdapter) Send(ctx context.Context, messages []models.ChatMessage) (string, error) {
	payload := ollamaChatRequest{
		Model:    a.cfg.Model,
		Messages: toWireMessages(messages),
		Stream:   false,
		Options:  ollamaOptions{Temperature: a.cfg.Temperature},
	}

	body, err := postJSON(ctx, a.base, "/api/chat", payload)
	if err != nil {
		return "", err
	}

	var out ollamaChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", protocolError("ollama response is not valid JSON", body)
	}
	if out.Message == nil || out.Message.Content == "" {
		return "", protocolError("ollama response has no message.content", body)
	}
	return out.Message.Content, nil
}

func (a *ollamaAdapter) ListModels(ctx context.Context) ([]string, error) {
	body, err := getJSON(ctx, a.base, "/api/tags")
	if err != nil {
		return nil, err
	}

	var out ollamaTagsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, protocolError("ollama tags response is not valid JSON", body)
	}
	names := make([]string, 0, len(out.Models))
	for _, m := range out.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// postJSON issues one POST with a JSON payload and returns the raw response
// body, classifying transport failures and non-200 statuses on the way.
func postJSON(ctx context.Context, base *httpclient.BaseClient, relPath string, payload any) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", relPath, err)
	}

	req, err := base.NewRequest(ctx, http.MethodPost, relPath, nil, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", relPath, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return doRead(base, req)
}

func getJSON(ctx context.Context, base *httpclient.BaseClient, relPath string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, modelListTimeout)
	defer cancel()

	req, err := base.NewRequest(ctx, http.MethodGet, relPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", relPath, err)
	}
	return doRead(base, req)
}

const maxResponseBytes = 5 * 1024 * 1024

func doRead(base *httpclient.BaseClient, req *http.Request) ([]byte, error) {
	resp, err := base.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, protocolError(fmt.Sprintf("backend returned status %d", resp.StatusCode), body)
	}
	return body, nil
}
