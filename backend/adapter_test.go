package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-llm-chat/models"
)

// ollamaEndpoint rewrites a httptest server URL so Detect classifies it as
// Ollama: the server mounts its handlers under /ollama.
func ollamaEndpoint(srv *httptest.Server) string {
	return srv.URL + "/ollama"
}

func TestOllamaSendBuildsNativePayload(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ollama/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"4"},"done":true}`))
	}))
	defer srv.Close()

	adapter := New(Config{
		Endpoint:    ollamaEndpoint(srv),
		Model:       "llama3",
		Temperature: 0.7,
	})
	require.Equal(t, ProtocolOllama, adapter.Protocol())

	history := []models.ChatMessage{
		{Role: models.RoleSystem, Content: "Be concise"},
		{Role: models.RoleUser, Content: "2+2?"},
	}
	content, err := adapter.Send(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "4", content)

	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
	assert.InDelta(t, 0.7, got.Options.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, wireMessage{Role: "system", Content: "Be concise"}, got.Messages[0])
	assert.Equal(t, wireMessage{Role: "user", Content: "2+2?"}, got.Messages[1])
}

func TestOpenAISendBuildsChatCompletionsPayload(t *testing.T) {
	var got openAIChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"X"}}]}`))
	}))
	defer srv.Close()

	adapter := New(Config{Endpoint: srv.URL, Model: "qwen", Temperature: 1.2})
	require.Equal(t, ProtocolOpenAI, adapter.Protocol())

	content, err := adapter.Send(context.Background(), []models.ChatMessage{
		{Role: models.RoleUser, Content: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "X", content)

	assert.Equal(t, "qwen", got.Model)
	assert.InDelta(t, 1.2, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, wireMessage{Role: "user", Content: "hello"}, got.Messages[0])
}

func TestSendProtocolErrorOnUnknownShape(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "neither shape", body: `{"unexpected": true}`},
		{name: "empty choices", body: `{"choices": []}`},
		{name: "empty content", body: `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
		{name: "not json", body: `<html>nope</html>`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(testCase.body))
			}))
			defer srv.Close()

			adapter := New(Config{Endpoint: srv.URL, Model: "m"})
			_, err := adapter.Send(context.Background(), []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}})

			var backendErr *Error
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, KindProtocol, backendErr.Kind)
			assert.NotEmpty(t, backendErr.Detail)
		})
	}
}

func TestSendProtocolErrorOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	adapter := New(Config{Endpoint: ollamaEndpoint(srv), Model: "missing"})
	_, err := adapter.Send(context.Background(), []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}})

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindProtocol, backendErr.Kind)
	assert.Contains(t, backendErr.Detail, "404")
}

func TestSendUnavailableOnRefusedConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // nothing listens here anymore

	adapter := New(Config{Endpoint: endpoint, Model: "m"})
	_, err := adapter.Send(context.Background(), []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}})

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindUnavailable, backendErr.Kind)
}

func TestSendTimeoutIsDistinctFromUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer srv.Close()

	adapter := New(Config{Endpoint: srv.URL, Model: "m", Timeout: 50 * time.Millisecond})
	_, err := adapter.Send(context.Background(), []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}})

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, KindTimeout, backendErr.Kind)
}

func TestSendPassesThroughCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	adapter := New(Config{Endpoint: srv.URL, Model: "m"})
	_, err := adapter.Send(ctx, []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	var backendErr *Error
	assert.False(t, errors.As(err, &backendErr), "cancellation is not a backend failure")
}

func TestListModels(t *testing.T) {
	t.Run("ollama tags", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ollama/api/tags" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"models":[{"name":"llama3:latest"},{"name":"mistral:7b"}]}`))
		}))
		defer srv.Close()

		names, err := New(Config{Endpoint: ollamaEndpoint(srv)}).ListModels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"llama3:latest", "mistral:7b"}, names)
	})

	t.Run("openai models", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/models" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"data":[{"id":"qwen2.5-7b-instruct"}]}`))
		}))
		defer srv.Close()

		names, err := New(Config{Endpoint: srv.URL}).ListModels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"qwen2.5-7b-instruct"}, names)
	})
}

func TestStatus(t *testing.T) {
	t.Run("running with models", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"models":[{"name":"llama3:latest"}]}`))
		}))
		defer srv.Close()

		info := Status(context.Background(), Config{Endpoint: ollamaEndpoint(srv)})
		assert.True(t, info.Running)
		assert.Equal(t, ProtocolOllama, info.Protocol)
		assert.Equal(t, "llama3:latest", info.ActiveModel)
	})

	t.Run("down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		endpoint := srv.URL
		srv.Close()

		info := Status(context.Background(), Config{Endpoint: endpoint})
		assert.False(t, info.Running)
		assert.Empty(t, info.Models)
		assert.Empty(t, info.ActiveModel)
	})
}
