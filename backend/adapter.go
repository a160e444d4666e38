package backend

import (
	"context"
	"net/url"
	"strings"
	"time"

	"local-llm-chat/httpclient"
	"local-llm-chat/models"
)

// Protocol identifies the wire dialect a local model server speaks.
type Protocol string

const (
	// ProtocolOllama is the native Ollama chat API (/api/chat).
	ProtocolOllama Protocol = "ollama"
	// ProtocolOpenAI is the OpenAI-compatible chat-completions API
	// (/v1/chat/completions), served by LM Studio and similar tools.
	ProtocolOpenAI Protocol = "openai"
)

const (
	// DefaultEndpoint is where a stock Ollama install listens.
	DefaultEndpoint = "http://localhost:11434"

	// DefaultTimeout bounds a single chat call. Local models can be slow on
	// first load, so this is deliberately generous.
	DefaultTimeout = 120 * time.Second

	// modelListTimeout bounds the cheap model-listing and status probes.
	modelListTimeout = 10 * time.Second

	ollamaPort = "11434"
)

// Detect classifies an endpoint as Ollama-native or OpenAI-compatible. It is
// a pure function of the configured endpoint, never of response content, so
// the chosen dialect cannot change mid-session. An endpoint is Ollama when it
// mentions the service by name or targets the well-known Ollama port;
// everything else is assumed OpenAI-compatible.
func Detect(endpoint string) Protocol {
	if strings.Contains(strings.ToLower(endpoint), "ollama") {
		return ProtocolOllama
	}
	if u, err := url.Parse(endpoint); err == nil && u.Port() != "" {
		if u.Port() == ollamaPort {
			return ProtocolOllama
		}
		return ProtocolOpenAI
	}
	// No parseable port (e.g. a bare host). Fall back to the substring rule
	// the web UI has always used.
	if strings.Contains(endpoint, ollamaPort) {
		return ProtocolOllama
	}
	return ProtocolOpenAI
}

// Config is the per-request backend configuration supplied by the client.
// It is never persisted server-side.
type Config struct {
	Endpoint     string
	Model        string
	Temperature  float64
	SystemPrompt string
	// Timeout bounds a single Send call; zero means DefaultTimeout.
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Adapter translates a normalized message history into one backend dialect,
// issues the call, and extracts the assistant reply. Implementations hold no
// mutable state and are safe for concurrent use; each call makes exactly one
// attempt and honors context cancellation.
type Adapter interface {
	Protocol() Protocol
	Send(ctx context.Context, messages []models.ChatMessage) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// New builds the adapter variant for the configured endpoint.
func New(cfg Config) Adapter {
	cfg = cfg.withDefaults()
	client := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	base := httpclient.NewBaseClientWithClient(client, cfg.Endpoint)
	if Detect(cfg.Endpoint) == ProtocolOllama {
		return &ollamaAdapter{cfg: cfg, base: base}
	}
	return &openAIAdapter{cfg: cfg, base: base}
}

// wireMessage is the {role, content} pair both dialects share.
type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func toWireMessages(messages []models.ChatMessage) []wireMessage {
	out := make([]wireMessage, len(messages))
	for i, msg := range messages {
		out[i] = wireMessage{Role: msg.Role, Content: msg.Content}
	}
	return out
}
