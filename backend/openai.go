package backend

import (
	"context"
	"encoding/json"

	"local-llm-chat/httpclient"
	"local-llm-chat/models"
)

// openAIAdapter speaks the OpenAI-compatible chat-completions API used by
// LM Studio and most other local serving tools.
type openAIAdapter struct {
	cfg  Config
	base *httpclient.BaseClient
}

type openAIChatRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message *wireMessage `json:"message"`
	} `json:"choices"`
}

type openAIModelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (a *openAIAdapter) Protocol() Protocol {
	return ProtocolOpenAI
}

func (a *openAIAdapter) Send(ctx context.Context, messages []models.ChatMessage) (string, error) {
	payload := openAIChatRequest{
		Model:       a.cfg.Model,
		Messages:    toWireMessages(messages),
		Temperature: a.cfg.Temperature,
	}

	body, err := postJSON(ctx, a.base, "/v1/chat/completions", payload)
	if err != nil {
		return "", err
	}

	var out openAIChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", protocolError("chat-completions response is not valid JSON", body)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message == nil || out.Choices[0].Message.Content == "" {
		return "", protocolError("chat-completions response has no choices[0].message.content", body)
	}
	return out.Choices[0].Message.Content, nil
}

func (a *openAIAdapter) ListModels(ctx context.Context) ([]string, error) {
	body, err := getJSON(ctx, a.base, "/v1/models")
	if err != nil {
		return nil, err
	}

	var out openAIModelsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, protocolError("models response is not valid JSON", body)
	}
	ids := make([]string, 0, len(out.Data))
	for _, m := range out.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
