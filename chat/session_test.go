package chat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-llm-chat/chat"
	"local-llm-chat/models"
)

func TestNormalizeKeepsValidHistoryIntact(t *testing.T) {
	raw := []models.ChatMessage{
		{Role: models.RoleSystem, Content: "Be concise"},
		{Role: models.RoleUser, Content: "2+2?"},
		{Role: models.RoleAssistant, Content: "4"},
		{Role: models.RoleUser, Content: "and 3+3?"},
	}

	session, err := chat.Normalize(raw, "")
	require.NoError(t, err)

	got := session.Messages()
	require.Len(t, got, len(raw))
	for i := range raw {
		assert.Equal(t, raw[i].Role, got[i].Role)
		assert.Equal(t, raw[i].Content, got[i].Content)
	}
}

func TestNormalizeRejectsMalformedHistories(t *testing.T) {
	testCases := []struct {
		name string
		raw  []models.ChatMessage
	}{
		{
			name: "system message not first",
			raw: []models.ChatMessage{
				{Role: models.RoleUser, Content: "hi"},
				{Role: models.RoleSystem, Content: "Be concise"},
			},
		},
		{
			name: "two system messages",
			raw: []models.ChatMessage{
				{Role: models.RoleSystem, Content: "one"},
				{Role: models.RoleSystem, Content: "two"},
			},
		},
		{
			name: "unknown role",
			raw: []models.ChatMessage{
				{Role: "tool", Content: "result"},
			},
		},
		{
			name: "empty content",
			raw: []models.ChatMessage{
				{Role: models.RoleUser, Content: ""},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := chat.Normalize(testCase.raw, "")
			var validationErr *chat.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestNormalizePrependsSystemPrompt(t *testing.T) {
	raw := []models.ChatMessage{
		{Role: models.RoleUser, Content: "2+2?"},
	}

	session, err := chat.Normalize(raw, "Be concise")
	require.NoError(t, err)

	got := session.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, models.RoleSystem, got[0].Role)
	assert.Equal(t, "Be concise", got[0].Content)
	assert.Equal(t, models.RoleUser, got[1].Role)
}

func TestNormalizeExistingSystemMessageWins(t *testing.T) {
	raw := []models.ChatMessage{
		{Role: models.RoleSystem, Content: "from history"},
		{Role: models.RoleUser, Content: "hi"},
	}

	session, err := chat.Normalize(raw, "from config")
	require.NoError(t, err)

	got := session.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, "from history", got[0].Content)
}

func TestNormalizeEmptyHistory(t *testing.T) {
	session, err := chat.Normalize(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Len())
}

func TestAppendIsAppendOnly(t *testing.T) {
	session, err := chat.Normalize([]models.ChatMessage{
		{Role: models.RoleUser, Content: "hi"},
	}, "")
	require.NoError(t, err)

	before := session.Messages()
	require.NoError(t, session.Append(models.ChatMessage{Role: models.RoleAssistant, Content: "hello"}))

	after := session.Messages()
	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0], "existing messages are never mutated")

	// The snapshot returned earlier is a copy; growing the session must not
	// have touched it.
	require.Len(t, before, 1)
}

func TestAppendRejectsSystemMessages(t *testing.T) {
	session, err := chat.Normalize(nil, "")
	require.NoError(t, err)

	err = session.Append(models.ChatMessage{Role: models.RoleSystem, Content: "late prompt"})
	var validationErr *chat.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
