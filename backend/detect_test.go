package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		name     string
		endpoint string
		want     Protocol
	}{
		{
			name:     "default ollama endpoint",
			endpoint: "http://localhost:11434",
			want:     ProtocolOllama,
		},
		{
			name:     "ollama by name on another port",
			endpoint: "http://ollama.local:9000",
			want:     ProtocolOllama,
		},
		{
			name:     "ollama name in path",
			endpoint: "http://127.0.0.1:8080/ollama",
			want:     ProtocolOllama,
		},
		{
			name:     "uppercase name still counts",
			endpoint: "http://OLLAMA-box:9000",
			want:     ProtocolOllama,
		},
		{
			name:     "bare host with ollama port",
			endpoint: "localhost:11434",
			want:     ProtocolOllama,
		},
		{
			name:     "lm studio default",
			endpoint: "http://localhost:1234",
			want:     ProtocolOpenAI,
		},
		{
			name:     "generic openai-compatible host",
			endpoint: "http://192.168.1.20:8000",
			want:     ProtocolOpenAI,
		},
		{
			name:     "empty endpoint",
			endpoint: "",
			want:     ProtocolOpenAI,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Detect(testCase.endpoint))
		})
	}
}

func TestDetectIsStable(t *testing.T) {
	// Detection depends only on configuration, so repeated calls with the
	// same endpoint must agree.
	for i := 0; i < 10; i++ {
		assert.Equal(t, ProtocolOllama, Detect("http://localhost:11434"))
	}
}
