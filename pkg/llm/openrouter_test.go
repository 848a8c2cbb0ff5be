package llm

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveTemperature(t *testing.T) {
	assert.Equal(t, float32(math.SmallestNonzeroFloat32), effectiveTemperature(0))
	assert.Equal(t, float32(0.7), effectiveTemperature(0.7))
	assert.Equal(t, float32(1), effectiveTemperature(1))
}

func TestEffectiveTemperature_ZeroReachesTheWire(t *testing.T) {
	req := openai.ChatCompletionRequest{
		Model:       "google/gemini-2.0-flash-001",
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "x"}},
		Temperature: effectiveTemperature(0),
		MaxTokens:   100,
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	_, ok := decoded["temperature"]
	assert.True(t, ok, "temperature must be serialized when the caller asks for 0")
}
