package llm

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenRouterBaseURL is the OpenAI-compatible OpenRouter endpoint.
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient talks to any OpenAI-compatible endpoint (OpenRouter,
// OpenAI itself, or a local gateway) and reports token usage.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterClient(apiKey, model, baseURL string) *OpenRouterClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultOpenRouterBaseURL
	}
	config.BaseURL = baseURL
	return &OpenRouterClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.CompleteWithUsage(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (c *OpenRouterClient) CompleteWithUsage(ctx context.Context, req Request) (Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: effectiveTemperature(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return Response{}, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("no response choices")
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
		Usage: &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// effectiveTemperature maps a requested temperature of 0 to the smallest
// nonzero float32. go-openai tags Temperature with omitempty, so a literal 0
// never reaches the wire and the provider would apply its own default
// instead of sampling deterministically.
func effectiveTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
