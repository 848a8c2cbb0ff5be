package llm

import (
	"fmt"
	"strings"
)

// NewClient builds a Client for the given provider. Supported providers are
// "openrouter" (default), "openai" and "anthropic"/"claude". baseURL is
// optional and overrides the provider default.
func NewClient(provider, apiKey, model, baseURL string) (Client, error) {
	switch strings.ToLower(provider) {
	case "", "openrouter":
		return NewOpenRouterClient(apiKey, model, baseURL), nil
	case "openai":
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		return NewOpenRouterClient(apiKey, model, baseURL), nil
	case "anthropic", "claude":
		return NewAnthropicClient(apiKey, model, baseURL), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
