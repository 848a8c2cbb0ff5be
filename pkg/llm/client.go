// Package llm provides the LLM completion capability used for editorial link
// selection and tutorial segmentation. Clients are interchangeable; the
// pipeline only needs "send prompt, get text plus token usage".
package llm

import "context"

// Usage reports token consumption for one completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Request is a single completion request. Temperature 0 gives deterministic
// extraction; MaxTokens bounds the response.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Response is a completion plus optional token usage. Usage is nil when the
// provider does not report it.
type Response struct {
	Content string
	Usage   *Usage
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	CompleteWithUsage(ctx context.Context, req Request) (Response, error)
}
