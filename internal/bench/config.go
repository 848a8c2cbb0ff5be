package bench

import "github.com/deyna256/codeforces-contest-scraper/models"

// benchModel builds a 30s/100-token model entry, the shape every
// discovery-suite candidate shares.
func benchModel(name, displayName string) models.ModelConfig {
	return models.ModelConfig{
		Name:        name,
		DisplayName: displayName,
		TimeoutSec:  30,
		MaxTokens:   100,
	}
}

// DefaultModels is the model roster benchmarked when no config file is
// given. All names are OpenRouter model ids.
func DefaultModels() []models.ModelConfig {
	return []models.ModelConfig{
		benchModel("anthropic/claude-3.5-haiku", "Claude 3.5 Haiku"),
		benchModel("deepseek/deepseek-v3.2", "DeepSeek v3.2"),
		benchModel("openai/gpt-oss-120b", "OpenAI GPT OSS"),
		benchModel("x-ai/grok-4.1-fast", "xAI: Grok 4.1 Fast"),
		benchModel("google/gemini-2.0-flash-001", "Google Gemini 2.0 Flash"),
		benchModel("meta-llama/llama-3.1-8b-instruct", "Meta: Llama 3.1 8B Instruct"),
		benchModel("google/gemini-2.5-flash-lite", "Google: Gemini 2.5 Flash Lite"),
		benchModel("google/gemini-3-flash-preview", "Gemini 3 Flash-Preview"),
		benchModel("google/gemini-2.5-flash", "Gemini 2.5 Flash"),
		benchModel("openai/gpt-4o-mini", "OpenAI GPT 4o-mini"),
		benchModel("openai/gpt-oss-20b:free", "OpenAI GPT OSS 20b"),
		benchModel("meta-llama/llama-3.3-70b-instruct:free", "Meta LLAMA-3.3 70B"),
	}
}
