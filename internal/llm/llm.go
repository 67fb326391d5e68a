package llm

import (
	"context"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/trendlens/trendlens/internal/common"
	"github.com/trendlens/trendlens/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProvider selects a provider from the environment: Gemini when
// GOOGLE_API_KEY (or GEMINI_API_KEY) is set, OpenAI when OPENAI_API_KEY is.
// With no credentials it returns nil; callers treat a nil provider as the
// generation service being unavailable.
func NewProvider(ctx context.Context) Provider {
	logger := common.Logger()
	geminiKey := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	if geminiKey == "" {
		geminiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if geminiKey != "" {
		provider, err := providers.NewGeminiProvider(ctx, geminiKey)
		if err == nil {
			logger.Info("llm: Gemini provider selected")
			return provider
		}
		logger.Error("llm: Gemini initialization failed", "error", err)
	}
	if apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil {
				logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
			} else {
				opts = append(opts, option.WithRequestTimeout(timeout))
			}
		}
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", endpoint)
			opts = append(opts, option.WithBaseURL(endpoint))
		}
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(openai.NewClient(opts...))
	}
	logger.Warn("llm: no provider credentials set; language model features disabled")
	return nil
}
