package llm

import (
	"context"
	"testing"
)

func TestNewProviderWithoutCredentials(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	if provider := NewProvider(context.Background()); provider != nil {
		t.Fatalf("expected nil provider without credentials, got %s", provider.Name())
	}
}

func TestNewProviderSelectsOpenAI(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	provider := NewProvider(context.Background())
	if provider == nil {
		t.Fatalf("expected OpenAI provider")
	}
	if provider.Name() != "openai" {
		t.Fatalf("unexpected provider: %s", provider.Name())
	}
}
