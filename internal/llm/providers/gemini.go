package providers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/trendlens/trendlens/internal/common"
)

type GeminiProvider struct {
	client     *genai.Client
	chatModel  string
	embedModel string
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	chatModel := os.Getenv("GEMINI_CHAT_MODEL")
	if chatModel == "" {
		chatModel = "gemini-2.5-flash-lite"
	}
	embedModel := os.Getenv("GEMINI_EMBED_MODEL")
	if embedModel == "" {
		embedModel = "gemini-embedding-001"
	}
	logger := common.Logger()
	logger.Info("llm: Gemini provider configured", "chat_model", chatModel, "embed_model", embedModel)
	return &GeminiProvider{client: client, chatModel: chatModel, embedModel: embedModel}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	logger := common.Logger()
	logger.Debug("llm: sending generate request", "model", g.chatModel, "messages", len(messages))
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		var role genai.Role = genai.RoleUser
		if r := strings.ToLower(msg.Role); r == "assistant" || r == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.chatModel, contents, nil)
	if err != nil {
		logger.Error("llm: generate request failed", "error", err)
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned")
	}
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			out.WriteString(part.Text)
		}
	}
	logger.Debug("llm: generate request succeeded")
	return out.String(), nil
}

func (g *GeminiProvider) Embed(ctx context.Context, input []string) ([][]float32, error) {
	if g.client == nil {
		return nil, fmt.Errorf("nil gemini client")
	}
	if len(input) == 0 {
		return nil, nil
	}
	logger := common.Logger()
	logger.Debug("llm: creating embeddings", "model", g.embedModel, "items", len(input))
	contents := make([]*genai.Content, 0, len(input))
	for _, text := range input {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}
	resp, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, nil)
	if err != nil {
		logger.Error("llm: embedding request failed", "error", err)
		return nil, err
	}
	if len(resp.Embeddings) != len(input) {
		return nil, fmt.Errorf("embedding count mismatch: want %d, got %d", len(input), len(resp.Embeddings))
	}
	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, embedding := range resp.Embeddings {
		vectors = append(vectors, embedding.Values)
	}
	logger.Debug("llm: embedding request succeeded", "returned", len(vectors))
	return vectors, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}
