package ai

import (
	"context"
	"fmt"
	"strings"

	"legaldash-backend/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const unconfiguredMessage = "AI API key not configured."

// GeminiGenerator implements Generator on top of the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	apiKey string
}

// NewGemini creates a Gemini-backed generator. An empty API key is allowed:
// the client is constructed but every call degrades to the unconfigured
// message, so the service still starts without a credential.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		apiKey: apiKey,
	}, nil
}

// Close releases the underlying client connection.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Configured reports whether an API key is set.
func (g *GeminiGenerator) Configured() bool {
	return g.apiKey != ""
}

// Generate runs a single-turn completion.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) Result {
	if !g.Configured() {
		return Degraded(unconfiguredMessage)
	}

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return DegradedErr(err)
	}

	text, err := responseText(resp)
	if err != nil {
		return DegradedErr(err)
	}
	return Ok(text)
}

// Chat sends one message over the supplied history. The returned history has
// the model's reply appended on success; the sent message itself is not
// recorded, matching the caller-owned history contract.
func (g *GeminiGenerator) Chat(ctx context.Context, history []models.NegotiationTurn, message string) (Result, []models.NegotiationTurn) {
	if !g.Configured() {
		return Degraded(unconfiguredMessage), history
	}

	session := g.client.GenerativeModel(g.model).StartChat()
	session.History = toGenaiHistory(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return DegradedErr(err), history
	}

	text, err := responseText(resp)
	if err != nil {
		return DegradedErr(err), history
	}

	return Ok(text), append(history, models.NewTurn(models.RoleModel, text))
}

func toGenaiHistory(history []models.NegotiationTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		parts := make([]genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.Text(p))
		}
		contents = append(contents, &genai.Content{Role: turn.Role, Parts: parts})
	}
	return contents
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}

	if builder.Len() == 0 {
		return "", fmt.Errorf("model returned empty content")
	}
	return builder.String(), nil
}
