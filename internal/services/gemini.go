package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ChatCompleter is the single operation the pipeline needs from a chat-style
// LLM: send a system and a user message, get one text reply back. Retry and
// rate-limit policy, if ever wanted, belongs in a decorator around this
// interface, not in the pipeline.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	maxTokens   int32
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature float32, maxTokens int32) (ChatCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Complete implements ChatCompleter.
func (g *geminiService) Complete(ctx context.Context, system, user string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   g.maxTokens,
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
