// Package aigen is the AI-generation collaborator: it builds prompts from a
// project configuration, calls a hosted LLM, and parses the response into an
// outline node forest. The service layer wraps the client with a response
// cache, a rate limiter, and a deterministic fallback so callers always
// receive a usable tree regardless of service availability.
package aigen

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// Client generates raw text for a prompt. Implementations may fail, time
// out, or return unstructured prose; the Service recovers from all three.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// systemPrompt primes the model to answer with machine-readable structure.
const systemPrompt = "You are a curriculum designer. Respond only with JSON: " +
	"either an array of outline nodes or an object with a rootNodes array. " +
	"Each node has title, description, type, estimatedWordCount, " +
	"estimatedDuration, standardIds, taxonomyLevel, difficultyLevel, and children."

// OpenAIClient is a Client backed by the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIClient creates a client for the given API key and model.
// An empty model defaults to gpt-4o-mini.
func NewOpenAIClient(apiKey, model string, logger *slog.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("initializing OpenAI client", "model", model)
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model, logger: logger}, nil
}

// Generate requests a chat completion for the prompt.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("generating outline via OpenAI", "model", c.model)
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	c.logger.Debug("received completion", "finish_reason", resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}
