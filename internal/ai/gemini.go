package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.0-flash"

	// Detailed task descriptions need more room than the usual default.
	minOutputTokens = 8000
)

var ErrMissingAPIKey = errors.New("gemini api key is not configured")

type GeminiConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	MaxOutputTokens int
	Temperature     float32
}

// GeminiClient sends a single prompt to the Gemini generateContent endpoint.
type GeminiClient struct {
	client          *genai.Client
	apiKey          string
	model           string
	maxOutputTokens int32
	temperature     float32
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:          client,
		apiKey:          apiKey,
		model:           model,
		maxOutputTokens: int32(max(cfg.MaxOutputTokens, minOutputTokens)),
		temperature:     cfg.Temperature,
	}, nil
}

func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	if c == nil || c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	return resp, nil
}
