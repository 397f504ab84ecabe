package summary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiSource asks a Gemini model for a keyword summary
type GeminiSource struct {
	client   *genai.Client
	model    string
	language string
}

// NewGeminiSource creates a new Gemini summary source
func NewGeminiSource(ctx context.Context, config *Config) (*GeminiSource, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiSource{
		client:   client,
		model:    model,
		language: config.Language,
	}, nil
}

// Summarize requests a short presentation summary for keyword
func (s *GeminiSource) Summarize(ctx context.Context, keyword string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(summaryPrompt(keyword, s.language)),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.3),
			MaxOutputTokens: 300,
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &SourceError{Source: "gemini", Message: "no summary returned"}
	}
	return text, nil
}

// Name returns the source name
func (s *GeminiSource) Name() string {
	return "gemini"
}
