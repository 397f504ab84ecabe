package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAISource asks an OpenAI chat model for a keyword summary
type OpenAISource struct {
	client   *openai.Client
	model    string
	language string
}

// NewOpenAISource creates a new OpenAI summary source
func NewOpenAISource(config *Config) (*OpenAISource, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAISource{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		language: config.Language,
	}, nil
}

// Summarize requests a short presentation summary for keyword
func (s *OpenAISource) Summarize(ctx context.Context, keyword string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write concise, factual summaries for presentation slides. Answer with plain sentences only, no lists, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: summaryPrompt(keyword, s.language),
			},
		},
		MaxTokens:   300,
		Temperature: 0.3,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &SourceError{Source: "openai", Message: "no summary returned"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the source name
func (s *OpenAISource) Name() string {
	return "openai"
}

// summaryPrompt builds the user prompt shared by the LLM-backed sources
func summaryPrompt(keyword, language string) string {
	if language == "" {
		language = "ko"
	}
	return fmt.Sprintf("Summarize the topic '%s' in three or four short sentences for a presentation slide. Write in the language with ISO code '%s'. Every sentence must end with a period.", keyword, language)
}
