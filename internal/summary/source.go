package summary

import (
	"context"
	"fmt"
	"time"
)

// Source defines the interface for keyword summary providers
type Source interface {
	// Summarize returns a short plain-text summary for the keyword
	Summarize(ctx context.Context, keyword string) (string, error)

	// Name returns the source name
	Name() string
}

// Config holds configuration for summary sources
type Config struct {
	Source   string        // "template", "openai", "gemini", "wikipedia" or "web"
	Language string        // Language code used by wikipedia and in prompts
	Timeout  time.Duration // HTTP timeout for network-backed sources

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // Optional API base URL override

	// Gemini settings
	GeminiKey   string
	GeminiModel string

	// Wikipedia settings
	WikipediaURL string // Base URL, e.g. "https://ko.wikipedia.org"

	// Web page settings
	WebURLTemplate string // Page URL with a {keyword} placeholder
	WebMaxChars    int    // Maximum summary length in runes
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Source:         "template",
		Language:       "ko",
		Timeout:        15 * time.Second,
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
		WikipediaURL:   "https://ko.wikipedia.org",
		WebURLTemplate: "https://ko.wikipedia.org/wiki/{keyword}",
		WebMaxChars:    600,
	}
}

// NewSource creates the summary source named in the configuration
func NewSource(ctx context.Context, config *Config) (Source, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Source {
	case "template", "":
		return NewTemplateSource(), nil
	case "openai":
		return NewOpenAISource(config)
	case "gemini":
		return NewGeminiSource(ctx, config)
	case "wikipedia":
		return NewWikipediaSource(config), nil
	case "web":
		return NewWebSource(config)
	default:
		return nil, fmt.Errorf("unknown summary source: %s", config.Source)
	}
}

// SourceError represents an error reported by a summary source
type SourceError struct {
	Source  string
	Code    string
	Message string
}

func (e *SourceError) Error() string {
	return e.Source + ": " + e.Message
}
