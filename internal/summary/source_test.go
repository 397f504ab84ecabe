package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTemplateSource(t *testing.T) {
	src := NewTemplateSource()

	tests := []struct {
		keyword string
		want    string
	}{
		{"D", "D의 핵심 개념과 최신 동향을 간단히 정리합니다."},
		{"A", "A 관련 주요 활용 사례와 기대 효과를 소개합니다."},
		{"B", "B를 도입할 때 고려해야 할 포인트를 요약합니다."},
		{"C", "C의 배경과 향후 전망을 한눈에 살펴봅니다."},
		{"인공지능", "인공지능를 도입할 때 고려해야 할 포인트를 요약합니다."},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := src.Summarize(context.Background(), tt.keyword)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Summarize(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}

	if src.Name() != "template" {
		t.Errorf("Expected name 'template', got %q", src.Name())
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{"nil config", nil, "template", false},
		{"template", &Config{Source: "template"}, "template", false},
		{"empty means template", &Config{}, "template", false},
		{"wikipedia", &Config{Source: "wikipedia"}, "wikipedia", false},
		{"web", &Config{Source: "web", WebURLTemplate: "https://example.com/{keyword}"}, "web", false},
		{"web without placeholder", &Config{Source: "web", WebURLTemplate: "https://example.com/"}, "", true},
		{"openai without key", &Config{Source: "openai"}, "", true},
		{"openai", &Config{Source: "openai", OpenAIKey: "test-key"}, "openai", false},
		{"gemini without key", &Config{Source: "gemini"}, "", true},
		{"unknown", &Config{Source: "oracle"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(context.Background(), tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSource() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && src.Name() != tt.wantName {
				t.Errorf("Expected source %q, got %q", tt.wantName, src.Name())
			}
		})
	}
}

func TestOpenAISource_Summarize(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  클라우드는 원격 자원입니다. 확장이 쉽습니다.  "}, "finish_reason": "stop"}]
		}`)
	}))
	defer server.Close()

	src, err := NewOpenAISource(&Config{OpenAIKey: "test-key", OpenAIBaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAISource() error = %v", err)
	}

	got, err := src.Summarize(context.Background(), "클라우드")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "클라우드는 원격 자원입니다. 확장이 쉽습니다." {
		t.Errorf("Unexpected summary %q", got)
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("Expected request to /v1/chat/completions, got %s", gotPath)
	}
}

func TestOpenAISource_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-1", "object": "chat.completion", "choices": []}`)
	}))
	defer server.Close()

	src, err := NewOpenAISource(&Config{OpenAIKey: "test-key", OpenAIBaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAISource() error = %v", err)
	}

	_, err = src.Summarize(context.Background(), "클라우드")
	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("Expected SourceError, got %v", err)
	}
}

func TestWikipediaSource_Summarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/api/rest_v1/page/summary/Go_language":
			fmt.Fprint(w, `{"type": "standard", "title": "Go language", "extract": " Go is a language. It was designed at Google. "}`)
		case "/api/rest_v1/page/summary/Mercury":
			fmt.Fprint(w, `{"type": "disambiguation", "title": "Mercury", "extract": "Mercury may refer to"}`)
		case "/api/rest_v1/page/summary/Boom":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "upstream failure")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	src := NewWikipediaSource(&Config{WikipediaURL: server.URL + "/"})

	got, err := src.Summarize(context.Background(), "Go language")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "Go is a language. It was designed at Google." {
		t.Errorf("Unexpected summary %q", got)
	}

	for _, keyword := range []string{"Mercury", "Missing", "Boom"} {
		t.Run(keyword, func(t *testing.T) {
			_, err := src.Summarize(context.Background(), keyword)
			var srcErr *SourceError
			if !errors.As(err, &srcErr) {
				t.Fatalf("Expected SourceError, got %v", err)
			}
			if srcErr.Source != "wikipedia" {
				t.Errorf("Expected source wikipedia, got %s", srcErr.Source)
			}
		})
	}
}

func TestWebSource_Summarize(t *testing.T) {
	paragraph := strings.Repeat("Edge computing moves processing closer to the data source. ", 12)
	page := `<html><head><title>Edge computing</title></head><body>
<nav>Home | About | Contact</nav>
<article>
<p>` + paragraph + `</p>
<p>` + paragraph + `</p>
</article>
</body></html>`

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	src, err := NewWebSource(&Config{WebURLTemplate: server.URL + "/wiki/{keyword}", WebMaxChars: 200})
	if err != nil {
		t.Fatalf("NewWebSource() error = %v", err)
	}

	got, err := src.Summarize(context.Background(), "Edge")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if gotPath != "/wiki/Edge" {
		t.Errorf("Expected request to /wiki/Edge, got %s", gotPath)
	}
	if !strings.HasPrefix(got, "Edge computing moves processing closer to the data source.") {
		t.Errorf("Unexpected summary start %q", got)
	}
	if utf8.RuneCountInString(got) > 200 {
		t.Errorf("Summary exceeds 200 runes: %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("Expected summary to end on a full sentence, got %q", got)
	}
}

func TestWebSource_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	src, err := NewWebSource(&Config{WebURLTemplate: server.URL + "/{keyword}"})
	if err != nil {
		t.Fatalf("NewWebSource() error = %v", err)
	}

	_, err = src.Summarize(context.Background(), "x")
	var srcErr *SourceError
	if !errors.As(err, &srcErr) || srcErr.Code != "403" {
		t.Errorf("Expected SourceError with code 403, got %v", err)
	}
}

func TestLeadingText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     string
	}{
		{"short text untouched", "One. Two.", 50, "One. Two."},
		{"whitespace collapsed", "One.\n\n  Two.", 50, "One. Two."},
		{"cut at last sentence", "One two. Three four five.", 12, "One two."},
		{"no period inside limit", "abcdefghij", 4, "abcd"},
		{"runes not bytes", "가나다. 라마바사.", 6, "가나다."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leadingText(tt.text, tt.maxChars); got != tt.want {
				t.Errorf("leadingText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceError(t *testing.T) {
	err := &SourceError{Source: "test", Code: "500", Message: "broken"}
	if err.Error() != "test: broken" {
		t.Errorf("Expected 'test: broken', got %q", err.Error())
	}
}
