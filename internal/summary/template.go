package summary

import (
	"context"
	"strings"
)

// templates are offline summary sentences; {kw} is replaced by the keyword
var templates = []string{
	"{kw}의 핵심 개념과 최신 동향을 간단히 정리합니다.",
	"{kw} 관련 주요 활용 사례와 기대 효과를 소개합니다.",
	"{kw}를 도입할 때 고려해야 할 포인트를 요약합니다.",
	"{kw}의 배경과 향후 전망을 한눈에 살펴봅니다.",
}

// TemplateSource builds summaries from fixed sentence templates. The template
// is picked from the code point sum of the keyword, so a keyword always gets
// the same summary.
type TemplateSource struct{}

// NewTemplateSource creates an offline template source
func NewTemplateSource() *TemplateSource {
	return &TemplateSource{}
}

// Summarize returns the templated summary for keyword
func (s *TemplateSource) Summarize(ctx context.Context, keyword string) (string, error) {
	sum := 0
	for _, r := range keyword {
		sum += int(r)
	}
	return strings.ReplaceAll(templates[sum%len(templates)], "{kw}", keyword), nil
}

// Name returns the source name
func (s *TemplateSource) Name() string {
	return "template"
}
