package keywords

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

// ErrInputNotFound is returned when the keyword input file does not exist
var ErrInputNotFound = errors.New("input not found")

// tagPattern matches the shortest non-empty run between '[' and ']' on one line
var tagPattern = regexp.MustCompile(`\[(.+?)\]`)

// ReadFile reads keywords from a file.
// Every substring enclosed in square brackets becomes a keyword, in order of
// appearance. With dedupe set, only the first occurrence of a keyword is kept.
func ReadFile(filename string, dedupe bool) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	found := Extract(string(content))
	if dedupe {
		found = Dedupe(found)
	}
	return found, nil
}

// Extract returns the contents of every bracketed tag in text
func Extract(text string) []string {
	var found []string
	for _, match := range tagPattern.FindAllStringSubmatch(text, -1) {
		found = append(found, match[1])
	}
	return found
}

// Dedupe drops repeated keywords, keeping the first occurrence and the
// original order
func Dedupe(words []string) []string {
	if words == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}
	return result
}
