package content

import (
	"regexp"
	"strings"
)

var lineBreakRun = regexp.MustCompile(`(\r?\n){2,}`)

// Normalize collapses runs of two or more line breaks into a single one
// and trims surrounding whitespace.
func Normalize(text string) string {
	return strings.TrimSpace(lineBreakRun.ReplaceAllString(text, "\n"))
}

// SplitSentences splits text on '.' and returns the trimmed, non-empty
// fragments with the period re-appended. Abbreviations and decimal
// numbers are split too.
func SplitSentences(text string) []string {
	var sentences []string
	for _, fragment := range strings.Split(Normalize(text), ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		sentences = append(sentences, fragment+".")
	}
	return sentences
}

// FirstSentence returns the first sentence of text, or "" if there is none
func FirstSentence(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	return sentences[0]
}
