package layout

import (
	"unicode/utf8"

	"codeberg.org/snonux/slidedeck/internal/content"
)

// DefaultCharLimit is the largest combined sentence length of one slide
const DefaultCharLimit = 200

// LeadSeparator follows the keyword in the bold lead of a keyword's first slide
const LeadSeparator = " — "

// SlideGroup is the run of sentences rendered on one slide
type SlideGroup []string

// Len returns the combined length of the group in runes
func (g SlideGroup) Len() int {
	n := 0
	for _, s := range g {
		n += utf8.RuneCountInString(s)
	}
	return n
}

// Paginate distributes sentences over groups by greedy forward fill. A
// sentence is appended to the current group unless the group is non-empty
// and the sentence would push it past limit, in which case it starts a new
// group. A sentence longer than limit ends up alone in its group and is
// never cut. No sentences yield a single empty group.
func Paginate(sentences []string, limit int) []SlideGroup {
	if limit <= 0 {
		limit = DefaultCharLimit
	}

	var groups []SlideGroup
	current := SlideGroup{}
	length := 0

	for _, sentence := range sentences {
		n := utf8.RuneCountInString(sentence)
		if len(current) > 0 && length+n > limit {
			groups = append(groups, current)
			current = SlideGroup{}
			length = 0
		}
		current = append(current, sentence)
		length += n
	}

	return append(groups, current)
}

// Allocate splits the record's summary into sentences and paginates them
func Allocate(record content.ContentRecord, limit int) []SlideGroup {
	return Paginate(content.SplitSentences(record.Summary), limit)
}

// Lead returns the bold prefix placed before the first sentence of a
// keyword's first group
func Lead(keyword string) string {
	return keyword + LeadSeparator
}
