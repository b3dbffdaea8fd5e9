package pipeline

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// PhraseMatcher answers substring-presence queries against a fixed phrase
// set using an Aho-Corasick automaton, so multi-word phrase sets are matched
// in a single pass over the text.
type PhraseMatcher struct {
	matcher *ahocorasick.Matcher
	empty   bool
}

// NewPhraseMatcher builds a matcher over the given phrases. Matching is
// case-insensitive.
func NewPhraseMatcher(phrases []string) *PhraseMatcher {
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	if len(lowered) == 0 {
		return &PhraseMatcher{empty: true}
	}
	return &PhraseMatcher{matcher: ahocorasick.NewStringMatcher(lowered)}
}

// Contains reports whether any phrase occurs in text.
func (m *PhraseMatcher) Contains(text string) bool {
	if m.empty {
		return false
	}
	return len(m.matcher.Match([]byte(strings.ToLower(text)))) > 0
}
