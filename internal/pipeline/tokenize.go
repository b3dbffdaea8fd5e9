package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFolder strips combining marks so accented spellings match the
// plain-ASCII lexicon entries.
var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lowercases, folds diacritics, and replaces every
// non-alphanumeric rune with a space.
func normalizeText(text string) string {
	folded, _, err := transform.String(diacriticFolder, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// tokenize splits text into normalized word tokens.
func tokenize(text string) []string {
	return strings.Fields(normalizeText(text))
}

// tokenSet returns the unique normalized tokens of text.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// firstSentence returns the text up to the first sentence terminator,
// trimmed. Falls back to the whole trimmed text when no terminator exists.
func firstSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	if idx := strings.IndexAny(trimmed, ".!?"); idx >= 0 {
		return strings.TrimSpace(trimmed[:idx])
	}
	return trimmed
}
