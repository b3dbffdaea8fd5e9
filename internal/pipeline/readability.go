package pipeline

import (
	"math"
	"strings"

	"github.com/jonesrussell/repurposer/internal/logging"
)

// Flesch Reading Ease constants
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
	readabilityDefault   = 50
	readabilityMin       = 0
	readabilityMax       = 100
)

// ReadabilityScorer computes a Flesch-style reading ease score in [0,100]
// from sentence, word, and estimated syllable counts.
type ReadabilityScorer struct {
	logger logging.Logger
}

// NewReadabilityScorer creates a readability scorer.
func NewReadabilityScorer(logger logging.Logger) *ReadabilityScorer {
	return &ReadabilityScorer{logger: logger}
}

// Score returns the readability of text. Text without countable sentences
// or words scores the neutral default instead of dividing by zero.
func (s *ReadabilityScorer) Score(text string) int {
	sentences := countSentences(text)
	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return readabilityDefault
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := fleschBase -
		fleschSentenceWeight*(float64(len(words))/float64(sentences)) -
		fleschSyllableWeight*(float64(syllables)/float64(len(words)))

	rounded := int(math.Round(score))
	if rounded < readabilityMin {
		rounded = readabilityMin
	}
	if rounded > readabilityMax {
		rounded = readabilityMax
	}

	s.logger.Debug("readability scored",
		logging.Int("score", rounded),
		logging.Int("sentences", sentences),
		logging.Int("words", len(words)),
		logging.Int("syllables", syllables))

	return rounded
}

// countSentences counts non-empty fragments delimited by . ! or ?.
func countSentences(text string) int {
	count := 0
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, frag := range fragments {
		if strings.TrimSpace(frag) != "" {
			count++
		}
	}
	return count
}

// countSyllables estimates syllables as maximal runs of vowel-like
// characters, with a minimum of one per word.
func countSyllables(word string) int {
	runs := 0
	inRun := false
	for _, r := range strings.ToLower(word) {
		if isVowel(r) {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if runs == 0 {
		return 1
	}
	return runs
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
