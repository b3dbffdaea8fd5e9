package pipeline

import (
	"strings"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

// Suggestion thresholds and conditional advice
const (
	lowConfidenceThreshold = 0.7

	powerWordAdvice   = "Add power words (proven, essential, breakthrough) to strengthen impact"
	questionAdvice    = "Add a question to invite responses"
	emotionAdvice     = "Add emotional language to make the content more engaging"
	clarifyToneAdvice = "Clarify the overall tone; mixed signals weaken the message"
)

// SuggestionGenerator produces channel-independent editorial advice from
// sentiment and simple text features.
type SuggestionGenerator struct {
	tables       *policies.Tables
	powerMatcher *PhraseMatcher
	logger       logging.Logger
}

// NewSuggestionGenerator creates a suggestion generator over the policy tables.
func NewSuggestionGenerator(tables *policies.Tables, logger logging.Logger) *SuggestionGenerator {
	return &SuggestionGenerator{
		tables:       tables,
		powerMatcher: NewPhraseMatcher(tables.PowerWords),
		logger:       logger,
	}
}

// Suggest builds the four advice lists. Hashtag and timing advice is fixed
// boilerplate; keyword and tone advice is conditional on the text.
func (g *SuggestionGenerator) Suggest(text string, sentiment domain.SentimentResult) domain.SuggestionSet {
	set := domain.SuggestionSet{
		Hashtag: copyList(g.tables.HashtagTips),
		Keyword: []string{},
		Tone:    []string{},
		Timing:  copyList(g.tables.TimingTips),
	}

	if !g.powerMatcher.Contains(text) {
		set.Keyword = append(set.Keyword, powerWordAdvice)
	}
	if !strings.Contains(text, "?") {
		set.Keyword = append(set.Keyword, questionAdvice)
	}
	if sentiment.Label == sentimentNeutral {
		set.Tone = append(set.Tone, emotionAdvice)
	}
	if sentiment.Confidence < lowConfidenceThreshold {
		set.Tone = append(set.Tone, clarifyToneAdvice)
	}

	g.logger.Debug("suggestions generated",
		logging.Int("keyword_count", len(set.Keyword)),
		logging.Int("tone_count", len(set.Tone)))

	return set
}

func copyList(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
