package pipeline

import (
	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

// Sentiment scoring constants
const (
	neutralConfidence = 0.5
	tiedConfidence    = 0.7
	confidenceFloor   = 0.6
	confidenceSpread  = 0.4
	maxConfidence     = 0.95
	sentimentPositive = "positive"
	sentimentNegative = "negative"
	sentimentNeutral  = "neutral"
)

// SentimentClassifier scores text polarity by matching tokens against fixed
// positive and negative lexicons. Exact match, no stemming.
type SentimentClassifier struct {
	positive map[string]struct{}
	negative map[string]struct{}
	logger   logging.Logger
}

// NewSentimentClassifier builds lookup sets from the policy lexicons.
func NewSentimentClassifier(tables *policies.Tables, logger logging.Logger) *SentimentClassifier {
	return &SentimentClassifier{
		positive: wordSet(tables.PositiveWords),
		negative: wordSet(tables.NegativeWords),
		logger:   logger,
	}
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if normalized := normalizeText(w); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// Classify returns the sentiment label and confidence for text. Empty text
// and text without lexicon hits both yield neutral at the floor confidence.
func (c *SentimentClassifier) Classify(text string) domain.SentimentResult {
	var posHits, negHits int
	for _, tok := range tokenize(text) {
		if _, ok := c.positive[tok]; ok {
			posHits++
		}
		if _, ok := c.negative[tok]; ok {
			negHits++
		}
	}

	result := resolveSentiment(posHits, negHits)

	c.logger.Debug("sentiment classified",
		logging.String("label", result.Label),
		logging.Float64("confidence", result.Confidence),
		logging.Int("positive_hits", posHits),
		logging.Int("negative_hits", negHits))

	return result
}

func resolveSentiment(posHits, negHits int) domain.SentimentResult {
	total := posHits + negHits
	switch {
	case total == 0:
		return domain.SentimentResult{Label: sentimentNeutral, Confidence: neutralConfidence}
	case posHits > negHits:
		return domain.SentimentResult{
			Label:      sentimentPositive,
			Confidence: scaledConfidence(posHits, total),
		}
	case negHits > posHits:
		return domain.SentimentResult{
			Label:      sentimentNegative,
			Confidence: scaledConfidence(negHits, total),
		}
	default:
		return domain.SentimentResult{Label: sentimentNeutral, Confidence: tiedConfidence}
	}
}

func scaledConfidence(dominant, total int) float64 {
	confidence := confidenceFloor + (float64(dominant)/float64(total))*confidenceSpread
	if confidence > maxConfidence {
		return maxConfidence
	}
	return confidence
}
