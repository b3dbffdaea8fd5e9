//nolint:testpackage // Testing internal pipeline requires same package access
package pipeline

import (
	"testing"

	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

func newTestSentiment() *SentimentClassifier {
	return NewSentimentClassifier(policies.Defaults(), logging.NewNop())
}

func TestSentimentClassifier_NoLexiconHits(t *testing.T) {
	c := newTestSentiment()

	result := c.Classify("the quick brown fox jumps over the lazy dog")

	if result.Label != sentimentNeutral {
		t.Errorf("expected neutral, got %s", result.Label)
	}
	if result.Confidence != neutralConfidence {
		t.Errorf("expected confidence %v, got %v", neutralConfidence, result.Confidence)
	}
}

func TestSentimentClassifier_EmptyText(t *testing.T) {
	c := newTestSentiment()

	result := c.Classify("")

	if result.Label != sentimentNeutral || result.Confidence != neutralConfidence {
		t.Errorf("expected neutral/0.5, got %s/%v", result.Label, result.Confidence)
	}
}

func TestSentimentClassifier_Positive(t *testing.T) {
	c := newTestSentiment()

	result := c.Classify("This is a great breakthrough for our team!")

	if result.Label != sentimentPositive {
		t.Errorf("expected positive, got %s", result.Label)
	}
	if result.Confidence <= 0.6 {
		t.Errorf("expected confidence > 0.6, got %v", result.Confidence)
	}
}

func TestSentimentClassifier_Negative(t *testing.T) {
	c := newTestSentiment()

	result := c.Classify("This was a terrible failure and a huge problem.")

	if result.Label != sentimentNegative {
		t.Errorf("expected negative, got %s", result.Label)
	}
	if result.Confidence <= confidenceFloor {
		t.Errorf("expected confidence > %v, got %v", confidenceFloor, result.Confidence)
	}
}

func TestSentimentClassifier_TiedCounts(t *testing.T) {
	c := newTestSentiment()

	result := c.Classify("good bad")

	if result.Label != sentimentNeutral {
		t.Errorf("expected neutral on tie, got %s", result.Label)
	}
	if result.Confidence != tiedConfidence {
		t.Errorf("expected confidence %v, got %v", tiedConfidence, result.Confidence)
	}
}

func TestSentimentClassifier_ConfidenceBounds(t *testing.T) {
	c := newTestSentiment()

	inputs := []string{
		"",
		"great great great great great great great great",
		"bad bad bad bad bad bad",
		"good bad good bad",
		"win loss success failure amazing awful",
		"nothing emotional here at all",
	}

	for _, input := range inputs {
		result := c.Classify(input)
		if result.Confidence < 0.5 || result.Confidence > 0.95 {
			t.Errorf("confidence %v out of [0.5, 0.95] for %q", result.Confidence, input)
		}
	}
}

func TestSentimentClassifier_PunctuationAndCase(t *testing.T) {
	c := newTestSentiment()

	result := c.Classify("GREAT!!! Amazing... WIN?")

	if result.Label != sentimentPositive {
		t.Errorf("expected positive regardless of case and punctuation, got %s", result.Label)
	}
}
