//nolint:testpackage // Testing internal pipeline requires same package access
package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

func newTestPipeline() *Pipeline {
	return New(policies.Defaults(), fixedClock{t: tuesdayMorning}, NoJitter(), logging.NewNop(), nil, Options{})
}

func TestPipeline_FullRun(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Process(context.Background(), domain.SubmittedContent{
		Text: "This is a great breakthrough for our team!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Sentiment.Label != sentimentPositive {
		t.Errorf("expected positive sentiment, got %s", result.Sentiment.Label)
	}
	if result.Sentiment.Confidence <= 0.6 {
		t.Errorf("expected confidence > 0.6, got %v", result.Sentiment.Confidence)
	}

	if len(result.Channels) != len(domain.AllChannels) {
		t.Fatalf("expected %d channels, got %d", len(domain.AllChannels), len(result.Channels))
	}
	for _, channel := range domain.AllChannels {
		ch, ok := result.Channels[channel]
		if !ok {
			t.Fatalf("missing channel %s", channel)
		}
		if ch.Variant.AdaptedText == "" {
			t.Errorf("empty adapted text for %s", channel)
		}
		if ch.Forecast.EngagementScore > maxScore {
			t.Errorf("engagement score %d exceeds max for %s", ch.Forecast.EngagementScore, channel)
		}
	}

	// Short source text gets the engagement prompt.
	shortForm := result.Channels[domain.ChannelShortForm].Variant
	if !strings.Contains(shortForm.AdaptedText, "What do you think?") {
		t.Errorf("expected engagement prompt on short text, got %q", shortForm.AdaptedText)
	}

	// "breakthrough" is a power word, so that advice must be absent.
	if containsAdvice(result.Suggestions.Keyword, powerWordAdvice) {
		t.Error("unexpected power word advice")
	}

	if result.Metadata.ContentType != domain.ContentTypeShortFormSource {
		t.Errorf("expected short_form_source, got %s", result.Metadata.ContentType)
	}
	if result.Metadata.ReadabilityScore < 0 || result.Metadata.ReadabilityScore > 100 {
		t.Errorf("readability %d out of range", result.Metadata.ReadabilityScore)
	}
	if result.Metadata.ProcessingTimeMs < 0 {
		t.Errorf("negative processing time %d", result.Metadata.ProcessingTimeMs)
	}
}

func TestPipeline_BlankInputRejected(t *testing.T) {
	p := newTestPipeline()

	for _, input := range []string{"", "   ", "\n\t "} {
		result, err := p.Process(context.Background(), domain.SubmittedContent{Text: input})
		if !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent for %q, got %v", input, err)
		}
		if result != nil {
			t.Errorf("expected no result for %q", input)
		}
	}
}

func TestPipeline_InvalidToneRejected(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Process(context.Background(), domain.SubmittedContent{
		Text: "some text",
		Tone: domain.Tone("sarcastic"),
	})
	if !errors.Is(err, domain.ErrInvalidTone) {
		t.Errorf("expected ErrInvalidTone, got %v", err)
	}
	if result != nil {
		t.Error("expected no result for invalid tone")
	}
}

func TestPipeline_LongSourceTruncatedForShortForm(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Process(context.Background(), domain.SubmittedContent{
		Text: strings.Repeat("a", 300),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	variant := result.Channels[domain.ChannelShortForm].Variant
	if variant.CharOrWordCnt > shortFormTruncateAt+len(ellipsisMarker) {
		t.Errorf("short form length %d over cap", variant.CharOrWordCnt)
	}
	if !strings.HasSuffix(variant.AdaptedText, ellipsisMarker) {
		t.Error("expected ellipsis on truncated text")
	}
	if result.Metadata.ContentType != domain.ContentTypeLongFormSource {
		t.Errorf("expected long_form_source, got %s", result.Metadata.ContentType)
	}
}

func TestPipeline_ToneAppliedBeforeChannelPass(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Process(context.Background(), domain.SubmittedContent{
		Text: "This is awesome!",
		Tone: domain.ToneProfessional,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	digest := result.Channels[domain.ChannelDigest].Variant.AdaptedText
	if !strings.Contains(digest, "This is excellent.") {
		t.Errorf("expected tone pass before channel wrap, got %q", digest)
	}
}

func TestPipeline_DigestSubjectAndRates(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Process(context.Background(), domain.SubmittedContent{
		Text: "Big news this week. The team shipped everything on the roadmap.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	digest := result.Channels[domain.ChannelDigest]
	if digest.Variant.Subject != "Big news this week" {
		t.Errorf("expected first sentence as subject, got %q", digest.Variant.Subject)
	}
	if digest.Forecast.OpenRate < openRateMin || digest.Forecast.OpenRate > openRateMax {
		t.Errorf("open rate %v out of bounds", digest.Forecast.OpenRate)
	}
	if digest.Forecast.ClickRate < clickRateMin || digest.Forecast.ClickRate > clickRateMax {
		t.Errorf("click rate %v out of bounds", digest.Forecast.ClickRate)
	}
}

func TestPipeline_HashtagPolicySelection(t *testing.T) {
	p := newTestPipeline()
	text := "Machine learning models are transforming business strategy."

	baseline, err := p.Process(context.Background(), domain.SubmittedContent{
		Text:          text,
		HashtagPolicy: domain.HashtagPolicyBaseline,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	optimized, err := p.Process(context.Background(), domain.SubmittedContent{
		Text:          text,
		HashtagPolicy: domain.HashtagPolicyOptimized,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	baseTags := baseline.Channels[domain.ChannelShortForm].Variant.Tags
	optTags := optimized.Channels[domain.ChannelShortForm].Variant.Tags
	if strings.Join(baseTags, ",") == strings.Join(optTags, ",") {
		t.Errorf("expected strategies to differ: %v vs %v", baseTags, optTags)
	}
}

func TestPipeline_ShortFormOptimizedText(t *testing.T) {
	p := newTestPipeline()

	result, err := p.Process(context.Background(), domain.SubmittedContent{
		Text: "Our new software platform launches soon.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	variant := result.Channels[domain.ChannelShortForm].Variant
	if variant.OptimizedText == "" {
		t.Fatal("expected optimized text for short form")
	}
	if !strings.Contains(variant.OptimizedText, "#") {
		t.Errorf("expected inline tags, got %q", variant.OptimizedText)
	}
	if len([]rune(variant.OptimizedText)) > defaultShortFormCap {
		t.Errorf("optimized text over hard cap: %d runes", len([]rune(variant.OptimizedText)))
	}
}
