//nolint:testpackage // Testing internal pipeline requires same package access
package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// 2026-08-25 is a Tuesday.
var tuesdayMorning = time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)

func newTestForecaster(now time.Time) *Forecaster {
	return NewForecaster(policies.Defaults(), fixedClock{t: now}, NoJitter(), logging.NewNop())
}

func TestForecaster_BaseScoreNeutral(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)
	neutral := domain.SentimentResult{Label: sentimentNeutral, Confidence: 0.5}

	got := f.Forecast("plain words with no features at all", domain.ChannelDigest, neutral)

	// Base plus the short-subject bonus only.
	want := baseScore + digestSubjectBonus
	if got.EngagementScore != want {
		t.Errorf("expected score %d, got %d", want, got.EngagementScore)
	}
}

func TestForecaster_FeatureBonuses(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)
	positive := domain.SentimentResult{Label: sentimentPositive, Confidence: 0.9}

	plain := f.Forecast("nothing special here today friends", domain.ChannelShortForm, domain.SentimentResult{Label: sentimentNeutral})
	rich := f.Forecast("Check out our #launch today?", domain.ChannelShortForm, positive)

	if rich.EngagementScore <= plain.EngagementScore {
		t.Errorf("expected feature-rich text to outscore plain text: %d vs %d",
			rich.EngagementScore, plain.EngagementScore)
	}
}

func TestForecaster_ScoreNeverExceedsMax(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)
	positive := domain.SentimentResult{Label: sentimentPositive, Confidence: 0.95}

	// Every bonus at once: positive, hashtag, question, CTA, optimal length.
	text := "Sign up now! Don't miss our #launch today, what do you think?" + strings.Repeat("x", 20)
	got := f.Forecast(text, domain.ChannelShortForm, positive)

	if got.EngagementScore > maxScore {
		t.Errorf("score %d exceeds max %d", got.EngagementScore, maxScore)
	}
}

func TestForecaster_ShortFormOverCap(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)
	neutral := domain.SentimentResult{Label: sentimentNeutral}

	long := strings.Repeat("a", shortFormHardCap+50)
	short := strings.Repeat("a", shortOptimalMin)

	longScore := f.Forecast(long, domain.ChannelShortForm, neutral).EngagementScore
	shortScore := f.Forecast(short, domain.ChannelShortForm, neutral).EngagementScore

	if longScore != baseScore-shortOverCapMalus {
		t.Errorf("expected over-cap malus, got %d", longScore)
	}
	if shortScore != baseScore+shortOptimalBonus {
		t.Errorf("expected optimal-band bonus, got %d", shortScore)
	}
}

func TestForecaster_ProfessionalAdjustments(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)
	neutral := domain.SentimentResult{Label: sentimentNeutral}

	// 60 words including a business term: both bonuses.
	words := make([]string, 0, 60)
	words = append(words, "business")
	for len(words) < 60 {
		words = append(words, "word")
	}
	got := f.Forecast(strings.Join(words, " "), domain.ChannelProfessional, neutral)

	want := baseScore + profWordBandBonus + profBusinessBonus
	if got.EngagementScore != want {
		t.Errorf("expected score %d, got %d", want, got.EngagementScore)
	}
	if got.Likes != want*profLikesFactor {
		t.Errorf("expected likes %d with zero jitter, got %d", want*profLikesFactor, got.Likes)
	}
}

func TestForecaster_DigestRates(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)
	neutral := domain.SentimentResult{Label: sentimentNeutral}

	got := f.Forecast("Short subject. Followed by a longer body of text.", domain.ChannelDigest, neutral)

	if got.OpenRate < openRateMin || got.OpenRate > openRateMax {
		t.Errorf("open rate %v out of [%v,%v]", got.OpenRate, openRateMin, openRateMax)
	}
	if got.ClickRate < clickRateMin || got.ClickRate > clickRateMax {
		t.Errorf("click rate %v out of [%v,%v]", got.ClickRate, clickRateMin, clickRateMax)
	}
	if got.Likes != 0 || got.Shares != 0 {
		t.Errorf("digest should not carry likes/shares, got %d/%d", got.Likes, got.Shares)
	}
}

func TestForecaster_OptimalTimeToday(t *testing.T) {
	f := newTestForecaster(tuesdayMorning)

	got := f.Forecast("text", domain.ChannelShortForm, domain.SentimentResult{Label: sentimentNeutral})

	// 07:30 precedes the 9:00 slot.
	if got.OptimalTime != "9:00 AM today" {
		t.Errorf("expected next slot today, got %q", got.OptimalTime)
	}
}

func TestForecaster_OptimalTimeTomorrow(t *testing.T) {
	lateEvening := time.Date(2026, 8, 25, 22, 0, 0, 0, time.UTC)
	f := newTestForecaster(lateEvening)

	got := f.Forecast("text", domain.ChannelShortForm, domain.SentimentResult{Label: sentimentNeutral})

	if got.OptimalTime != "9:00 AM tomorrow" {
		t.Errorf("expected first slot tomorrow, got %q", got.OptimalTime)
	}
}

func TestForecaster_DigestWeekendFallback(t *testing.T) {
	saturday := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	f := newTestForecaster(saturday)

	got := f.Forecast("text", domain.ChannelDigest, domain.SentimentResult{Label: sentimentNeutral})

	if got.OptimalTime != policies.Defaults().DigestFallbackSlot {
		t.Errorf("expected fallback slot on weekend, got %q", got.OptimalTime)
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12:00 AM"},
		{6, "6:00 AM"},
		{12, "12:00 PM"},
		{17, "5:00 PM"},
		{20, "8:00 PM"},
	}

	for _, tt := range tests {
		if got := formatHour(tt.hour); got != tt.want {
			t.Errorf("formatHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
