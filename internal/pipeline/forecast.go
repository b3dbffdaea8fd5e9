package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/forPelevin/gomoji"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

// Engagement scoring constants
const (
	baseScore          = 50
	maxScore           = 100
	positiveBonus      = 15
	negativeBonus      = 5
	hashtagBonus       = 10
	emojiBonus         = 8
	questionBonus      = 12
	ctaBonus           = 15
	shortOptimalBonus  = 10
	shortOverCapMalus  = 20
	shortOptimalMin    = 71
	shortOptimalMax    = 100
	shortFormHardCap   = 280
	profWordBandBonus  = 15
	profBusinessBonus  = 10
	profWordBandMin    = 50
	profWordBandMax    = 200
	digestSubjectBonus = 10
	digestSubjectMalus = 5
	digestSubjectCap   = 50
)

// Derived-metric multipliers and jitter bounds
const (
	shortLikesFactor    = 3
	shortLikesJitter    = 20
	shortSharesJitter   = 10
	shortCommentsJitter = 5
	profLikesFactor     = 2
	profLikesJitter     = 15
	profSharesJitter    = 8
	profCommentsJitter  = 5
	openRateFactor      = 0.45
	openRateMin         = 15.0
	openRateMax         = 45.0
	clickRateFactor     = 0.12
	clickRateMin        = 2.0
	clickRateMax        = 15.0
)

// Forecaster predicts engagement for an adapted variant from sentiment,
// text features, and channel norms. Time and randomness are injected so
// forecasts are reproducible in tests.
type Forecaster struct {
	tables     *policies.Tables
	ctaMatcher *PhraseMatcher
	bizMatcher *PhraseMatcher
	clock      Clock
	jitter     Jitter
	logger     logging.Logger
}

// NewForecaster builds a forecaster over the policy tables.
func NewForecaster(tables *policies.Tables, clock Clock, jitter Jitter, logger logging.Logger) *Forecaster {
	return &Forecaster{
		tables:     tables,
		ctaMatcher: NewPhraseMatcher(tables.CTAPhrases),
		bizMatcher: NewPhraseMatcher(tables.BusinessTerms),
		clock:      clock,
		jitter:     jitter,
		logger:     logger,
	}
}

// Forecast scores the adapted text for its channel.
func (f *Forecaster) Forecast(adaptedText string, channel domain.Channel, sentiment domain.SentimentResult) domain.EngagementForecast {
	score := baseScore + f.featureBonuses(adaptedText, sentiment)

	forecast := domain.EngagementForecast{OptimalTime: f.optimalTime(channel)}

	switch channel {
	case domain.ChannelShortForm:
		score += shortFormAdjustment(adaptedText)
		score = clampScore(score)
		forecast.Likes = score*shortLikesFactor + f.jitter.Intn(shortLikesJitter)
		forecast.Shares = score + f.jitter.Intn(shortSharesJitter)
		forecast.Comments = score/2 + f.jitter.Intn(shortCommentsJitter)
	case domain.ChannelProfessional:
		score += f.professionalAdjustment(adaptedText)
		score = clampScore(score)
		forecast.Likes = score*profLikesFactor + f.jitter.Intn(profLikesJitter)
		forecast.Shares = score/2 + f.jitter.Intn(profSharesJitter)
		forecast.Comments = score/3 + f.jitter.Intn(profCommentsJitter)
	case domain.ChannelDigest:
		score += digestAdjustment(adaptedText)
		score = clampScore(score)
		forecast.OpenRate = clampFloat(float64(score)*openRateFactor, openRateMin, openRateMax)
		forecast.ClickRate = clampFloat(float64(score)*clickRateFactor, clickRateMin, clickRateMax)
	}

	forecast.EngagementScore = score

	f.logger.Debug("engagement forecast",
		logging.String("channel", string(channel)),
		logging.Int("score", score),
		logging.String("optimal_time", forecast.OptimalTime))

	return forecast
}

func (f *Forecaster) featureBonuses(text string, sentiment domain.SentimentResult) int {
	bonus := 0
	switch sentiment.Label {
	case sentimentPositive:
		bonus += positiveBonus
	case sentimentNegative:
		bonus += negativeBonus
	}
	if strings.Contains(text, "#") {
		bonus += hashtagBonus
	}
	if gomoji.ContainsEmoji(text) {
		bonus += emojiBonus
	}
	if strings.Contains(text, "?") {
		bonus += questionBonus
	}
	if f.ctaMatcher.Contains(text) {
		bonus += ctaBonus
	}
	return bonus
}

func shortFormAdjustment(text string) int {
	length := len([]rune(text))
	switch {
	case length >= shortOptimalMin && length <= shortOptimalMax:
		return shortOptimalBonus
	case length > shortFormHardCap:
		return -shortOverCapMalus
	}
	return 0
}

func (f *Forecaster) professionalAdjustment(text string) int {
	adjustment := 0
	words := len(strings.Fields(text))
	if words >= profWordBandMin && words <= profWordBandMax {
		adjustment += profWordBandBonus
	}
	if f.bizMatcher.Contains(text) {
		adjustment += profBusinessBonus
	}
	return adjustment
}

func digestAdjustment(text string) int {
	if len([]rune(firstSentence(text))) <= digestSubjectCap {
		return digestSubjectBonus
	}
	return -digestSubjectMalus
}

// optimalTime returns the next posting slot for the channel as a
// human-readable label. Digest sends are only recommended mid-week;
// otherwise the fixed fallback slot is returned.
func (f *Forecaster) optimalTime(channel domain.Channel) string {
	now := f.clock.Now()

	if channel == domain.ChannelDigest && !f.goodDigestDay(now.Weekday()) {
		return f.tables.DigestFallbackSlot
	}

	hours := f.tables.PostingHours[channel]
	if len(hours) == 0 {
		return f.tables.DigestFallbackSlot
	}
	for _, h := range hours {
		if h > now.Hour() {
			return formatHour(h) + " today"
		}
	}
	return formatHour(hours[0]) + " tomorrow"
}

func (f *Forecaster) goodDigestDay(day time.Weekday) bool {
	for _, good := range f.tables.DigestGoodWeekdays {
		if day == good {
			return true
		}
	}
	return false
}

func formatHour(hour int) string {
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
