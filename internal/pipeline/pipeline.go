// Package pipeline implements the content repurposing pipeline: sentiment
// classification, readability scoring, per-channel adaptation, hashtag
// derivation, engagement forecasting, and suggestion generation, sequenced
// by a stateless orchestrator.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
	"github.com/jonesrussell/repurposer/internal/telemetry"
)

// Options tunes orchestrator behavior.
type Options struct {
	// DefaultHashtagPolicy applies when a request names no policy.
	DefaultHashtagPolicy domain.HashtagPolicy
	// ShortFormCap is the short-form channel's hard length cap in runes,
	// also the threshold between short-form and long-form source text.
	ShortFormCap int
}

const defaultShortFormCap = 280

// Pipeline orchestrates the analyzers and transformers for one request.
// It holds no per-request state; a single instance serves concurrent
// requests.
type Pipeline struct {
	sentiment   *SentimentClassifier
	readability *ReadabilityScorer
	hashtags    *HashtagDeriver
	adapter     *ChannelAdapter
	forecaster  *Forecaster
	suggester   *SuggestionGenerator

	defaultPolicy domain.HashtagPolicy
	shortFormCap  int

	logger    logging.Logger
	telemetry *telemetry.Provider
}

// New wires the pipeline components over the given policy tables.
func New(
	tables *policies.Tables,
	clock Clock,
	jitter Jitter,
	logger logging.Logger,
	tp *telemetry.Provider,
	opts Options,
) *Pipeline {
	if opts.DefaultHashtagPolicy == "" {
		opts.DefaultHashtagPolicy = domain.HashtagPolicyBaseline
	}
	if opts.ShortFormCap <= 0 {
		opts.ShortFormCap = defaultShortFormCap
	}

	return &Pipeline{
		sentiment:     NewSentimentClassifier(tables, logger),
		readability:   NewReadabilityScorer(logger),
		hashtags:      NewHashtagDeriver(tables, logger),
		adapter:       NewChannelAdapter(tables, logger),
		forecaster:    NewForecaster(tables, clock, jitter, logger),
		suggester:     NewSuggestionGenerator(tables, logger),
		defaultPolicy: opts.DefaultHashtagPolicy,
		shortFormCap:  opts.ShortFormCap,
		logger:        logger,
		telemetry:     tp,
	}
}

// Process validates the submission, runs every stage, and assembles the
// result. It returns either a complete result or an error, never both and
// never a partial result. Unexpected faults inside a component are caught
// and surfaced as a pipeline failure.
func (p *Pipeline) Process(ctx context.Context, content domain.SubmittedContent) (result *domain.PipelineResult, err error) {
	if validateErr := content.Validate(); validateErr != nil {
		p.telemetry.IncInvalidInput()
		return nil, validateErr
	}

	defer func() {
		if r := recover(); r != nil {
			p.telemetry.IncPipelineFailure()
			p.logger.Error("pipeline panic recovered", logging.Any("panic", r))
			result = nil
			err = fmt.Errorf("%w: %v", domain.ErrPipelineFailure, r)
		}
	}()

	start := time.Now()
	policy := content.HashtagPolicy
	if policy == "" {
		policy = p.defaultPolicy
	}

	var sentiment domain.SentimentResult
	p.runStage(ctx, "sentiment", func(context.Context) {
		sentiment = p.sentiment.Classify(content.Text)
	})

	var readability int
	p.runStage(ctx, "readability", func(context.Context) {
		readability = p.readability.Score(content.Text)
	})

	channels := make(map[domain.Channel]domain.ChannelResult, len(domain.AllChannels))
	for _, channel := range domain.AllChannels {
		chResult, chErr := p.processChannel(ctx, content, channel, policy, sentiment)
		if chErr != nil {
			p.telemetry.IncPipelineFailure()
			p.logger.Error("channel processing failed",
				logging.String("channel", string(channel)),
				logging.Error(chErr))
			return nil, fmt.Errorf("%w: %v", domain.ErrPipelineFailure, chErr)
		}
		channels[channel] = chResult
	}

	var suggestions domain.SuggestionSet
	p.runStage(ctx, "suggestions", func(context.Context) {
		suggestions = p.suggester.Suggest(content.Text, sentiment)
	})

	elapsed := time.Since(start)
	p.telemetry.ObserveRequest("ok", elapsed.Seconds())

	p.logger.Info("content repurposed",
		logging.String("sentiment", sentiment.Label),
		logging.Int("readability", readability),
		logging.Int("channels", len(channels)),
		logging.Duration("elapsed", elapsed))

	return &domain.PipelineResult{
		SourceText:  content.Text,
		Audience:    content.Audience,
		Sentiment:   sentiment,
		Channels:    channels,
		Suggestions: suggestions,
		Metadata: domain.ResultMetadata{
			ProcessingTimeMs: elapsed.Milliseconds(),
			ContentType:      p.contentType(content.Text),
			ReadabilityScore: readability,
		},
	}, nil
}

func (p *Pipeline) processChannel(
	ctx context.Context,
	content domain.SubmittedContent,
	channel domain.Channel,
	policy domain.HashtagPolicy,
	sentiment domain.SentimentResult,
) (domain.ChannelResult, error) {
	var (
		adapted  string
		adaptErr error
	)
	p.runStage(ctx, "adapt", func(context.Context) {
		adapted, adaptErr = p.adapter.Adapt(content.Text, channel, content.Tone)
	})
	if adaptErr != nil {
		return domain.ChannelResult{}, adaptErr
	}

	var tags []string
	p.runStage(ctx, "hashtags", func(context.Context) {
		tags = p.hashtags.Derive(content.Text, channel, policy)
	})

	var forecast domain.EngagementForecast
	p.runStage(ctx, "forecast", func(context.Context) {
		forecast = p.forecaster.Forecast(adapted, channel, sentiment)
	})

	variant := domain.ChannelVariant{
		Channel:       channel,
		AdaptedText:   adapted,
		Tags:          tags,
		CharOrWordCnt: variantCount(channel, adapted),
	}
	switch channel {
	case domain.ChannelShortForm:
		variant.OptimizedText = p.shortFormOptimized(adapted, tags)
	case domain.ChannelDigest:
		variant.Subject = firstSentence(content.Text)
	}

	p.telemetry.ObserveVariant(string(channel), forecast.EngagementScore)

	return domain.ChannelResult{Variant: variant, Forecast: forecast}, nil
}

// shortFormOptimized appends the derived tags to the adapted text when the
// combined result still fits under the channel's hard cap.
func (p *Pipeline) shortFormOptimized(adapted string, tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, "#"+tag)
	}
	combined := adapted + " " + strings.Join(parts, " ")
	if len([]rune(combined)) > p.shortFormCap {
		return ""
	}
	return combined
}

// variantCount is characters for the short-form channel, words elsewhere.
func variantCount(channel domain.Channel, text string) int {
	if channel == domain.ChannelShortForm {
		return len([]rune(text))
	}
	return len(strings.Fields(text))
}

func (p *Pipeline) contentType(text string) string {
	if len([]rune(text)) <= p.shortFormCap {
		return domain.ContentTypeShortFormSource
	}
	return domain.ContentTypeLongFormSource
}

// runStage wraps one pipeline stage with a trace span and a duration
// observation.
func (p *Pipeline) runStage(ctx context.Context, name string, fn func(context.Context)) {
	start := time.Now()

	var span trace.Span
	if p.telemetry != nil && p.telemetry.Tracer != nil {
		ctx, span = p.telemetry.Tracer.Start(ctx, "pipeline."+name)
	}
	fn(ctx)
	if span != nil {
		span.End()
	}

	p.telemetry.ObserveStage(name, time.Since(start).Seconds())
}
