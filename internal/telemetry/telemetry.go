// Package telemetry provides OpenTelemetry instrumentation for the
// repurposer service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "repurposer"

// Metrics holds all repurposer Prometheus metrics
type Metrics struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  prometheus.Histogram
	InvalidInput     prometheus.Counter
	PipelineFailures prometheus.Counter

	// Pipeline stage metrics
	StageDuration *prometheus.HistogramVec

	// Per-channel output metrics
	VariantsProduced *prometheus.CounterVec
	EngagementScore  *prometheus.HistogramVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewProvider initializes telemetry with Prometheus metrics. Metric
// registration is process-global and happens once.
func NewProvider() *Provider {
	metricsOnce.Do(func() {
		metrics = initMetrics()
	})

	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: metrics,
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}

	m.RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repurposer_requests_total",
		Help: "Total repurpose requests by outcome (ok, invalid_input, internal_error)",
	}, []string{"outcome"})

	m.RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "repurposer_request_duration_seconds",
		Help:    "End-to-end pipeline duration per request",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})

	m.InvalidInput = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repurposer_invalid_input_total",
		Help: "Requests rejected before the pipeline ran",
	})

	m.PipelineFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repurposer_pipeline_failures_total",
		Help: "Requests that failed inside the pipeline",
	})

	m.StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "repurposer_stage_duration_seconds",
		Help:    "Time spent per pipeline stage",
		Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"stage"})

	m.VariantsProduced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repurposer_variants_produced_total",
		Help: "Channel variants produced",
	}, []string{"channel"})

	m.EngagementScore = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "repurposer_engagement_score",
		Help:    "Forecast engagement score distribution by channel",
		Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"channel"})

	return m
}

// ObserveRequest records the outcome and duration of one request.
func (p *Provider) ObserveRequest(outcome string, seconds float64) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.RequestsTotal.WithLabelValues(outcome).Inc()
	p.Metrics.RequestDuration.Observe(seconds)
}

// ObserveStage records the duration of one pipeline stage.
func (p *Provider) ObserveStage(stage string, seconds float64) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.StageDuration.WithLabelValues(stage).Observe(seconds)
}

// ObserveVariant records a produced variant and its forecast score.
func (p *Provider) ObserveVariant(channel string, engagementScore int) {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.VariantsProduced.WithLabelValues(channel).Inc()
	p.Metrics.EngagementScore.WithLabelValues(channel).Observe(float64(engagementScore))
}

// IncInvalidInput counts a request rejected at validation.
func (p *Provider) IncInvalidInput() {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.InvalidInput.Inc()
}

// IncPipelineFailure counts an internal pipeline fault.
func (p *Provider) IncPipelineFailure() {
	if p == nil || p.Metrics == nil {
		return
	}
	p.Metrics.PipelineFailures.Inc()
}
