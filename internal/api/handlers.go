// Package api exposes the content repurposing pipeline over HTTP.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/pipeline"
	"github.com/jonesrussell/repurposer/internal/policies"
	"github.com/jonesrussell/repurposer/internal/telemetry"
)

// Handler handles HTTP requests for the repurposer API
type Handler struct {
	pipeline  *pipeline.Pipeline
	tables    *policies.Tables
	telemetry *telemetry.Provider
	logger    logging.Logger
}

// NewHandler creates a new API handler
func NewHandler(p *pipeline.Pipeline, tables *policies.Tables, tp *telemetry.Provider, logger logging.Logger) *Handler {
	return &Handler{
		pipeline:  p,
		tables:    tables,
		telemetry: tp,
		logger:    logger,
	}
}

// Repurpose handles POST /api/v1/repurpose
func (h *Handler) Repurpose(c *gin.Context) {
	start := time.Now()

	var req RepurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid repurpose request", logging.Error(err))
		h.telemetry.ObserveRequest("invalid_input", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REQUEST",
		})
		return
	}

	content := domain.SubmittedContent{
		Text:          req.Text,
		Audience:      req.Audience,
		Tone:          domain.Tone(req.Tone),
		HashtagPolicy: domain.HashtagPolicy(req.HashtagPolicy),
	}

	result, err := h.pipeline.Process(c.Request.Context(), content)
	if err != nil {
		h.respondError(c, err, start)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) respondError(c *gin.Context, err error, start time.Time) {
	switch {
	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrInvalidTone),
		errors.Is(err, domain.ErrInvalidHashtagPolicy):
		h.logger.Warn("Repurpose request rejected", logging.Error(err))
		h.telemetry.ObserveRequest("invalid_input", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_INPUT",
		})
	default:
		h.logger.Error("Repurpose request failed", logging.Error(err))
		h.telemetry.ObserveRequest("internal_error", time.Since(start).Seconds())
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "An unexpected error occurred",
			Code:  "INTERNAL_ERROR",
		})
	}
}

// Channels handles GET /api/v1/channels
func (h *Handler) Channels(c *gin.Context) {
	c.JSON(http.StatusOK, ChannelsResponse{
		Channels: []ChannelInfo{
			{
				Name:        string(domain.ChannelShortForm),
				Description: "Short-form feed post with tight length limits",
				HardCap:     280,
				TruncateAt:  240,
				OptimalBand: "71-100 characters",
				CountUnit:   "characters",
			},
			{
				Name:        string(domain.ChannelProfessional),
				Description: "Long-form professional feed post",
				OptimalBand: "50-200 words",
				CountUnit:   "words",
			},
			{
				Name:            string(domain.ChannelDigest),
				Description:     "Email digest with salutation and signature",
				CountUnit:       "words",
				ProducesSubject: true,
			},
		},
	})
}

// Audiences handles GET /api/v1/audiences
func (h *Handler) Audiences(c *gin.Context) {
	c.JSON(http.StatusOK, AudiencesResponse{Audiences: h.tables.Audiences})
}
