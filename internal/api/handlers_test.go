//nolint:testpackage // Testing internal api requires same package access
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/pipeline"
	"github.com/jonesrussell/repurposer/internal/policies"
)

type stubClock struct{}

func (stubClock) Now() time.Time {
	return time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tables := policies.Defaults()
	p := pipeline.New(tables, stubClock{}, pipeline.NoJitter(), logging.NewNop(), nil, pipeline.Options{})
	handler := NewHandler(p, tables, nil, logging.NewNop())

	router := gin.New()
	SetupRoutes(router, handler, nil, nil)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Repurpose(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/repurpose", RepurposeRequest{
		Text: "This is a great breakthrough for our team!",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result domain.PipelineResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if result.Sentiment.Label != "positive" {
		t.Errorf("expected positive sentiment, got %s", result.Sentiment.Label)
	}
	if len(result.Channels) != 3 {
		t.Errorf("expected 3 channels, got %d", len(result.Channels))
	}
	if result.Metadata.ContentType != domain.ContentTypeShortFormSource {
		t.Errorf("unexpected content type %s", result.Metadata.ContentType)
	}
}

func TestHandler_Repurpose_MissingText(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/repurpose", map[string]string{
		"audience": "developers",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing text, got %d", rec.Code)
	}
}

func TestHandler_Repurpose_BlankText(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/repurpose", RepurposeRequest{
		Text: "   ",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank text, got %d", rec.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("unmarshal error response: %v", err)
	}
	if errResp.Code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT code, got %s", errResp.Code)
	}
}

func TestHandler_Repurpose_UnknownTone(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/repurpose", map[string]string{
		"text": "some text",
		"tone": "sarcastic",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown tone, got %d", rec.Code)
	}
}

func TestHandler_Repurpose_ToneApplied(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/repurpose", RepurposeRequest{
		Text: "This is awesome!",
		Tone: "professional",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result domain.PipelineResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	digest := result.Channels[domain.ChannelDigest].Variant.AdaptedText
	if !bytes.Contains([]byte(digest), []byte("This is excellent.")) {
		t.Errorf("expected tone-adjusted digest, got %q", digest)
	}
}

func TestHandler_Channels(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/channels", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ChannelsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Channels) != 3 {
		t.Errorf("expected 3 channels, got %d", len(resp.Channels))
	}
}

func TestHandler_Audiences(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/audiences", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp AudiencesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Audiences) == 0 {
		t.Error("expected audience suggestions")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(1, 1, logging.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected second request limited, got %d", second.Code)
	}
}
