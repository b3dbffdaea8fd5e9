package api

// RepurposeRequest is the body of POST /api/v1/repurpose.
type RepurposeRequest struct {
	Text          string `json:"text" binding:"required"`
	Audience      string `json:"audience"`
	Tone          string `json:"tone" binding:"omitempty,oneof=professional casual enthusiastic"`
	HashtagPolicy string `json:"hashtag_policy" binding:"omitempty,oneof=baseline optimized"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ChannelInfo describes one channel and its norms.
type ChannelInfo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	HardCap         int    `json:"hard_cap,omitempty"`
	TruncateAt      int    `json:"truncate_at,omitempty"`
	OptimalBand     string `json:"optimal_band,omitempty"`
	CountUnit       string `json:"count_unit"`
	ProducesSubject bool   `json:"produces_subject,omitempty"`
}

// ChannelsResponse lists the supported channels.
type ChannelsResponse struct {
	Channels []ChannelInfo `json:"channels"`
}

// AudiencesResponse lists the audience suggestions.
type AudiencesResponse struct {
	Audiences []string `json:"audiences"`
}
