package domain

// SentimentResult is the lexicon-derived sentiment of the submitted text.
type SentimentResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ChannelVariant is one channel's adapted rendering of the source text.
type ChannelVariant struct {
	Channel       Channel  `json:"channel"`
	AdaptedText   string   `json:"adapted_text"`
	Tags          []string `json:"tags"`
	CharOrWordCnt int      `json:"char_or_word_count"`
	OptimizedText string   `json:"optimized_text,omitempty"`
	Subject       string   `json:"subject,omitempty"`
}

// EngagementForecast predicts reception of a variant on its channel.
// OpenRate and ClickRate are populated for digest only.
type EngagementForecast struct {
	EngagementScore int     `json:"engagement_score"`
	OptimalTime     string  `json:"optimal_time"`
	Likes           int     `json:"estimated_likes,omitempty"`
	Shares          int     `json:"estimated_shares,omitempty"`
	Comments        int     `json:"estimated_comments,omitempty"`
	OpenRate        float64 `json:"estimated_open_rate,omitempty"`
	ClickRate       float64 `json:"estimated_click_rate,omitempty"`
}

// SuggestionSet carries channel-independent editorial guidance, grouped
// into four named lists.
type SuggestionSet struct {
	Hashtag []string `json:"hashtag"`
	Keyword []string `json:"keyword"`
	Tone    []string `json:"tone"`
	Timing  []string `json:"timing"`
}

// ChannelResult bundles the per-channel outputs.
type ChannelResult struct {
	Variant  ChannelVariant     `json:"variant"`
	Forecast EngagementForecast `json:"forecast"`
}

// ResultMetadata describes the processing run itself.
type ResultMetadata struct {
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	ContentType      string `json:"content_type"`
	ReadabilityScore int    `json:"readability_score"`
}

// PipelineResult is the full output for a submitted text.
type PipelineResult struct {
	SourceText  string                    `json:"source_text"`
	Audience    string                    `json:"audience,omitempty"`
	Sentiment   SentimentResult           `json:"sentiment"`
	Channels    map[Channel]ChannelResult `json:"channels"`
	Suggestions SuggestionSet             `json:"suggestions"`
	Metadata    ResultMetadata            `json:"metadata"`
}
