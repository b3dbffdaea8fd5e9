// Package policies holds the immutable policy tables the pipeline consults:
// sentiment lexicons, tone swap pairs, channel templates, hashtag rules,
// phrase sets, suggestion boilerplate, and posting-time windows. Tables are
// built once at process start and never mutated afterward.
package policies

import (
	"time"

	"github.com/jonesrussell/repurposer/internal/domain"
)

// TonePair maps a casual intensifier to its formal synonym.
type TonePair struct {
	Casual string
	Formal string
}

// TopicRule produces a content tag when any of its trigger words appears.
type TopicRule struct {
	Tag      string
	Triggers []string
}

// TopicCluster is the richer optimized-strategy variant of a TopicRule:
// one trigger hit yields the whole tag cluster.
type TopicCluster struct {
	Tags     []string
	Triggers []string
}

// ChannelTemplates holds the fixed text fragments the adapter wraps around
// or appends to content for one channel.
type ChannelTemplates struct {
	EngagementPrompt     string
	BusinessFraming      string
	ProfessionalQuestion string
	DigestSalutation     string
	DigestClosing        string
	DigestSignature      string
}

// Tables is the full policy set. Lists may be overridden at startup from the
// policy store; the pipeline only ever reads them.
type Tables struct {
	PositiveWords []string
	NegativeWords []string

	ToneSwaps []TonePair

	Templates ChannelTemplates

	TopicRules        []TopicRule
	ChannelTags       map[domain.Channel][]string
	OptimizedClusters []TopicCluster
	TrendingTags      map[domain.Channel][]string

	CTAPhrases    []string
	PowerWords    []string
	BusinessTerms []string

	HashtagTips []string
	TimingTips  []string

	PostingHours       map[domain.Channel][]int
	DigestGoodWeekdays []time.Weekday
	DigestFallbackSlot string

	Audiences []string
}

// Defaults returns the built-in policy tables.
func Defaults() *Tables {
	return &Tables{
		PositiveWords: []string{
			"good", "great", "excellent", "amazing", "awesome", "fantastic",
			"wonderful", "love", "best", "happy", "success", "win",
			"breakthrough", "improve", "growth", "innovative", "exciting",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "horrible", "hate", "worst",
			"fail", "failure", "problem", "issue", "difficult", "wrong",
			"broken", "disappointing", "poor", "loss",
		},
		ToneSwaps: []TonePair{
			{Casual: "awesome", Formal: "excellent"},
			{Casual: "cool", Formal: "impressive"},
			{Casual: "amazing", Formal: "remarkable"},
			{Casual: "huge", Formal: "significant"},
			{Casual: "totally", Formal: "completely"},
		},
		Templates: ChannelTemplates{
			EngagementPrompt:     "What do you think? Share your thoughts below!",
			BusinessFraming:      "In today's professional landscape, ",
			ProfessionalQuestion: "What has been your experience with this?",
			DigestSalutation:     "Hello,",
			DigestClosing:        "Thank you for reading.",
			DigestSignature:      "Best regards,\nThe Team",
		},
		TopicRules: []TopicRule{
			{Tag: "technology", Triggers: []string{"technology", "tech", "software", "digital", "platform"}},
			{Tag: "business", Triggers: []string{"business", "company", "market", "revenue", "strategy"}},
			{Tag: "innovation", Triggers: []string{"innovation", "innovative", "breakthrough", "disrupt", "transform"}},
			{Tag: "ai", Triggers: []string{"artificial", "intelligence", "machine", "learning", "model"}},
			{Tag: "marketing", Triggers: []string{"marketing", "brand", "audience", "campaign", "content"}},
		},
		ChannelTags: map[domain.Channel][]string{
			domain.ChannelShortForm:    {"trending", "viral", "mustread"},
			domain.ChannelProfessional: {"leadership", "career", "networking"},
			domain.ChannelDigest:       {},
		},
		OptimizedClusters: []TopicCluster{
			{Tags: []string{"ai", "machinelearning", "futureofwork"}, Triggers: []string{"artificial", "intelligence", "machine", "learning", "automation"}},
			{Tags: []string{"business", "entrepreneurship", "growth"}, Triggers: []string{"business", "startup", "revenue", "strategy", "market"}},
			{Tags: []string{"marketing", "contentstrategy", "branding"}, Triggers: []string{"marketing", "brand", "content", "audience", "campaign"}},
		},
		TrendingTags: map[domain.Channel][]string{
			domain.ChannelShortForm:    {"fyp", "trending", "viral"},
			domain.ChannelProfessional: {"thoughtleadership", "professionaldevelopment", "industry"},
			domain.ChannelDigest:       {},
		},
		CTAPhrases: []string{
			"click here", "sign up", "learn more", "join us", "get started",
			"find out", "don't miss", "check out", "subscribe", "share your",
		},
		PowerWords: []string{
			"breakthrough", "proven", "exclusive", "essential", "instantly",
			"powerful", "secret", "ultimate", "guaranteed", "discover",
		},
		BusinessTerms: []string{
			"business", "professional", "industry", "enterprise", "corporate",
			"workplace", "career", "leadership", "management", "strategy",
		},
		HashtagTips: []string{
			"Use 3-5 relevant hashtags per post",
			"Mix broad and niche hashtags for wider reach",
		},
		TimingTips: []string{
			"Post during commute hours for short-form content",
			"Schedule professional posts for weekday mornings",
			"Send digests early in the week, before midday",
		},
		PostingHours: map[domain.Channel][]int{
			domain.ChannelShortForm:    {9, 12, 17, 20},
			domain.ChannelProfessional: {8, 10, 12, 17},
			domain.ChannelDigest:       {6, 9, 14},
		},
		DigestGoodWeekdays: []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday},
		DigestFallbackSlot: "Tuesday 6:00 AM",
		Audiences: []string{
			"general", "developers", "executives", "marketers",
			"entrepreneurs", "students",
		},
	}
}
