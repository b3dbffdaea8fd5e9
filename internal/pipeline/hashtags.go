package pipeline

import (
	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

// Hashtag derivation constants
const (
	maxTags           = 5
	minTokenLenForTag = 4
)

// HashtagDeriver extracts topical tags from text and pads them with
// channel-specific tag lists. Two strategies are exposed: a baseline
// trigger-word extractor and a richer topic-cluster derivation. The caller
// selects one; they never merge.
type HashtagDeriver struct {
	tables *policies.Tables
	logger logging.Logger
}

// NewHashtagDeriver creates a hashtag deriver over the policy tables.
func NewHashtagDeriver(tables *policies.Tables, logger logging.Logger) *HashtagDeriver {
	return &HashtagDeriver{tables: tables, logger: logger}
}

// Derive dispatches to the named strategy. An empty policy means baseline.
func (d *HashtagDeriver) Derive(text string, channel domain.Channel, policy domain.HashtagPolicy) []string {
	var tags []string
	if policy == domain.HashtagPolicyOptimized {
		tags = d.deriveOptimized(text, channel)
	} else {
		tags = d.deriveBaseline(text, channel)
	}

	d.logger.Debug("hashtags derived",
		logging.String("channel", string(channel)),
		logging.String("policy", string(policy)),
		logging.Strings("tags", tags))

	return tags
}

// deriveBaseline matches long word tokens against topic trigger rules, then
// fills remaining slots from the channel's fixed tag list.
func (d *HashtagDeriver) deriveBaseline(text string, channel domain.Channel) []string {
	tokens := longTokenSet(text)

	tags := make([]string, 0, maxTags)
	seen := make(map[string]struct{}, maxTags)

	for _, rule := range d.tables.TopicRules {
		if anyTokenMatch(tokens, rule.Triggers) {
			tags = appendTag(tags, seen, rule.Tag)
		}
	}
	for _, tag := range d.tables.ChannelTags[channel] {
		tags = appendTag(tags, seen, tag)
	}

	return tags
}

// deriveOptimized unions whole topic-cluster tag sets on any trigger hit,
// then unions the channel trending list, truncating at the cap.
func (d *HashtagDeriver) deriveOptimized(text string, channel domain.Channel) []string {
	tokens := longTokenSet(text)

	tags := make([]string, 0, maxTags)
	seen := make(map[string]struct{}, maxTags)

	for _, cluster := range d.tables.OptimizedClusters {
		if anyTokenMatch(tokens, cluster.Triggers) {
			for _, tag := range cluster.Tags {
				tags = appendTag(tags, seen, tag)
			}
		}
	}
	for _, tag := range d.tables.TrendingTags[channel] {
		tags = appendTag(tags, seen, tag)
	}

	return tags
}

// longTokenSet keeps only tokens long enough to carry topical signal.
func longTokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		if len(tok) >= minTokenLenForTag {
			set[tok] = struct{}{}
		}
	}
	return set
}

func anyTokenMatch(tokens map[string]struct{}, triggers []string) bool {
	for _, trigger := range triggers {
		if _, ok := tokens[trigger]; ok {
			return true
		}
	}
	return false
}

func appendTag(tags []string, seen map[string]struct{}, tag string) []string {
	if len(tags) >= maxTags {
		return tags
	}
	if _, dup := seen[tag]; dup {
		return tags
	}
	seen[tag] = struct{}{}
	return append(tags, tag)
}
