package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonesrussell/repurposer/internal/domain"
	"github.com/jonesrussell/repurposer/internal/logging"
	"github.com/jonesrussell/repurposer/internal/policies"
)

// Channel adaptation constants
const (
	shortFormTruncateAt  = 240
	shortFormPromptBelow = 200
	ellipsisMarker       = "..."
)

type swapRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// ChannelAdapter rewrites text for a target channel, optionally applying a
// tone pass first. Pure string transform; same input yields the same output.
type ChannelAdapter struct {
	templates       policies.ChannelTemplates
	casualToFormal  []swapRule
	formalToCasual  []swapRule
	businessMatcher *PhraseMatcher
	channelPass     map[domain.Channel]func(*ChannelAdapter, string) string
	logger          logging.Logger
}

// NewChannelAdapter compiles the tone swap rules and channel templates.
func NewChannelAdapter(tables *policies.Tables, logger logging.Logger) *ChannelAdapter {
	a := &ChannelAdapter{
		templates:       tables.Templates,
		casualToFormal:  compileSwaps(tables.ToneSwaps, false),
		formalToCasual:  compileSwaps(tables.ToneSwaps, true),
		businessMatcher: NewPhraseMatcher(tables.BusinessTerms),
		logger:          logger,
	}
	a.channelPass = map[domain.Channel]func(*ChannelAdapter, string) string{
		domain.ChannelShortForm:    (*ChannelAdapter).adaptShortForm,
		domain.ChannelProfessional: (*ChannelAdapter).adaptProfessional,
		domain.ChannelDigest:       (*ChannelAdapter).adaptDigest,
	}
	return a
}

func compileSwaps(pairs []policies.TonePair, inverse bool) []swapRule {
	rules := make([]swapRule, 0, len(pairs))
	for _, pair := range pairs {
		from, to := pair.Casual, pair.Formal
		if inverse {
			from, to = pair.Formal, pair.Casual
		}
		rules = append(rules, swapRule{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`),
			replacement: to,
		})
	}
	return rules
}

// Adapt applies the tone pass (when a tone is given) and then the channel
// pass. Unknown channels and tones are internal faults.
func (a *ChannelAdapter) Adapt(text string, channel domain.Channel, tone domain.Tone) (string, error) {
	toned, err := a.applyTone(text, tone)
	if err != nil {
		return "", err
	}

	pass, ok := a.channelPass[channel]
	if !ok {
		return "", fmt.Errorf("unsupported channel %q", channel)
	}
	return pass(a, toned), nil
}

func (a *ChannelAdapter) applyTone(text string, tone domain.Tone) (string, error) {
	switch tone {
	case domain.ToneNone:
		return text, nil
	case domain.ToneProfessional:
		text = strings.ReplaceAll(text, "!", ".")
		return applySwaps(text, a.casualToFormal), nil
	case domain.ToneCasual:
		return applySwaps(text, a.formalToCasual), nil
	case domain.ToneEnthusiastic:
		if strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") {
			return strings.TrimSuffix(text, ".") + "!", nil
		}
		return text, nil
	default:
		return "", fmt.Errorf("unsupported tone %q", tone)
	}
}

func applySwaps(text string, rules []swapRule) string {
	for _, rule := range rules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// adaptShortForm truncates long text with an ellipsis and invites
// engagement on short text.
func (a *ChannelAdapter) adaptShortForm(text string) string {
	runes := []rune(text)
	if len(runes) > shortFormTruncateAt {
		return string(runes[:shortFormTruncateAt]) + ellipsisMarker
	}
	if len(runes) < shortFormPromptBelow {
		return text + " " + a.templates.EngagementPrompt
	}
	return text
}

// adaptProfessional frames the text for a business audience unless it
// already reads as one, and closes with an engagement question.
func (a *ChannelAdapter) adaptProfessional(text string) string {
	if !a.businessMatcher.Contains(text) {
		text = a.templates.BusinessFraming + lowerFirst(text)
	}
	return text + "\n\n" + a.templates.ProfessionalQuestion
}

// adaptDigest wraps the text in the salutation/closing template.
func (a *ChannelAdapter) adaptDigest(text string) string {
	return a.templates.DigestSalutation + "\n\n" + text + "\n\n" +
		a.templates.DigestClosing + "\n\n" + a.templates.DigestSignature
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
