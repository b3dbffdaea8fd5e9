// Package domain defines the shared types for content repurposing.
package domain

import "errors"

// Channel identifies a distribution target for adapted content.
type Channel string

const (
	ChannelShortForm    Channel = "short_form"
	ChannelProfessional Channel = "professional"
	ChannelDigest       Channel = "digest"
)

// AllChannels lists the supported channels in presentation order.
var AllChannels = []Channel{ChannelShortForm, ChannelProfessional, ChannelDigest}

// IsValid reports whether the channel is one of the supported targets.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelShortForm, ChannelProfessional, ChannelDigest:
		return true
	}
	return false
}

// Tone is an optional directive applied before channel adaptation.
type Tone string

const (
	ToneNone         Tone = ""
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
)

// IsValid reports whether the tone is empty or one of the known directives.
func (t Tone) IsValid() bool {
	switch t {
	case ToneNone, ToneProfessional, ToneCasual, ToneEnthusiastic:
		return true
	}
	return false
}

// HashtagPolicy selects which tag surface drives the adapted output.
type HashtagPolicy string

const (
	HashtagPolicyBaseline  HashtagPolicy = "baseline"
	HashtagPolicyOptimized HashtagPolicy = "optimized"
)

// IsValid reports whether the policy is empty or a known policy name.
func (p HashtagPolicy) IsValid() bool {
	switch p {
	case "", HashtagPolicyBaseline, HashtagPolicyOptimized:
		return true
	}
	return false
}

// Content type labels recorded in result metadata.
const (
	ContentTypeShortFormSource = "short_form_source"
	ContentTypeLongFormSource  = "long_form_source"
)

// SubmittedContent is a single repurposing request.
type SubmittedContent struct {
	Text          string        `json:"text"`
	Audience      string        `json:"audience,omitempty"`
	Tone          Tone          `json:"tone,omitempty"`
	HashtagPolicy HashtagPolicy `json:"hashtag_policy,omitempty"`
}

var (
	// ErrEmptyContent rejects requests whose text is empty or whitespace.
	ErrEmptyContent = errors.New("content text is empty")

	// ErrInvalidTone rejects requests naming an unknown tone directive.
	ErrInvalidTone = errors.New("unknown tone directive")

	// ErrInvalidHashtagPolicy rejects requests naming an unknown hashtag policy.
	ErrInvalidHashtagPolicy = errors.New("unknown hashtag policy")

	// ErrPipelineFailure marks an unexpected internal fault during processing.
	ErrPipelineFailure = errors.New("pipeline processing failed")
)

// Validate checks the request fields that gate processing.
func (s SubmittedContent) Validate() error {
	if isBlank(s.Text) {
		return ErrEmptyContent
	}
	if !s.Tone.IsValid() {
		return ErrInvalidTone
	}
	if !s.HashtagPolicy.IsValid() {
		return ErrInvalidHashtagPolicy
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
