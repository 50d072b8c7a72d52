package usecase

import (
	"time"

	"github.com/secmon-lab/slacktable/pkg/domain/model/record"
	"github.com/secmon-lab/slacktable/pkg/service/airtable"
	slacksvc "github.com/secmon-lab/slacktable/pkg/service/slack"
)

// DefaultDedupeTTL is how long a handled reaction suppresses duplicates
// for the same message and emoji
const DefaultDedupeTTL = 5 * time.Minute

// UseCases holds the per-event pipeline and its collaborators. The two
// service handles are the only state shared across concurrent events.
type UseCases struct {
	slack     slacksvc.Service
	records   airtable.Service
	fields    record.Fields
	botUserID string
	recent    *recentCache
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithDedupeTTL sets how long repeated reactions are suppressed
func WithDedupeTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.recent = newRecentCache(ttl)
	}
}

// New creates a UseCases instance. botUserID is the bot's own Slack user
// ID, used to ignore self-reactions.
func New(slackSvc slacksvc.Service, recordSvc airtable.Service, fields record.Fields, botUserID string, opts ...Option) *UseCases {
	uc := &UseCases{
		slack:     slackSvc,
		records:   recordSvc,
		fields:    fields,
		botUserID: botUserID,
		recent:    newRecentCache(DefaultDedupeTTL),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
