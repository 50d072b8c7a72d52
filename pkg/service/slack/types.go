package slack

import (
	"context"

	slackmodel "github.com/secmon-lab/slacktable/pkg/domain/model/slack"
)

// Service provides interface to the Slack Web API for message resolution
type Service interface {
	// BotUserID returns the authenticated bot's user ID via auth.test.
	// The result is cached for the lifetime of the service instance.
	BotUserID(ctx context.Context) (string, error)

	// GetMessage retrieves the message a reaction points at. When threadTS
	// is present and differs from messageTS, the message is a thread reply
	// and is fetched from the thread, not from the channel history.
	// Returns an error tagged not_found when the message no longer exists.
	GetMessage(ctx context.Context, channelID, messageTS, threadTS string) (*slackmodel.Message, error)
}
