package slack

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slacktable/pkg/domain/types"
	"github.com/slack-go/slack"

	slackmodel "github.com/secmon-lab/slacktable/pkg/domain/model/slack"
)

// repliesPageSize bounds one conversations.replies page; threads longer
// than this are paginated
const repliesPageSize = 100

// client implements Service interface
type client struct {
	api *slack.Client

	mu        sync.Mutex
	botUserID string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithAPI replaces the underlying API client. Used by tests to point the
// client at a local server.
func WithAPI(api *slack.Client) Option {
	return func(c *client) {
		c.api = api
	}
}

// New creates a new Slack service with the provided bot token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required", goerr.T(types.TagConfiguration))
	}

	c := &client{
		api: slack.New(token),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BotUserID returns the authenticated bot's user ID with caching
func (c *client) BotUserID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.botUserID != "" {
		return c.botUserID, nil
	}

	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to authenticate with Slack", goerr.T(types.TagConfiguration))
	}

	c.botUserID = resp.UserID
	return c.botUserID, nil
}

// GetMessage retrieves the message a reaction points at
func (c *client) GetMessage(ctx context.Context, channelID, messageTS, threadTS string) (*slackmodel.Message, error) {
	// A reaction on a thread reply must resolve to the reply, not the
	// thread parent. threadTS equal to messageTS means the reaction is on
	// the thread root, which conversations.history can serve.
	if threadTS != "" && threadTS != messageTS {
		msg, err := c.findThreadReply(ctx, channelID, threadTS, messageTS)
		if err != nil {
			return nil, err
		}
		if msg == nil {
			return nil, goerr.New("thread reply not found",
				goerr.T(types.TagNotFound),
				goerr.V("channelID", channelID),
				goerr.V("messageTS", messageTS),
				goerr.V("threadTS", threadTS),
			)
		}
		return msg, nil
	}

	msg, err := c.findHistoryMessage(ctx, channelID, messageTS)
	if err != nil {
		return nil, err
	}
	if msg != nil {
		return msg, nil
	}

	// Thread replies never appear in conversations.history, and reaction
	// payloads do not always carry the thread timestamp. Look the
	// timestamp up as a thread reply before concluding the message is gone.
	msg, err = c.findThreadReply(ctx, channelID, messageTS, messageTS)
	if err != nil && !types.IsNotFound(err) {
		return nil, err
	}
	if msg != nil {
		return msg, nil
	}

	return nil, goerr.New("message not found",
		goerr.T(types.TagNotFound),
		goerr.V("channelID", channelID),
		goerr.V("messageTS", messageTS),
	)
}

// findHistoryMessage looks up a top-level message at the exact timestamp.
// Returns nil without error when the timestamp is not in the history.
func (c *client) findHistoryMessage(ctx context.Context, channelID, messageTS string) (*slackmodel.Message, error) {
	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Latest:    messageTS,
		Oldest:    messageTS,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return nil, wrapAPIError(err, "failed to get conversation history", channelID, messageTS)
	}

	for _, msg := range resp.Messages {
		if msg.Timestamp == messageTS {
			return slackmodel.NewMessageFromAPI(&msg, channelID), nil
		}
	}
	return nil, nil
}

// findThreadReply scans a thread for the message at targetTS. Returns nil
// without error when the thread exists but the timestamp does not.
func (c *client) findThreadReply(ctx context.Context, channelID, threadTS, targetTS string) (*slackmodel.Message, error) {
	params := &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     repliesPageSize,
	}

	for {
		msgs, hasMore, nextCursor, err := c.api.GetConversationRepliesContext(ctx, params)
		if err != nil {
			return nil, wrapAPIError(err, "failed to get thread replies", channelID, targetTS)
		}

		for _, msg := range msgs {
			if msg.Timestamp == targetTS {
				return slackmodel.NewMessageFromAPI(&msg, channelID), nil
			}
		}

		if !hasMore {
			return nil, nil
		}
		params.Cursor = nextCursor
	}
}

// wrapAPIError classifies a Slack API error: *_not_found responses mean
// the message or its container is gone and retrying cannot help; anything
// else is treated as transient.
func wrapAPIError(err error, msg, channelID, messageTS string) error {
	tag := types.TagTransient
	if strings.Contains(err.Error(), "not_found") {
		tag = types.TagNotFound
	}
	return goerr.Wrap(err, msg,
		goerr.T(tag),
		goerr.V("channelID", channelID),
		goerr.V("messageTS", messageTS),
	)
}
