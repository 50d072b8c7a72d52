package reaction

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack/slackevents"
)

// Event represents a single emoji reaction notification from Slack.
// It is constructed on receipt and consumed synchronously; nothing
// mutates it afterwards.
type Event struct {
	emoji     string
	userID    string
	channelID string
	messageTS string
	threadTS  string
	removed   bool
}

// NewEvent creates an Event from raw values. threadTS may be empty when
// the reacted-to message is not in a thread.
func NewEvent(emoji, userID, channelID, messageTS, threadTS string, removed bool) *Event {
	return &Event{
		emoji:     emoji,
		userID:    userID,
		channelID: channelID,
		messageTS: messageTS,
		threadTS:  threadTS,
		removed:   removed,
	}
}

// NewEventFromAdded creates an Event from a reaction_added Events API payload
func NewEventFromAdded(ev *slackevents.ReactionAddedEvent) *Event {
	return &Event{
		emoji:     ev.Reaction,
		userID:    ev.User,
		channelID: ev.Item.Channel,
		messageTS: ev.Item.Timestamp,
	}
}

// NewEventFromRemoved creates an Event from a reaction_removed Events API payload
func NewEventFromRemoved(ev *slackevents.ReactionRemovedEvent) *Event {
	return &Event{
		emoji:     ev.Reaction,
		userID:    ev.User,
		channelID: ev.Item.Channel,
		messageTS: ev.Item.Timestamp,
		removed:   true,
	}
}

// Getters to maintain immutability
func (e *Event) Emoji() string     { return e.emoji }
func (e *Event) UserID() string    { return e.userID }
func (e *Event) ChannelID() string { return e.channelID }
func (e *Event) MessageTS() string { return e.messageTS }
func (e *Event) ThreadTS() string  { return e.threadTS }
func (e *Event) Removed() bool     { return e.removed }

// Validate checks that the event carries everything needed to resolve the
// reacted-to message
func (e *Event) Validate() error {
	if e.userID == "" {
		return goerr.New("reaction event is missing user ID", goerr.V("emoji", e.emoji))
	}
	if e.channelID == "" {
		return goerr.New("reaction event is missing channel ID", goerr.V("emoji", e.emoji))
	}
	if e.messageTS == "" {
		return goerr.New("reaction event is missing message timestamp", goerr.V("emoji", e.emoji), goerr.V("channelID", e.channelID))
	}
	return nil
}
