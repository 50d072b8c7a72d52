package reaction_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slacktable/pkg/domain/model/reaction"
	"github.com/slack-go/slack/slackevents"
)

func TestNewEventFromAdded(t *testing.T) {
	ev := reaction.NewEventFromAdded(&slackevents.ReactionAddedEvent{
		Type:     "reaction_added",
		User:     "U12345",
		Reaction: "two",
		Item: slackevents.Item{
			Type:      "message",
			Channel:   "C12345",
			Timestamp: "1234567890.123",
		},
	})

	gt.Value(t, ev.Emoji()).Equal("two")
	gt.Value(t, ev.UserID()).Equal("U12345")
	gt.Value(t, ev.ChannelID()).Equal("C12345")
	gt.Value(t, ev.MessageTS()).Equal("1234567890.123")
	gt.Value(t, ev.ThreadTS()).Equal("")
	gt.Bool(t, ev.Removed()).False()
}

func TestNewEventFromRemoved(t *testing.T) {
	ev := reaction.NewEventFromRemoved(&slackevents.ReactionRemovedEvent{
		Type:     "reaction_removed",
		User:     "U12345",
		Reaction: "fedex",
		Item: slackevents.Item{
			Type:      "message",
			Channel:   "C12345",
			Timestamp: "1234567890.123",
		},
	})

	gt.Value(t, ev.Emoji()).Equal("fedex")
	gt.Bool(t, ev.Removed()).True()
}

func TestEventValidate(t *testing.T) {
	t.Run("complete event is valid", func(t *testing.T) {
		ev := reaction.NewEvent("fedex", "U1", "C1", "100.1", "", false)
		gt.NoError(t, ev.Validate())
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		tests := []struct {
			name string
			ev   *reaction.Event
		}{
			{name: "no user", ev: reaction.NewEvent("fedex", "", "C1", "100.1", "", false)},
			{name: "no channel", ev: reaction.NewEvent("fedex", "U1", "", "100.1", "", false)},
			{name: "no timestamp", ev: reaction.NewEvent("fedex", "U1", "C1", "", "", false)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gt.Value(t, tt.ev.Validate()).NotNil()
			})
		}
	})
}
