package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slacktable/pkg/domain/model/reaction"
	"github.com/secmon-lab/slacktable/pkg/domain/model/record"
	"github.com/secmon-lab/slacktable/pkg/domain/types"
	"github.com/secmon-lab/slacktable/pkg/utils/logging"
)

// HandleReaction runs one reaction event through the pipeline: classify,
// resolve the reacted-to message, build the record, create it. Errors are
// contained to this event; the caller decides how to report them.
func (uc *UseCases) HandleReaction(ctx context.Context, ev *reaction.Event) error {
	logger := logging.From(ctx)

	c := reaction.Classify(ev, uc.botUserID)
	if c.Ignored() {
		logger.Debug("ignoring reaction",
			"emoji", ev.Emoji(),
			"removed", ev.Removed(),
			"userID", ev.UserID(),
		)
		return nil
	}

	if err := ev.Validate(); err != nil {
		return goerr.Wrap(err, "invalid reaction event")
	}

	// Repeated reactions on the same message with the same emoji would
	// create duplicate records; suppress them within the cache TTL.
	if !uc.recent.MarkHandled(ev) {
		logger.Info("duplicate reaction suppressed",
			"emoji", ev.Emoji(),
			"channelID", ev.ChannelID(),
			"messageTS", ev.MessageTS(),
		)
		return nil
	}

	msg, err := uc.slack.GetMessage(ctx, ev.ChannelID(), ev.MessageTS(), ev.ThreadTS())
	if err != nil {
		uc.recent.Forget(ev)
		if types.IsNotFound(err) {
			// The message was deleted between the reaction and the fetch;
			// retrying cannot produce a different outcome
			logger.Warn("reacted-to message no longer exists",
				"channelID", ev.ChannelID(),
				"messageTS", ev.MessageTS(),
			)
			return nil
		}
		return goerr.Wrap(err, "failed to resolve message",
			goerr.V("channelID", ev.ChannelID()),
			goerr.V("messageTS", ev.MessageTS()),
		)
	}

	rec := record.Build(c, msg, uc.fields)

	recordID, err := uc.records.CreateRecord(ctx, rec)
	if err != nil {
		// Allow a later re-reaction to try again
		uc.recent.Forget(ev)
		return goerr.Wrap(err, "failed to create record",
			goerr.V("channelID", ev.ChannelID()),
			goerr.V("messageTS", ev.MessageTS()),
			goerr.V("emoji", ev.Emoji()),
		)
	}

	logger.Info("record created",
		"recordID", recordID,
		"emoji", ev.Emoji(),
		"channelID", ev.ChannelID(),
		"messageTS", ev.MessageTS(),
		"textLen", len(msg.Text()),
		"images", len(msg.ImageURLs(record.MaxScreenshots)),
	)

	return nil
}
