package socket

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slacktable/pkg/domain/model/reaction"
	"github.com/secmon-lab/slacktable/pkg/domain/types"
	"github.com/secmon-lab/slacktable/pkg/usecase"
	"github.com/secmon-lab/slacktable/pkg/utils/async"
	"github.com/secmon-lab/slacktable/pkg/utils/errutil"
	"github.com/secmon-lab/slacktable/pkg/utils/logging"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

// Listener maintains the single Socket Mode connection and feeds reaction
// events into the usecase pipeline. Reconnection with backoff is handled
// by the socket mode client; if the connection cannot be reestablished the
// run loop returns and the process terminates for the supervisor to
// restart.
// drainTimeout bounds how long shutdown waits for dispatched pipelines
// to finish their current call
const drainTimeout = 10 * time.Second

type Listener struct {
	client *socketmode.Client
	uc     *usecase.UseCases

	// inflight tracks dispatched event pipelines so shutdown does not
	// cut off a record creation mid-call
	inflight sync.WaitGroup
}

// New creates a Socket Mode listener. The app-level token needs the
// connections:write scope; the bot token needs reactions:read and
// channels:history.
func New(botToken, appToken string, uc *usecase.UseCases) (*Listener, error) {
	if botToken == "" {
		return nil, goerr.New("Slack bot token is required", goerr.T(types.TagConfiguration))
	}
	if appToken == "" {
		return nil, goerr.New("Slack app-level token is required for Socket Mode", goerr.T(types.TagConfiguration))
	}

	api := slack.New(botToken, slack.OptionAppLevelToken(appToken))

	return &Listener{
		client: socketmode.New(api),
		uc:     uc,
	}, nil
}

// Run connects to Slack and processes events until ctx is canceled or the
// connection is lost beyond recovery
func (l *Listener) Run(ctx context.Context) error {
	runErr := make(chan error, 1)
	go func() {
		runErr <- l.client.RunContext(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			l.waitInflight(ctx)
			return ctx.Err()

		case err := <-runErr:
			l.waitInflight(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return goerr.Wrap(err, "socket mode connection lost")
			}
			return nil

		case evt, ok := <-l.client.Events:
			if !ok {
				l.waitInflight(ctx)
				return goerr.New("socket mode event channel closed")
			}
			l.handleEvent(ctx, evt)
		}
	}
}

// waitInflight blocks until all dispatched pipelines finish or the drain
// timeout passes. Pipelines run on a detached context, so an event being
// handled at shutdown completes its current Slack or Airtable call instead
// of being killed mid-flight.
func (l *Listener) waitInflight(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		l.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(drainTimeout):
		logging.From(ctx).Warn("shutdown drain timed out with events still in flight")
	}
}

func (l *Listener) handleEvent(ctx context.Context, evt socketmode.Event) {
	logger := logging.From(ctx)

	switch evt.Type {
	case socketmode.EventTypeConnecting:
		logger.Info("connecting to Slack with Socket Mode")

	case socketmode.EventTypeConnectionError:
		logger.Warn("Slack connection failed, retrying")

	case socketmode.EventTypeConnected:
		logger.Info("connected to Slack with Socket Mode")

	case socketmode.EventTypeEventsAPI:
		// Ack before processing: Slack redelivers unacked envelopes, and
		// the pipeline is at-most-once by design
		if evt.Request != nil {
			l.client.Ack(*evt.Request)
		}

		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			// Malformed payloads are dropped; they must never take the
			// connection down
			logger.Warn("dropping malformed events API payload")
			return
		}
		l.dispatch(ctx, &apiEvent)

	default:
		// hello, disconnect notices and other envelope types need no action
	}
}

// dispatch converts a typed Events API event into a domain event and runs
// the pipeline asynchronously, one goroutine per event
func (l *Listener) dispatch(ctx context.Context, apiEvent *slackevents.EventsAPIEvent) {
	ev := eventFromEventsAPI(apiEvent)
	if ev == nil {
		logging.From(ctx).Debug("unsupported event type",
			"type", apiEvent.Type,
			"innerType", apiEvent.InnerEvent.Type,
		)
		return
	}

	// Attach a handling ID so concurrent pipelines are distinguishable in logs
	ctx = logging.With(ctx, logging.From(ctx).With("event_id", uuid.NewString()))

	l.inflight.Add(1)
	async.Dispatch(ctx, func(ctx context.Context) error {
		defer l.inflight.Done()
		if err := l.uc.HandleReaction(ctx, ev); err != nil {
			errutil.Handle(ctx, err, "failed to handle reaction event")
		}
		// Errors are contained to this event
		return nil
	})
}

// eventFromEventsAPI extracts a reaction event from an Events API
// envelope. Returns nil for event types this service does not act on.
func eventFromEventsAPI(apiEvent *slackevents.EventsAPIEvent) *reaction.Event {
	switch data := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.ReactionAddedEvent:
		return reaction.NewEventFromAdded(data)
	case *slackevents.ReactionRemovedEvent:
		return reaction.NewEventFromRemoved(data)
	default:
		return nil
	}
}
