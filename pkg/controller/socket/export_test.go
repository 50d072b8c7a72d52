package socket

import (
	"context"

	"github.com/slack-go/slack/socketmode"
)

var EventFromEventsAPI = eventFromEventsAPI

// HandleEvent drives the envelope switch directly for testing
func (l *Listener) HandleEvent(ctx context.Context, evt socketmode.Event) {
	l.handleEvent(ctx, evt)
}

// WaitInflight exposes the shutdown drain for testing
func (l *Listener) WaitInflight(ctx context.Context) {
	l.waitInflight(ctx)
}
