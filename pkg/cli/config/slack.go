package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slacksvc "github.com/secmon-lab/slacktable/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds configuration for the Slack connection
type Slack struct {
	botToken string
	appToken string
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (xoxb-...)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("SLACKTABLE_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-app-token",
			Usage:       "Slack app-level token for Socket Mode (xapp-...)",
			Category:    "Slack",
			Destination: &x.appToken,
			Sources:     cli.EnvVars("SLACKTABLE_SLACK_APP_TOKEN"),
		},
	}
}

// LogValue returns log attributes for the Slack configuration. Token
// values are never logged.
func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.Int("app-token.len", len(x.appToken)),
	)
}

// BotToken returns the Slack bot token
func (x *Slack) BotToken() string {
	return x.botToken
}

// AppToken returns the Slack app-level token
func (x *Slack) AppToken() string {
	return x.appToken
}

// Validate checks that both tokens required for Socket Mode are present
func (x *Slack) Validate() error {
	if x.botToken == "" {
		return goerr.New("--slack-bot-token is required")
	}
	if x.appToken == "" {
		return goerr.New("--slack-app-token is required for Socket Mode")
	}
	return nil
}

// Configure creates the Slack service from the configured flags
func (x *Slack) Configure() (slacksvc.Service, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return slacksvc.New(x.botToken)
}
