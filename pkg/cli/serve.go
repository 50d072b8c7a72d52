package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/slacktable/pkg/cli/config"
	httpctrl "github.com/secmon-lab/slacktable/pkg/controller/http"
	"github.com/secmon-lab/slacktable/pkg/controller/socket"
	"github.com/secmon-lab/slacktable/pkg/usecase"
	"github.com/secmon-lab/slacktable/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var fieldsPath string
	var dedupeTTL time.Duration
	var slackCfg config.Slack
	var airtableCfg config.Airtable
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Address of the health endpoint",
			Value:       ":8080",
			Sources:     cli.EnvVars("SLACKTABLE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "fields-config",
			Usage:       "Optional TOML file overriding record field names",
			Sources:     cli.EnvVars("SLACKTABLE_FIELDS_CONFIG"),
			Destination: &fieldsPath,
		},
		&cli.DurationFlag{
			Name:        "dedupe-ttl",
			Usage:       "How long repeated reactions on the same message are suppressed",
			Value:       usecase.DefaultDedupeTTL,
			Sources:     cli.EnvVars("SLACKTABLE_DEDUPE_TTL"),
			Destination: &dedupeTTL,
		},
	}

	// Add shared config flags
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, airtableCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Connect to Slack with Socket Mode and forward tagged messages",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sentryCloser, err := sentryCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Sentry")
			}
			defer sentryCloser()

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize slack service")
			}

			// Validates the bot credential before the event loop starts;
			// the ID is also what filters out the bot's own reactions
			botUserID, err := slackSvc.BotUserID(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to verify Slack credential")
			}

			airtableSvc, err := airtableCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize airtable service")
			}

			fields, err := config.LoadFieldsConfiguration(fieldsPath, airtableCfg.TextField())
			if err != nil {
				return goerr.Wrap(err, "failed to load record field configuration")
			}

			uc := usecase.New(slackSvc, airtableSvc, fields, botUserID,
				usecase.WithDedupeTTL(dedupeTTL),
			)

			listener, err := socket.New(slackCfg.BotToken(), slackCfg.AppToken(), uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create socket mode listener")
			}

			healthServer := httpctrl.New(addr)

			logging.Default().Info("Starting slacktable serve",
				"slack", slackCfg,
				"airtable", airtableCfg,
				"sentry", sentryCfg,
				"bot_user_id", botUserID,
				"addr", addr,
				"dedupe_ttl", dedupeTTL,
			)

			// Shutdown signal cancels the shared context; in-flight events
			// finish their current call and then abort
			ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				return listener.Run(ctx)
			})

			eg.Go(func() error {
				logging.Default().Info("Starting health endpoint", "addr", addr)
				if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start health endpoint")
				}
				return nil
			})

			eg.Go(func() error {
				<-ctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := healthServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown health endpoint gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			logging.Default().Info("Shutdown completed")
			return nil
		},
	}
}
