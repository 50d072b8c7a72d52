package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	airtablesvc "github.com/secmon-lab/slacktable/pkg/service/airtable"
	"github.com/urfave/cli/v3"
)

// Airtable holds configuration for the record sink
type Airtable struct {
	apiToken  string
	baseID    string
	tableName string
	textField string
}

// Flags returns CLI flags for Airtable configuration
func (x *Airtable) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "airtable-api-token",
			Usage:       "Airtable personal access token",
			Category:    "Airtable",
			Destination: &x.apiToken,
			Sources:     cli.EnvVars("SLACKTABLE_AIRTABLE_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "airtable-base-id",
			Usage:       "Airtable base ID (app...)",
			Category:    "Airtable",
			Destination: &x.baseID,
			Sources:     cli.EnvVars("SLACKTABLE_AIRTABLE_BASE_ID"),
		},
		&cli.StringFlag{
			Name:        "airtable-table-name",
			Usage:       "Airtable table name records are created in",
			Category:    "Airtable",
			Destination: &x.tableName,
			Sources:     cli.EnvVars("SLACKTABLE_AIRTABLE_TABLE_NAME"),
		},
		&cli.StringFlag{
			Name:        "airtable-text-field",
			Usage:       "Field name the message text is written to",
			Category:    "Airtable",
			Destination: &x.textField,
			Sources:     cli.EnvVars("SLACKTABLE_AIRTABLE_TEXT_FIELD"),
		},
	}
}

// LogValue returns log attributes for the Airtable configuration. The API
// token is never logged.
func (x Airtable) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("api-token.len", len(x.apiToken)),
		slog.String("base-id", x.baseID),
		slog.String("table-name", x.tableName),
		slog.String("text-field", x.textField),
	)
}

// TextField returns the configured text field name
func (x *Airtable) TextField() string {
	return x.textField
}

// Validate checks that all Airtable settings are present
func (x *Airtable) Validate() error {
	if x.apiToken == "" {
		return goerr.New("--airtable-api-token is required")
	}
	if x.baseID == "" {
		return goerr.New("--airtable-base-id is required")
	}
	if x.tableName == "" {
		return goerr.New("--airtable-table-name is required")
	}
	if x.textField == "" {
		return goerr.New("--airtable-text-field is required")
	}
	return nil
}

// Configure creates the Airtable service from the configured flags
func (x *Airtable) Configure() (airtablesvc.Service, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return airtablesvc.New(x.apiToken, x.baseID, x.tableName)
}
