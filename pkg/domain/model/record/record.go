package record

import (
	"github.com/secmon-lab/slacktable/pkg/domain/model/reaction"
	slackmodel "github.com/secmon-lab/slacktable/pkg/domain/model/slack"
)

// Default field names of the intake table. The text field has no default:
// it always comes from deployment configuration.
const (
	DefaultStatusField   = "Status"
	DefaultSeverityField = "Pain Score"

	// StatusIntake is the status every new record starts with
	StatusIntake = "Intake"
)

// MaxScreenshots bounds how many image URLs a record carries, matching the
// fixed screenshot columns of the table
const MaxScreenshots = 3

// DefaultScreenshotFields returns the screenshot column names in fill order
func DefaultScreenshotFields() [MaxScreenshots]string {
	return [MaxScreenshots]string{
		"Slack Screenshot",
		"Slack Screenshot 2",
		"Slack Screenshot 3",
	}
}

// Fields is the resolved-at-startup field-name configuration of the
// outbound record
type Fields struct {
	Text        string
	Status      string
	Severity    string
	Screenshots [MaxScreenshots]string
}

// DefaultFields returns the field configuration with the conventional
// column names and the given text field
func DefaultFields(textField string) Fields {
	return Fields{
		Text:        textField,
		Status:      DefaultStatusField,
		Severity:    DefaultSeverityField,
		Screenshots: DefaultScreenshotFields(),
	}
}

// Record is an outbound record for the intake table. It is built once per
// event and not mutated afterwards.
type Record struct {
	fields map[string]any
}

// Build assembles the outbound record from a classification and a resolved
// message. The text field is always set (an image-only message is still
// recorded), the status field is fixed to Intake, the severity field is
// present only for severity classifications, and at most MaxScreenshots
// image URLs are mapped to the screenshot fields in encounter order.
func Build(c reaction.Classification, msg *slackmodel.Message, cfg Fields) *Record {
	fields := map[string]any{
		cfg.Text:   msg.Text(),
		cfg.Status: StatusIntake,
	}

	if sev, ok := c.Severity(); ok {
		fields[cfg.Severity] = sev.Code()
	}

	for i, url := range msg.ImageURLs(MaxScreenshots) {
		fields[cfg.Screenshots[i]] = url
	}

	return &Record{fields: fields}
}

// Fields returns a copy of the field map
func (r *Record) Fields() map[string]any {
	fields := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		fields[k] = v
	}
	return fields
}
