package reaction

import "github.com/secmon-lab/slacktable/pkg/domain/types"

// Action is what a classified reaction asks the pipeline to do
type Action int

const (
	// ActionIgnore means the reaction does not trigger record creation
	ActionIgnore Action = iota
	// ActionLegacy tags the message without a severity level
	ActionLegacy
	// ActionSeverity tags the message with a severity level
	ActionSeverity
)

// Classification is the result of classifying a reaction event. The zero
// value is Ignored.
type Classification struct {
	action   Action
	severity types.Severity
}

// Ignored reports whether the reaction should be dropped without any
// network call
func (c Classification) Ignored() bool {
	return c.action == ActionIgnore
}

// Legacy reports whether the reaction is the legacy untagged classification
func (c Classification) Legacy() bool {
	return c.action == ActionLegacy
}

// Severity returns the severity level and whether one applies
func (c Classification) Severity() (types.Severity, bool) {
	if c.action != ActionSeverity {
		return "", false
	}
	return c.severity, true
}

// emojiActions is the fixed emoji vocabulary. Anything outside this table
// classifies as Ignored.
var emojiActions = map[string]Classification{
	"fedex": {action: ActionLegacy},
	"one":   {action: ActionSeverity, severity: types.SeveritySmall},
	"two":   {action: ActionSeverity, severity: types.SeverityMedium},
	"three": {action: ActionSeverity, severity: types.SeverityLarge},
}

// Classify maps a reaction event to an action. It is a pure function of
// the reaction metadata so irrelevant reactions short-circuit before any
// network call. Reaction removals and the bot's own reactions never
// trigger record creation.
func Classify(ev *Event, botUserID string) Classification {
	if ev == nil || ev.removed {
		return Classification{}
	}
	if botUserID != "" && ev.userID == botUserID {
		return Classification{}
	}
	return emojiActions[ev.emoji]
}
