package types

import "fmt"

// Severity represents the severity level assigned by a numbered reaction
type Severity string

const (
	SeveritySmall  Severity = "small"
	SeverityMedium Severity = "medium"
	SeverityLarge  Severity = "large"
)

// AllSeverities returns all valid severity levels
func AllSeverities() []Severity {
	return []Severity{
		SeveritySmall,
		SeverityMedium,
		SeverityLarge,
	}
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySmall,
		SeverityMedium,
		SeverityLarge:
		return true
	default:
		return false
	}
}

// Code returns the short code stored in the outbound record's severity field
func (s Severity) Code() string {
	switch s {
	case SeveritySmall:
		return "sm"
	case SeverityMedium:
		return "md"
	case SeverityLarge:
		return "lg"
	default:
		return ""
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return sev, nil
}
