package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures across the event pipeline. The tag decides
// the handling policy: not_found aborts without retry, transient is
// eligible for bounded retry at the call site, and configuration means the
// deployment is wrong and every subsequent event will fail identically.
var (
	TagNotFound      = goerr.NewTag("not_found")
	TagTransient     = goerr.NewTag("transient")
	TagConfiguration = goerr.NewTag("configuration")
)

// IsNotFound reports whether the error indicates the referenced resource
// no longer exists
func IsNotFound(err error) bool {
	return goerr.HasTag(err, TagNotFound)
}

// IsTransient reports whether the error is eligible for retry
func IsTransient(err error) bool {
	return goerr.HasTag(err, TagTransient)
}

// IsConfiguration reports whether the error indicates a deployment
// misconfiguration rather than a bad event
func IsConfiguration(err error) bool {
	return goerr.HasTag(err, TagConfiguration)
}
