package airtable

import (
	"context"

	"github.com/secmon-lab/slacktable/pkg/domain/model/record"
)

// Service provides interface to the Airtable records API
type Service interface {
	// CreateRecord creates a single record in the configured table and
	// returns the new record ID. Transient failures (rate limit, 5xx,
	// network) are retried with bounded exponential backoff; schema or
	// credential mismatches surface immediately as configuration errors.
	CreateRecord(ctx context.Context, rec *record.Record) (string, error)
}
