package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrMissingFieldName   = goerr.New("field name is required")
	ErrDuplicateFieldName = goerr.New("duplicate field name")
	ErrTooManyScreenshots = goerr.New("too many screenshot fields")
)
