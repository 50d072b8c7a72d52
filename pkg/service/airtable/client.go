package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slacktable/pkg/domain/model/record"
	"github.com/secmon-lab/slacktable/pkg/domain/types"
)

const (
	defaultBaseURL = "https://api.airtable.com/v0"

	// defaultMaxAttempts is the total attempt ceiling per record,
	// including the first try
	defaultMaxAttempts = 3
	// defaultBackoffBase is the wait before the first retry; it doubles
	// per attempt
	defaultBackoffBase = 500 * time.Millisecond

	// maxErrorBody bounds how much of an error response is attached to
	// the returned error
	maxErrorBody = 4 << 10
)

// client implements Service interface
type client struct {
	token     string
	baseID    string
	tableName string

	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	backoffBase time.Duration
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL replaces the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithMaxAttempts sets the total attempt ceiling per record
func WithMaxAttempts(n int) Option {
	return func(c *client) {
		c.maxAttempts = n
	}
}

// WithBackoffBase sets the wait before the first retry
func WithBackoffBase(d time.Duration) Option {
	return func(c *client) {
		c.backoffBase = d
	}
}

// New creates a new Airtable service for one base and table
func New(token, baseID, tableName string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Airtable API token is required", goerr.T(types.TagConfiguration))
	}
	if baseID == "" {
		return nil, goerr.New("Airtable base ID is required", goerr.T(types.TagConfiguration))
	}
	if tableName == "" {
		return nil, goerr.New("Airtable table name is required", goerr.T(types.TagConfiguration))
	}

	c := &client{
		token:       token,
		baseID:      baseID,
		tableName:   tableName,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		maxAttempts: defaultMaxAttempts,
		backoffBase: defaultBackoffBase,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type createRequest struct {
	Fields map[string]any `json:"fields"`
}

type createResponse struct {
	ID string `json:"id"`
}

// CreateRecord creates a single record with bounded retry
func (c *client) CreateRecord(ctx context.Context, rec *record.Record) (string, error) {
	body, err := json.Marshal(createRequest{Fields: rec.Fields()})
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal record")
	}

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			wait := c.backoffBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", goerr.Wrap(ctx.Err(), "record creation canceled")
			case <-time.After(wait):
			}
		}

		id, err := c.postRecord(ctx, body)
		if err == nil {
			return id, nil
		}
		if !types.IsTransient(err) {
			return "", err
		}
		lastErr = err
	}

	return "", goerr.Wrap(lastErr, "record creation failed after retries",
		goerr.V("attempts", c.maxAttempts),
		goerr.V("table", c.tableName),
	)
}

// postRecord performs one create-record call and classifies the outcome
func (c *client) postRecord(ctx context.Context, body []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(c.tableName))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "airtable request failed", goerr.T(types.TagTransient))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// A 200 body echoes the full created record, including the message
	// text, so it has no size bound; decode it streaming. Only error
	// bodies go through the excerpt limit.
	if resp.StatusCode == http.StatusOK {
		var created createResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return "", goerr.Wrap(err, "failed to parse airtable response")
		}
		return created.ID, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return "", goerr.Wrap(err, "failed to read airtable response", goerr.T(types.TagTransient))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", goerr.New("airtable returned retryable status",
			goerr.T(types.TagTransient),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(data)),
		)

	default:
		// 401/403/404/422: the credential, base, table or field names do
		// not match the deployment; every record will fail identically
		// until an operator fixes the configuration
		return "", goerr.New("airtable rejected the record",
			goerr.T(types.TagConfiguration),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(data)),
		)
	}
}
