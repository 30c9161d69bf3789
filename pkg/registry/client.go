package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

const collectionPath = "/vehicles"

// Client talks to the remote vehicle record store. It is safe for concurrent
// use; every request carries a fresh X-Request-ID for log correlation.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Useful for tests and for
// callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a store client from the given config.
func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// All fetches the full record set in the store's natural order.
func (c *Client) All(ctx context.Context) ([]vehicle.Record, error) {
	var records []vehicle.Record
	if err := c.do(ctx, http.MethodGet, collectionPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Find fetches a single record by id. The store answers the by-id query with
// a zero-or-one-element array; an empty array or a 404 both mean the record
// does not exist.
func (c *Client) Find(ctx context.Context, id vehicle.ID) (*vehicle.Record, error) {
	var records []vehicle.Record
	err := c.do(ctx, http.MethodGet, collectionPath+"/"+url.PathEscape(id.String()), nil, &records)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0], nil
}

// Create submits a new record. The id must be unset; the store assigns one
// and the returned record carries it.
func (c *Client) Create(ctx context.Context, rec vehicle.Record) (*vehicle.Record, error) {
	rec.ID = ""
	var created vehicle.Record
	if err := c.do(ctx, http.MethodPost, collectionPath, rec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the stored record under id with the full body of rec.
func (c *Client) Update(ctx context.Context, id vehicle.ID, rec vehicle.Record) (*vehicle.Record, error) {
	var updated vehicle.Record
	err := c.do(ctx, http.MethodPut, collectionPath+"/"+url.PathEscape(id.String()), rec, &updated)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record under id. Deleting a record that no longer
// exists is a success: the store's answer to a missing id is its own
// business, and the outcome the caller asked for holds either way.
func (c *Client) Delete(ctx context.Context, id vehicle.ID) error {
	err := c.do(ctx, http.MethodDelete, collectionPath+"/"+url.PathEscape(id.String()), nil, nil)
	if err != nil && statusOf(err) != http.StatusNotFound {
		return err
	}
	return nil
}

// do performs one request/response round trip. out, when non-nil, receives
// the decoded JSON body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "vehicle store request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &statusError{status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Join(ErrDecodeResponse, err)
		}
	}
	return nil
}

// statusError carries the HTTP status of a failed call while still matching
// ErrUnexpectedStatus via errors.Is.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("vehicle store returned unexpected status %d", e.status)
}

func (e *statusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// statusOf extracts the HTTP status from an error chain, or 0.
func statusOf(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	return 0
}
