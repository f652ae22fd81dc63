// Package catalog provides a client for reading and editing CSW catalogues
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/sirosfoundation/go-csw/pkg/csw"
	"github.com/sirosfoundation/go-csw/pkg/metadata"
	"github.com/sirosfoundation/go-csw/pkg/transport"
)

// ErrNoEndpoint is returned when the client has no catalogue endpoint
var ErrNoEndpoint = errors.New("catalog: endpoint is required")

// Config holds client configuration
type Config struct {
	// Endpoint is the CSW service URL requests are posted to
	Endpoint    string
	HTTPSConfig *transport.HTTPSConfig

	// RequestsPerSecond throttles requests; 0 disables throttling
	RequestsPerSecond float64
	Burst             int

	// MaxRetries is the number of extra attempts for failed reads.
	// Transactions are never retried.
	MaxRetries      int
	InitialBackoff  time.Duration
	BackoffMultiple float64

	Logger *slog.Logger
}

// DefaultConfig returns a configuration for endpoint with default settings
func DefaultConfig(endpoint string) *Config {
	return &Config{
		Endpoint:          endpoint,
		HTTPSConfig:       transport.DefaultHTTPSConfig(),
		RequestsPerSecond: 5,
		Burst:             1,
		MaxRetries:        2,
		InitialBackoff:    500 * time.Millisecond,
		BackoffMultiple:   2.0,
	}
}

// Client talks to one CSW catalogue
type Client struct {
	httpClient      *transport.HTTPSClient
	endpoint        string
	limiter         *rate.Limiter
	maxRetries      int
	initialBackoff  time.Duration
	backoffMultiple float64
	logger          *slog.Logger
}

// NewClient creates a new catalogue client
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	backoffMultiple := cfg.BackoffMultiple
	if backoffMultiple < 1 {
		backoffMultiple = 1
	}

	return &Client{
		httpClient:      transport.NewHTTPSClient(cfg.HTTPSConfig),
		endpoint:        cfg.Endpoint,
		limiter:         limiter,
		maxRetries:      cfg.MaxRetries,
		initialBackoff:  cfg.InitialBackoff,
		backoffMultiple: backoffMultiple,
		logger:          logger.With(slog.String("endpoint", cfg.Endpoint)),
	}, nil
}

// Capabilities fetches the catalogue's GetCapabilities document
func (c *Client) Capabilities(ctx context.Context) (*csw.Capabilities, error) {
	capsURL, err := csw.CapabilitiesURL(c.endpoint)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Get(ctx, capsURL)
	if err != nil {
		return nil, err
	}
	return csw.ParseCapabilities(resp)
}

// Search runs a GetRecords request
func (c *Client) Search(ctx context.Context, req *csw.SearchRequest) (*csw.SearchResults, error) {
	body, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.read(ctx, "GetRecords", body)
	if err != nil {
		return nil, err
	}

	results, err := csw.ParseSearchResponse(resp)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("search completed",
		slog.Int("matched", results.NumberOfRecordsMatched),
		slog.Int("returned", results.NumberOfRecordsReturned))
	return results, nil
}

// SearchFreeText searches AnyText for every token of text
func (c *Client) SearchFreeText(ctx context.Context, text string, opts ...csw.SearchOption) (*csw.SearchResults, error) {
	return c.Search(ctx, csw.SearchFreeText(text, opts...))
}

// GetRecordByID fetches one record as an ISO document
func (c *Client) GetRecordByID(ctx context.Context, id string) (*metadata.Document, error) {
	req, err := csw.NewGetRecordByID(id)
	if err != nil {
		return nil, err
	}
	body, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("building record request: %w", err)
	}

	resp, err := c.read(ctx, "GetRecordById", body)
	if err != nil {
		return nil, err
	}
	doc, err := csw.ParseRecordByIDResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", id, err)
	}
	return doc, nil
}

// Insert adds doc to the catalogue
func (c *Client) Insert(ctx context.Context, doc *metadata.Document) (*csw.TransactionResult, error) {
	tx, err := csw.NewInsert(doc)
	if err != nil {
		return nil, err
	}
	return c.Transact(ctx, tx)
}

// Update replaces the catalogue record with doc's file identifier
func (c *Client) Update(ctx context.Context, doc *metadata.Document) (*csw.TransactionResult, error) {
	tx, err := csw.NewUpdate(doc)
	if err != nil {
		return nil, err
	}
	return c.Transact(ctx, tx)
}

// Delete removes the record with identifier id
func (c *Client) Delete(ctx context.Context, id string) (*csw.TransactionResult, error) {
	tx, err := csw.NewDelete(id)
	if err != nil {
		return nil, err
	}
	return c.Transact(ctx, tx)
}

// Transact sends a transaction once and parses its response
func (c *Client) Transact(ctx context.Context, tx *csw.Transaction) (*csw.TransactionResult, error) {
	body, err := tx.Marshal()
	if err != nil {
		return nil, fmt.Errorf("building transaction: %w", err)
	}

	log := c.logger.With(slog.String("action", tx.Kind.String()))
	resp, err := c.post(ctx, body)
	if err != nil {
		log.Error("transaction failed", slog.String("error", err.Error()))
		return nil, err
	}

	result, err := csw.ParseTransactionResponse(resp)
	if err != nil {
		return nil, err
	}
	log.Info("transaction completed",
		slog.String("inserted", result.TotalInserted),
		slog.String("updated", result.TotalUpdated),
		slog.String("deleted", result.TotalDeleted))
	return result, nil
}

// read posts an idempotent request, retrying transient failures with
// exponential backoff.
func (c *Client) read(ctx context.Context, operation string, body []byte) ([]byte, error) {
	backoff := c.initialBackoff
	for attempt := 0; ; attempt++ {
		resp, err := c.post(ctx, body)
		if err == nil || attempt >= c.maxRetries || !retryable(err) {
			return resp, err
		}

		c.logger.Warn("request failed, retrying",
			slog.String("operation", operation),
			slog.Int("attempt", attempt+1),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = time.Duration(float64(backoff) * c.backoffMultiple)
	}
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint, body, transport.ContentTypeXML)
	if err != nil {
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) {
			if exErr := csw.CheckException([]byte(statusErr.Body)); exErr != nil {
				return nil, exErr
			}
		}
		return nil, err
	}
	if err := csw.CheckException(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// retryable reports whether a failed read may succeed when repeated
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var report *csw.ExceptionReport
	if errors.As(err, &report) {
		return false
	}
	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError || statusErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}
