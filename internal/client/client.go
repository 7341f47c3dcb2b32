// Package client is the HTTP client of the traffic API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
)

const defaultTimeout = 30 * time.Second

// Client calls the traffic API with a bearer token.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type Option func(*options)

type options struct {
	base    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// WithHTTPClient sets the client whose transport carries the requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.base = c }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a client for baseURL. A non-empty token is sent as
// "Authorization: Bearer <token>" on every request.
func New(baseURL, token string, opts ...Option) *Client {
	o := options{timeout: defaultTimeout, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := &http.Client{}
	if o.base != nil {
		cp := *o.base
		httpClient = &cp
	}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, src)
	}
	httpClient.Timeout = o.timeout

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  o.logger,
	}
}

// List retrieves every record, newest date first.
func (c *Client) List(ctx context.Context) ([]v1.TrafficRecord, error) {
	var resp v1.ListTrafficResponse
	if err := c.doRequest(ctx, http.MethodGet, "/traffic", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create adds a record.
func (c *Client) Create(ctx context.Context, in v1.TrafficInput) (*v1.TrafficRecord, error) {
	var resp v1.TrafficResponse
	if err := c.doRequest(ctx, http.MethodPost, "/traffic", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update changes the supplied fields of the record with id.
func (c *Client) Update(ctx context.Context, id string, in v1.TrafficInput) (*v1.TrafficRecord, error) {
	var resp v1.TrafficResponse
	path := "/traffic?id=" + url.QueryEscape(id)
	if err := c.doRequest(ctx, http.MethodPut, path, in, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete removes the record with id.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := "/traffic?id=" + url.QueryEscape(id)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}

// Stats retrieves whole-store and in-range statistics.
func (c *Client) Stats(ctx context.Context, rng traffic.Range) (*v1.StatsData, error) {
	var resp v1.StatsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/traffic/stats"+rangeQuery(rng, nil), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Series retrieves the chart points for view within rng.
func (c *Client) Series(ctx context.Context, view traffic.View, rng traffic.Range) ([]v1.AggregatedPoint, error) {
	var resp v1.SeriesResponse
	q := url.Values{}
	if view != "" {
		q.Set("view", string(view))
	}
	if err := c.doRequest(ctx, http.MethodGet, "/traffic/series"+rangeQuery(rng, q), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Reset replaces the server data with its seed set.
func (c *Client) Reset(ctx context.Context) (*v1.ResetSummary, error) {
	var resp v1.ResetResponse
	if err := c.doRequest(ctx, http.MethodPost, "/traffic/reset", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func rangeQuery(rng traffic.Range, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	if rng.From != "" {
		q.Set("from", rng.From)
	}
	if rng.To != "" {
		q.Set("to", rng.To)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	target := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("[Client] API request", "method", method, "url", target)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
		}
		var errBody httperr.ErrorResponse
		if err := json.Unmarshal(respBody, &errBody); err == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
			apiErr.Code = errBody.Code
			apiErr.Details = errBody.Details
		}
		return apiErr
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}
