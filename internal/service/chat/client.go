package chat

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	applog "github.com/janisto/chat-ping/internal/platform/logging"
)

const (
	userAgent       = "chat-ping"
	requestIDHeader = "X-Request-Id"
)

// Client implements Service on top of a resty client.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *zap.Logger
	rc         *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the chat endpoint (useful for testing).
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a chat client. Retries stay at resty's default of zero
// and no request timeout is installed.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url: DefaultURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = applog.Logger()
	}
	if c.httpClient != nil {
		c.rc = resty.NewWithClient(c.httpClient)
	} else {
		c.rc = resty.New()
	}
	c.rc.SetLogger(c.logger.Sugar())
	c.rc.SetHeader("User-Agent", userAgent)
	return c
}

// URL reports the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Send posts msg as JSON and returns the raw reply. Any failure, including a
// non-2xx status, is returned as a *TransportError.
func (c *Client) Send(ctx context.Context, msg Message) (*Reply, error) {
	reqID := uuid.NewString()
	logger := c.logger.With(zap.String("url", c.url), zap.String("requestId", reqID))

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(requestIDHeader, reqID).
		SetBody(msg).
		Post(c.url)
	if err != nil {
		logger.Debug("chat request failed", zap.Error(err))
		return nil, &TransportError{URL: c.url, cause: err}
	}

	logger.Debug("chat request completed",
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("duration", resp.Time()),
	)

	if !resp.IsSuccess() {
		return nil, &TransportError{
			URL:    c.url,
			Status: resp.StatusCode(),
			Body:   resp.Body(),
			cause:  fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode()),
		}
	}

	return &Reply{
		Status:   resp.StatusCode(),
		Body:     resp.Body(),
		Duration: resp.Time(),
	}, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
