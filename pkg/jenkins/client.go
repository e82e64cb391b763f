// Package jenkins provides a typed client for the Jenkins REST API.
package jenkins

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jackwhich/jenkins_api/pkg/jenkins/path"
)

// Client manages communication with the Jenkins API. It holds no mutable
// state beyond the underlying HTTP client and is safe for concurrent use.
type Client struct {
	endpoint string
	username string
	password string
	depth    int
	csrf     bool
	client   *http.Client
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the base URL of the Jenkins instance. A trailing
// slash is dropped.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// WithUsername sets the username used for basic auth.
func WithUsername(username string) Option {
	return func(c *Client) {
		c.username = username
	}
}

// WithPassword sets the password or API token used for basic auth.
func WithPassword(password string) Option {
	return func(c *Client) {
		c.password = password
	}
}

// WithTimeout sets the request timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithDepth changes the default depth parameter sent on GET requests. It
// controls how much data the server expands into responses.
func WithDepth(depth int) Option {
	return func(c *Client) {
		c.depth = depth
	}
}

// WithoutCSRF disables fetching a crumb before POST requests, for servers
// running with CSRF protection turned off.
func WithoutCSRF() Option {
	return func(c *Client) {
		c.csrf = false
	}
}

// WithLogger sets the logger used for request debugging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient returns a new Jenkins API client.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		depth:  1,
		csrf:   true,
		client: &http.Client{},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	parsed, err := url.Parse(c.endpoint)

	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid endpoint: missing scheme or host in %q", c.endpoint)
	}

	return c, nil
}

// Endpoint returns the configured base URL without trailing slash.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// urlToPath maps a URL embedded in a server payload back to a structured
// path, stripping the configured endpoint prefix when present.
func (c *Client) urlToPath(rawURL string) (path.Path, error) {
	return path.Parse(c.endpoint, rawURL)
}
