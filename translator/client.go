package translator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultServerURL is the production Glotta API endpoint.
const DefaultServerURL = "https://api.glotta.io"

// Client talks to the Glotta translation API. It holds no per-job state:
// concurrent translations on one client are independent.
type Client struct {
	rest  RestClient
	log   zerolog.Logger
	sleep func(ctx context.Context, d time.Duration) error
}

// Option adjusts client construction.
type Option func(*clientOptions)

type clientOptions struct {
	serverURL  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// WithServerURL overrides the API endpoint, for the sandbox environment or
// a test server.
func WithServerURL(serverURL string) Option {
	return func(o *clientOptions) {
		o.serverURL = serverURL
	}
}

// WithHTTPClient supplies a custom http.Client. It must be safe for
// concurrent use.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithLogger attaches a logger for request-level debug logging. Request
// bodies and document keys are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// New builds a client for the given auth key.
func New(authKey string, opts ...Option) (*Client, error) {
	key := strings.TrimSpace(authKey)
	if key == "" {
		return nil, fmt.Errorf("auth key is required")
	}

	options := clientOptions{
		serverURL: DefaultServerURL,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if strings.TrimSpace(options.serverURL) == "" {
		return nil, fmt.Errorf("server URL is required")
	}

	return &Client{
		rest:  newHTTPRestClient(options.serverURL, key, options.httpClient, options.logger),
		log:   options.logger,
		sleep: sleepContext,
	}, nil
}

// sleepContext waits for the duration or until the context is cancelled,
// whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
