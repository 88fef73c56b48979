// Package app implements the glotta CLI commands on top of the
// translator client.
package app

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/glotta-io/glotta/internal/config"
	"github.com/glotta-io/glotta/translator"
)

// Deps carries what every command needs: a configured API client, the
// process logger, and the stream for user-facing output.
type Deps struct {
	Client *translator.Client
	Log    zerolog.Logger
	Out    io.Writer
}

// NewDeps builds command dependencies from the loaded configuration.
func NewDeps(cfg *config.Config, log zerolog.Logger, httpClient *http.Client) (*Deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []translator.Option{translator.WithLogger(log)}
	if cfg.ServerURL != "" {
		opts = append(opts, translator.WithServerURL(cfg.ServerURL))
	}
	if httpClient != nil {
		opts = append(opts, translator.WithHTTPClient(httpClient))
	}

	client, err := translator.New(cfg.AuthKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("build translator client: %w", err)
	}

	return &Deps{
		Client: client,
		Log:    log,
		Out:    os.Stdout,
	}, nil
}
