package chatbot

import (
	"net/http"

	loggerpkg "github.com/minhyannv/medchat-go/pkg/logger"
)

// Option configures optional runtime dependencies for Bot.
type Option func(*botDeps)

type botDeps struct {
	logger     loggerpkg.Logger
	httpClient *http.Client
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *botDeps) {
		d.logger = l
	}
}

// WithHTTPClient replaces the HTTP client used to reach the completion API.
func WithHTTPClient(c *http.Client) Option {
	return func(d *botDeps) {
		d.httpClient = c
	}
}
