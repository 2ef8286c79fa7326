package platform

import (
	"log/slog"
	"net/http"

	"github.com/wenhuei/recipevault/pkg/auth"
	"github.com/wenhuei/recipevault/pkg/core"
)

// SystemDir is the hidden directory inside the vault for app-owned state
// (session marker). The store watcher ignores it.
const SystemDir = ".recipevault"

// options holds the internal configuration for the app.
type options struct {
	store       core.Store
	logger      *slog.Logger
	mustExist   bool
	typesFile   string
	sessionFile string
	loginURL    string
	httpClient  *http.Client
	eventBuffer int
}

// Option defines a functional option for configuring the app.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		loginURL: auth.DefaultLoginURL,
	}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom persistent store (e.g. mock, SQL).
// If provided, the default filesystem store is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithTypesFile overrides the embedded recipe type resource with an external
// JSON file.
func WithTypesFile(path string) Option {
	return func(o *options) {
		o.typesFile = path
	}
}

// WithSessionFile overrides the session marker location.
// Defaults to <vault>/.recipevault/session.json.
func WithSessionFile(path string) Option {
	return func(o *options) {
		o.sessionFile = path
	}
}

// WithLoginURL overrides the remote login endpoint.
func WithLoginURL(url string) Option {
	return func(o *options) {
		o.loginURL = url
	}
}

// WithHTTPClient injects the HTTP client used for login calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithEventBuffer allows specifying the size of the watch broker buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
