package recipevault

import (
	"log/slog"
	"net/http"

	"github.com/wenhuei/recipevault/internal/platform"
	"github.com/wenhuei/recipevault/pkg/core"
)

// --- Types ---

// App is the wired application: repository, catalog, containers, auth.
type App = platform.App

// Recipe is a public alias for the domain recipe record.
type Recipe = core.Recipe

// RecipeType is a public alias for the reference type record.
type RecipeType = core.RecipeType

// --- Configuration ---

// Option defines a functional option for configuring the app.
type Option = platform.Option

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom persistent store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithTypesFile overrides the embedded recipe type resource with an external JSON file.
func WithTypesFile(path string) Option {
	return platform.WithTypesFile(path)
}

// WithSessionFile overrides the session marker location.
func WithSessionFile(path string) Option {
	return platform.WithSessionFile(path)
}

// WithLoginURL overrides the remote login endpoint.
func WithLoginURL(url string) Option {
	return platform.WithLoginURL(url)
}

// WithHTTPClient injects the HTTP client used for login calls.
func WithHTTPClient(client *http.Client) Option {
	return platform.WithHTTPClient(client)
}

// WithEventBuffer allows specifying the size of the watch broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a new wired App over a vault at the given path.
func New(path string, opts ...Option) (*App, error) {
	return platform.New(path, opts...)
}
