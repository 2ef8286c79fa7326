package platform

import (
	"context"
	"path/filepath"

	"github.com/wenhuei/recipevault/pkg/adapters/fs"
	"github.com/wenhuei/recipevault/pkg/auth"
	"github.com/wenhuei/recipevault/pkg/catalog"
	"github.com/wenhuei/recipevault/pkg/core"
	"github.com/wenhuei/recipevault/pkg/state"
)

// App bundles the wired components. This is the composition root: plain
// constructor wiring at startup, no runtime service locator.
type App struct {
	Repo    *core.Repository
	Catalog *catalog.Catalog
	List    *state.List
	Form    *state.Form
	Auth    *auth.Manager
}

// New wires a complete app over a vault at the given path.
//
//	app, err := recipevault.New("~/.recipevault", recipevault.WithLogger(logger))
func New(path string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		store = fs.NewStore(fs.Config{
			Path:           path,
			MustExist:      o.mustExist,
			Logger:         o.logger,
			IgnorePatterns: []string{SystemDir + "/**"},
		})
	}
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	repo := core.NewRepository(store, core.RepositoryConfig{
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	})

	cat, err := catalog.Load(o.typesFile)
	if err != nil {
		return nil, err
	}

	sessionFile := o.sessionFile
	if sessionFile == "" {
		sessionFile = filepath.Join(path, SystemDir, "session.json")
	}

	client := auth.NewClient(o.loginURL, o.httpClient, o.logger)

	return &App{
		Repo:    repo,
		Catalog: cat,
		List:    state.NewList(repo, o.logger),
		Form:    state.NewForm(repo, cat, o.logger),
		Auth:    auth.NewManager(sessionFile, client, o.logger),
	}, nil
}
