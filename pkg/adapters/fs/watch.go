package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/wenhuei/recipevault/pkg/core"
)

// debounceWindow coalesces bursts of filesystem events for the same document
// (editors often fire several writes per save).
const debounceWindow = 50 * time.Millisecond

// Watch observes the vault directory and emits an event for every recipe
// document created, modified or deleted, whether by this process or by an
// external editor. The returned channel is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch vault: %w", err)
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(debounceWindow)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer deb.stopAndWait(5 * time.Second)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				s.processEvent(ctx, event, pattern, deb, events)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.config.Logger.Error("fsnotify error", "error", wErr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("watcher failed", "error", err)
	}))

	return events, nil
}

// processEvent handles filtering, mapping and debouncing of a single
// filesystem event.
func (s *Store) processEvent(ctx context.Context, event fsnotify.Event, pattern string, deb *debouncer, events chan<- core.Event) {
	s.config.Logger.Debug("event received", "name", event.Name, "op", event.Op)

	if s.shouldIgnore(event.Name, pattern) {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	id, err := s.resolveID(event.Name)
	if err != nil {
		s.config.Logger.Debug("resolveID failed", "path", event.Name, "err", err)
		return
	}

	deb.add(core.Event{
		Type:      eType,
		ID:        id,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})
}

// shouldIgnore reports whether a path is outside the set of watched recipe
// documents: temp files, dotfiles, foreign extensions, and anything matched
// by the configured ignore globs or excluded by the watch pattern.
func (s *Store) shouldIgnore(path, pattern string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) || strings.HasPrefix(base, ".") {
		return true
	}
	if filepath.Ext(base) != recipeExt {
		return true
	}

	rel, err := filepath.Rel(s.Path, path)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)

	for _, ignore := range s.config.IgnorePatterns {
		if ok, _ := doublestar.Match(ignore, rel); ok {
			return true
		}
	}

	if pattern != "" && pattern != "*" {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil || !ok {
			return true
		}
	}

	return false
}

// mapEventType translates an fsnotify op into a store event type.
// Chmod-only events carry no content change and map to nothing.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// resolveID maps an absolute document path back to its recipe id.
func (s *Store) resolveID(path string) (string, error) {
	rel, err := filepath.Rel(s.Path, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), recipeExt), nil
}
