// Package lifecycle bridges the typed store event channel to the generic
// lifecycle event interface, so vault changes can feed any lifecycle-aware
// consumer.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/wenhuei/recipevault/pkg/core"
)

type storeSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits vault change events.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &storeSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storeSource) Start(ctx context.Context) error {
	// core.Event implements lifecycle.Event via String(); the bridge
	// goroutine itself runs under lifecycle.Go so it is tracked.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
