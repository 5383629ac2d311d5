package listview

import (
	"context"

	"gradpath/cmd/web/contentclient"
)

// Session is a mounted view with its item type erased, so views of different
// resources can share a registry and a set of HTTP handlers.
type Session interface {
	Advance() bool
	Retreat() bool
	JumpTo(page int) bool
	Reload(ctx context.Context) error
	// Snapshot returns the current State[T] as an any.
	Snapshot() any
	TotalPages() int
	Unavailable() bool
	// Err is the reason the last fetch failed, nil after a successful one.
	Err() error
	Unmount()
}

// Loader fetches a collection for the given filters.
type Loader[T any] func(ctx context.Context, query map[string]string) contentclient.Result[T]

// Factory builds and mounts a Session for one listing request.
type Factory func(ctx context.Context, query map[string]string) (Session, error)

// NewFactory returns a Factory that mounts a View[T] over load with limit items per page.
func NewFactory[T any](load Loader[T], limit int, opts ...Option) Factory {
	return func(ctx context.Context, query map[string]string) (Session, error) {
		v, err := New(func(ctx context.Context) contentclient.Result[T] {
			return load(ctx, query)
		}, limit, opts...)
		if err != nil {
			return nil, err
		}
		if _, err := v.Mount(ctx); err != nil {
			return nil, err
		}
		return session[T]{v}, nil
	}
}

type session[T any] struct {
	*View[T]
}

func (s session[T]) Reload(ctx context.Context) error {
	_, err := s.View.Reload(ctx)
	return err
}

func (s session[T]) Snapshot() any { return s.View.State() }

func (s session[T]) TotalPages() int { return s.View.State().Page.TotalPages }

func (s session[T]) Unavailable() bool { return s.View.State().Unavailable }

func (s session[T]) Err() error { return s.View.State().Err }
