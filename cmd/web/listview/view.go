// Package listview drives one paginated listing: it loads a collection once per mount,
// tracks the current page and recomputes the visible slice on every navigation.
package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gradpath/cmd/web/contentclient"
	"gradpath/pagination"
)

// ErrUnmounted is returned when a view is used after Unmount, or when a fetch
// finished after the view was unmounted or mounted again.
var ErrUnmounted = errors.New("listview: view is unmounted")

// ErrSourcePanic wraps a panic raised by a Source. The fetch counts as failed.
var ErrSourcePanic = errors.New("listview: source panicked")

// Source loads the full collection backing a view.
type Source[T any] func(ctx context.Context) contentclient.Result[T]

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusReady     Status = "ready"
	StatusUnmounted Status = "unmounted"
)

// State is a copy of what a view currently shows.
type State[T any] struct {
	Status Status               `json:"status"`
	Page   pagination.Result[T] `json:"page"`
	// Unavailable is set when the last fetch failed rather than returned zero items.
	Unavailable bool  `json:"unavailable"`
	Err         error `json:"-"`
}

type options struct {
	siblings int
}

type Option func(*options)

// WithSiblings sets how many pages around the current one the controls show.
func WithSiblings(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.siblings = n
		}
	}
}

type View[T any] struct {
	mu       sync.Mutex
	source   Source[T]
	limit    int
	siblings int

	status      Status
	items       []T
	page        int
	result      pagination.Result[T]
	unavailable bool
	err         error

	// gen identifies the latest mount; a fetch result is applied only if gen still matches
	gen    uint64
	cancel context.CancelFunc
}

// New returns an idle view over source showing limit items per page.
func New[T any](source Source[T], limit int, opts ...Option) (*View[T], error) {
	if limit <= 0 || source == nil {
		return nil, pagination.ErrInvalidConfiguration
	}
	o := options{siblings: pagination.DefaultSiblings}
	for _, opt := range opts {
		opt(&o)
	}
	return &View[T]{
		source:   source,
		limit:    limit,
		siblings: o.siblings,
		status:   StatusIdle,
		page:     1,
	}, nil
}

// Mount fetches the collection once and shows page 1.
func (v *View[T]) Mount(ctx context.Context) (State[T], error) {
	return v.load(ctx, false)
}

// Reload fetches the collection again and keeps the current page, clamped to the new page count.
func (v *View[T]) Reload(ctx context.Context) (State[T], error) {
	return v.load(ctx, true)
}

func (v *View[T]) load(ctx context.Context, keepPage bool) (State[T], error) {
	v.mu.Lock()
	if v.status == StatusUnmounted {
		st := v.stateLocked()
		v.mu.Unlock()
		return st, ErrUnmounted
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.status = StatusLoading
	v.mu.Unlock()

	res := v.fetch(fetchCtx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status == StatusUnmounted || v.gen != gen {
		cancel()
		return v.stateLocked(), ErrUnmounted
	}
	v.cancel = nil
	cancel()

	v.items = res.Data
	if v.items == nil {
		v.items = []T{}
	}
	v.unavailable = res.Failed()
	v.err = res.Err
	if !keepPage {
		v.page = 1
	}
	v.recomputeLocked()
	v.status = StatusReady
	return v.stateLocked(), nil
}

// fetch calls the source, turning a panic into a failed result so the view never stays loading.
func (v *View[T]) fetch(ctx context.Context) (res contentclient.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = contentclient.Result[T]{Data: []T{}, Err: fmt.Errorf("%w: %v", ErrSourcePanic, r)}
		}
	}()
	return v.source(ctx)
}

// Advance moves to the next page. It returns false and changes nothing on the last page.
func (v *View[T]) Advance() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.jumpLocked(v.page + 1)
}

// Retreat moves to the previous page. It returns false and changes nothing on the first page.
func (v *View[T]) Retreat() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.jumpLocked(v.page - 1)
}

// JumpTo shows page. Pages outside [1, TotalPages] are ignored.
func (v *View[T]) JumpTo(page int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.jumpLocked(page)
}

func (v *View[T]) jumpLocked(page int) bool {
	if v.status != StatusReady || !pagination.InRange(page, v.result.TotalPages) {
		return false
	}
	v.page = page
	v.recomputeLocked()
	return true
}

func (v *View[T]) recomputeLocked() {
	// limit was validated by New, so Paginate cannot fail here
	res, _ := pagination.Paginate(v.items, v.limit, v.page, pagination.WithSiblings(v.siblings))
	v.result = res
	if res.Page > 0 {
		v.page = res.Page
	} else {
		v.page = 1
	}
}

// State returns what the view currently shows.
func (v *View[T]) State() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stateLocked()
}

func (v *View[T]) stateLocked() State[T] {
	return State[T]{
		Status:      v.status,
		Page:        v.result,
		Unavailable: v.unavailable,
		Err:         v.err,
	}
}

// Unmount cancels an in-flight fetch and drops the snapshot. The view cannot be mounted again.
func (v *View[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.status = StatusUnmounted
	v.items = nil
	v.result = pagination.Result[T]{}
}
