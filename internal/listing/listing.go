// ABOUTME: Pagination and load-state contract shared by every list view
// ABOUTME: A generation counter lets only the newest request update the list

package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/balungpisah/balungpisah-admin/internal/client"
)

// State is where a list is in its load lifecycle
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Empty
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Empty:
		return "empty"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Request is the parameter snapshot a single fetch was issued with
type Request[F any] struct {
	Generation uint64
	Page       int
	PageSize   int
	Filter     F
}

// View is an immutable snapshot of a list for rendering
type View[T any] struct {
	State      State
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Err        error
}

// FetchFunc performs the request described by req
type FetchFunc[F, T any] func(ctx context.Context, req Request[F]) (*client.Envelope[[]T], error)

// List is the state of one paginated view
type List[F, T any] struct {
	mu         sync.Mutex
	page       int
	pageSize   int
	filter     F
	generation uint64
	state      State
	items      []T
	total      int
	totalPages int
	err        error
}

// New creates a list on page 1 with a fixed page size
func New[F, T any](pageSize int, filter F) *List[F, T] {
	if pageSize < 1 {
		pageSize = 10
	}
	return &List[F, T]{page: 1, pageSize: pageSize, filter: filter}
}

// NewUnpaged creates a list for collections the backend returns whole. Its
// requests carry a zero page size and Apply keeps every item.
func NewUnpaged[F, T any](filter F) *List[F, T] {
	return &List[F, T]{page: 1, filter: filter}
}

// Unpaged reports whether the list was created with NewUnpaged
func (l *List[F, T]) Unpaged() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pageSize == 0
}

// Filter returns the current filter
func (l *List[F, T]) Filter() F {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// SetFilter replaces the filter and returns to the first page
func (l *List[F, T]) SetFilter(f F) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f
	l.page = 1
}

// Page returns the current 1-indexed page
func (l *List[F, T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// SetPage moves to page p, never below 1
func (l *List[F, T]) SetPage(p int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = max(p, 1)
}

// NextPage advances one page unless already on the last. It reports
// whether the page changed.
func (l *List[F, T]) NextPage() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page >= max(l.totalPages, 1) {
		return false
	}
	l.page++
	return true
}

// PrevPage goes back one page unless already on the first. It reports
// whether the page changed.
func (l *List[F, T]) PrevPage() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page <= 1 {
		return false
	}
	l.page--
	return true
}

// Begin starts a load with the current parameters. Items from the previous
// load stay visible until Apply replaces them.
func (l *List[F, T]) Begin() Request[F] {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.state = Loading
	l.err = nil
	return Request[F]{
		Generation: l.generation,
		Page:       l.page,
		PageSize:   l.pageSize,
		Filter:     l.filter,
	}
}

// Apply records the outcome of req. Responses to superseded requests and
// expired sessions leave the list untouched and return false.
func (l *List[F, T]) Apply(req Request[F], env *client.Envelope[[]T], err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Generation != l.generation {
		return false
	}
	if errors.Is(err, client.ErrUnauthorized) {
		return false
	}

	if err != nil {
		l.state = Errored
		l.err = err
		l.items = nil
		l.total = 0
		l.totalPages = 0
		return true
	}

	items, ok := env.Value()
	if !ok || len(items) == 0 {
		l.state = Empty
		l.items = nil
		l.total = 0
		l.totalPages = 0
		return true
	}

	if l.pageSize > 0 && len(items) > l.pageSize {
		items = items[:l.pageSize]
	}
	l.state = Loaded
	l.items = items
	l.total = 0
	l.totalPages = 1
	if env.Meta != nil {
		l.total = env.Meta.Total
		if env.Meta.TotalPages > 0 {
			l.totalPages = env.Meta.TotalPages
		}
	}
	return true
}

// Load runs Begin, fetch and Apply in sequence for synchronous callers. The
// fetch error is returned so callers can tell transport failures apart.
func (l *List[F, T]) Load(ctx context.Context, fetch FetchFunc[F, T]) (View[T], error) {
	req := l.Begin()
	env, err := fetch(ctx, req)
	l.Apply(req, env, err)
	return l.View(), err
}

// View returns a snapshot of the current state
func (l *List[F, T]) View() View[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return View[T]{
		State:      l.state,
		Items:      items,
		Page:       l.page,
		PageSize:   l.pageSize,
		Total:      l.total,
		TotalPages: l.totalPages,
		Err:        l.err,
	}
}

// HasPrev reports whether a previous page exists
func (v View[T]) HasPrev() bool {
	return v.Page > 1
}

// HasNext reports whether a following page exists
func (v View[T]) HasNext() bool {
	return v.Page < v.TotalPages
}
