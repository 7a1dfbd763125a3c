package usecase

import (
	"context"
	"sync"
)

type fetchPage[T any] func(ctx context.Context, page, limit int) ([]T, int, error)

// pager drives page-by-page fetching over a (currentPage, totalPages)
// window. First-page loads and refreshes replace the items wholesale;
// LoadMore appends and only advances the window on success. A single
// in-flight flag makes the operations mutually exclusive: a call that finds
// another one running is a silent no-op, never queued.
//
// There is no cancellation and no request generation: a response superseded
// by a newer one still lands, last write wins. That matches the upstream
// behavior this client reimplements.
type pager[T any] struct {
	fetch    fetchPage[T]
	pageSize int

	mu          sync.Mutex
	items       []T
	currentPage int
	totalPages  int
	status      ListStatus
	lastErr     error
}

func newPager[T any](fetch fetchPage[T], pageSize int) *pager[T] {
	return &pager[T]{
		fetch:       fetch,
		pageSize:    pageSize,
		currentPage: 1,
		totalPages:  1,
	}
}

// LoadFirstPage fetches page 1 and replaces the items. On failure the prior
// items are preserved and the error is recorded and returned.
func (p *pager[T]) LoadFirstPage(ctx context.Context) error {
	return p.loadFirst(ctx, StatusLoading)
}

// Refresh is LoadFirstPage reported under a different status.
func (p *pager[T]) Refresh(ctx context.Context) error {
	return p.loadFirst(ctx, StatusRefreshing)
}

func (p *pager[T]) loadFirst(ctx context.Context, status ListStatus) error {
	if !p.begin(status) {
		return nil
	}
	items, count, err := p.fetch(ctx, 1, p.pageSize)
	return p.finish(items, count, 1, err, false)
}

// LoadMore fetches the next page and appends. It is a no-op while another
// fetch is in flight or when the window is exhausted.
func (p *pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.status != StatusIdle || p.currentPage >= p.totalPages {
		p.mu.Unlock()
		return nil
	}
	page := p.currentPage + 1
	p.status = StatusLoadingMore
	p.mu.Unlock()

	items, count, err := p.fetch(ctx, page, p.pageSize)
	return p.finish(items, count, page, err, true)
}

func (p *pager[T]) begin(status ListStatus) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusIdle {
		return false
	}
	p.status = status
	return true
}

func (p *pager[T]) finish(items []T, count, page int, err error, appendItems bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = StatusIdle
	if err != nil {
		p.lastErr = err
		return err
	}
	p.lastErr = nil

	// A success payload without the list field resets the window instead of
	// erroring; the lenient decode upstream produces exactly this shape.
	if items == nil {
		p.items = nil
		p.currentPage = 1
		p.totalPages = 1
		return nil
	}

	if appendItems {
		p.items = append(p.items, items...)
	} else {
		p.items = items
	}
	p.currentPage = page
	p.totalPages = ceilDiv(count, p.pageSize)
	return nil
}

func (p *pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items
}

func (p *pager[T]) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

func (p *pager[T]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

func (p *pager[T]) Status() ListStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *pager[T]) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// remove drops every item matching the predicate from the local window.
func (p *pager[T]) remove(match func(T) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.items[:0]
	for _, item := range p.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	p.items = kept
}

func ceilDiv(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
