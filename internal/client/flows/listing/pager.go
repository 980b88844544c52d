// Package listing holds Pager, the paginated list state shared by the group
// and review screens.
package listing

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/observable"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// FetchFunc loads one page.
type FetchFunc[T any] func(ctx context.Context, page, size int) (models.Page[T], error)

// State is a snapshot of the list.
type State[T any] struct {
	Items []T

	// NextPage is the page LoadMore will request.
	NextPage int
	Size     int
	Last     bool
	Total    int64

	IsLoading     bool
	IsMoreLoading bool
	Error         string

	// gen is bumped by Refresh so a LoadMore that started earlier is dropped.
	gen uint64
}

// Pager accumulates pages from a FetchFunc.
type Pager[T any] struct {
	fetch FetchFunc[T]
	state *observable.Value[State[T]]
	log   logging.Logger
}

func NewPager[T any](size int, fetch FetchFunc[T], log logging.Logger) *Pager[T] {
	if size <= 0 {
		size = 10
	}
	return &Pager[T]{
		fetch: fetch,
		state: observable.New(State[T]{Size: size}),
		log:   log,
	}
}

func (p *Pager[T]) State() State[T] { return p.state.Get() }

func (p *Pager[T]) Subscribe(ctx context.Context) <-chan State[T] { return p.state.Subscribe(ctx) }

// SetError shows msg until the next fetch or ClearError.
func (p *Pager[T]) SetError(msg string) {
	p.state.Update(func(s State[T]) State[T] {
		s.Error = msg
		return s
	})
}

func (p *Pager[T]) ClearError() { p.SetError("") }

// Refresh reloads the first page and replaces the list. The latest Refresh
// wins when several overlap.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	var gen uint64
	var size int
	p.state.Update(func(s State[T]) State[T] {
		s.gen++
		gen, size = s.gen, s.Size
		s.IsLoading = true
		s.IsMoreLoading = false
		s.Error = ""
		return s
	})

	page, err := p.fetch(ctx, 0, size)

	p.state.Update(func(s State[T]) State[T] {
		if s.gen != gen {
			return s
		}
		s.IsLoading = false
		if err != nil {
			s.Error = apperror.Message(err)
			return s
		}
		s.Items = append([]T(nil), page.Content...)
		s.NextPage = 1
		s.Last = page.Last
		s.Total = page.TotalElements
		return s
	})
	if err != nil {
		p.log.Warn(ctx, "list refresh failed", "error", err)
	}
	return err
}

// LoadMore appends the next page. It returns false without fetching when a
// fetch is in flight or the last page is loaded; the check and the flag flip
// are atomic, so concurrent calls produce one request.
func (p *Pager[T]) LoadMore(ctx context.Context) (bool, error) {
	var gen uint64
	var page, size int
	started := p.state.CompareAndUpdate(func(s State[T]) (State[T], bool) {
		if s.IsLoading || s.IsMoreLoading || s.Last {
			return s, false
		}
		s.IsMoreLoading = true
		s.Error = ""
		gen, page, size = s.gen, s.NextPage, s.Size
		return s, true
	})
	if !started {
		return false, nil
	}

	res, err := p.fetch(ctx, page, size)

	p.state.Update(func(s State[T]) State[T] {
		if s.gen != gen {
			return s
		}
		s.IsMoreLoading = false
		if err != nil {
			s.Error = apperror.Message(err)
			return s
		}
		items := make([]T, 0, len(s.Items)+len(res.Content))
		items = append(items, s.Items...)
		s.Items = append(items, res.Content...)
		s.NextPage = page + 1
		s.Last = res.Last
		s.Total = res.TotalElements
		return s
	})
	if err != nil {
		p.log.Warn(ctx, "list load more failed", "page", page, "error", err)
	}
	return true, err
}
