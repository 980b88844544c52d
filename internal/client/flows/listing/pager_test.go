package listing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flags struct{ loading, more bool }

// pagedSource serves fixed pages and records the pager's flags as seen
// during each fetch.
type pagedSource struct {
	mu     sync.Mutex
	pages  []models.Page[int]
	calls  []int
	during []flags
	pager  *Pager[int]
	err    error
	gate   chan struct{}
}

func (s *pagedSource) fetch(ctx context.Context, page, size int) (models.Page[int], error) {
	if s.gate != nil {
		<-s.gate
	}
	st := s.pager.State()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, page)
	s.during = append(s.during, flags{st.IsLoading, st.IsMoreLoading})
	if s.err != nil {
		return models.Page[int]{}, s.err
	}
	return s.pages[page], nil
}

func (s *pagedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}

func newSource() *pagedSource {
	src := &pagedSource{pages: []models.Page[int]{
		{Content: seq(0, 10), Page: 0, Size: 10, Last: false, TotalElements: 14},
		{Content: seq(10, 4), Page: 1, Size: 10, Last: true, TotalElements: 14},
	}}
	src.pager = NewPager(10, src.fetch, logging.Nop())
	return src
}

func TestPager_TwoPagesAccumulate(t *testing.T) {
	src := newSource()
	p := src.pager
	ctx := context.Background()

	before := p.State()
	assert.False(t, before.IsLoading)
	assert.False(t, before.IsMoreLoading)

	require.NoError(t, p.Refresh(ctx))
	s := p.State()
	assert.False(t, s.IsLoading)
	assert.Len(t, s.Items, 10)
	assert.False(t, s.Last)

	fetched, err := p.LoadMore(ctx)
	require.NoError(t, err)
	require.True(t, fetched)

	s = p.State()
	assert.False(t, s.IsMoreLoading)
	assert.Equal(t, seq(0, 14), s.Items)
	assert.True(t, s.Last)
	assert.Equal(t, int64(14), s.Total)

	assert.Equal(t, []flags{{loading: true}, {more: true}}, src.during)

	fetched, err = p.LoadMore(ctx)
	require.NoError(t, err)
	assert.False(t, fetched, "no fetch past the last page")
	assert.Equal(t, []int{0, 1}, src.calls)
}

func TestPager_NoDuplicateFetchWhileMoreLoading(t *testing.T) {
	src := newSource()
	p := src.pager
	ctx := context.Background()
	require.NoError(t, p.Refresh(ctx))

	src.gate = make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.LoadMore(ctx)
	}()
	require.Eventually(t, func() bool { return p.State().IsMoreLoading }, time.Second, time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetched, err := p.LoadMore(ctx)
			assert.NoError(t, err)
			assert.False(t, fetched)
		}()
	}
	wg.Wait()

	close(src.gate)
	<-done

	assert.Equal(t, 2, src.callCount())
	assert.Len(t, p.State().Items, 14)
}

func TestPager_LoadMoreSkippedWhileRefreshing(t *testing.T) {
	src := newSource()
	src.gate = make(chan struct{})
	p := src.pager

	done := make(chan error, 1)
	go func() { done <- p.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return p.State().IsLoading }, time.Second, time.Millisecond)

	fetched, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)

	close(src.gate)
	require.NoError(t, <-done)
	assert.Equal(t, 1, src.callCount())
}

func TestPager_RefreshResetsCursor(t *testing.T) {
	src := newSource()
	p := src.pager
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))
	_, err := p.LoadMore(ctx)
	require.NoError(t, err)
	require.Len(t, p.State().Items, 14)

	require.NoError(t, p.Refresh(ctx))
	s := p.State()
	assert.Len(t, s.Items, 10)
	assert.Equal(t, 1, s.NextPage)
	assert.False(t, s.Last)
}

func TestPager_ErrorKeepsItems(t *testing.T) {
	src := newSource()
	p := src.pager
	ctx := context.Background()
	require.NoError(t, p.Refresh(ctx))

	src.err = errors.New("connection reset")
	_, err := p.LoadMore(ctx)
	require.Error(t, err)

	s := p.State()
	assert.Equal(t, "connection reset", s.Error)
	assert.Len(t, s.Items, 10)
	assert.False(t, s.IsMoreLoading)
	assert.Equal(t, 1, s.NextPage, "cursor not advanced")

	src.err = nil
	fetched, err := p.LoadMore(ctx)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Empty(t, p.State().Error)
}

func TestPager_SetError(t *testing.T) {
	p := NewPager(0, func(context.Context, int, int) (models.Page[string], error) {
		return models.Page[string]{}, nil
	}, logging.Nop())

	assert.Equal(t, 10, p.State().Size)
	p.SetError("join failed")
	assert.Equal(t, "join failed", p.State().Error)
	p.ClearError()
	assert.Empty(t, p.State().Error)
}
