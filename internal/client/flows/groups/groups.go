// Package groups holds the group browsing and membership screens' state.
package groups

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/listing"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/services"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// Filter narrows the search list.
type Filter struct {
	Keyword    string
	CategoryID int64
}

// Browser is the searchable list of recruiting groups.
type Browser struct {
	*listing.Pager[models.Group]

	mu     sync.Mutex
	filter Filter
}

func NewBrowser(svc services.GroupService, pageSize int, log logging.Logger) *Browser {
	b := &Browser{}
	b.Pager = listing.NewPager(pageSize, func(ctx context.Context, page, size int) (models.Page[models.Group], error) {
		f := b.Filter()
		return svc.Search(ctx, models.GroupQuery{
			Keyword:    f.Keyword,
			CategoryID: f.CategoryID,
			Page:       page,
			Size:       size,
		})
	}, log.With("holder", "groups"))
	return b
}

func (b *Browser) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// Search replaces the filter and reloads from the first page.
func (b *Browser) Search(ctx context.Context, f Filter) error {
	b.mu.Lock()
	b.filter = f
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// Mine is the signed-in user's groups plus the membership actions. Every
// action is a single call followed by a refresh; the list only ever shows
// what the server returned.
type Mine struct {
	*listing.Pager[models.Group]
	svc services.GroupService
	log logging.Logger
}

func NewMine(svc services.GroupService, pageSize int, log logging.Logger) *Mine {
	log = log.With("holder", "my-groups")
	return &Mine{
		Pager: listing.NewPager(pageSize, svc.Mine, log),
		svc:   svc,
		log:   log,
	}
}

func (m *Mine) Join(ctx context.Context, id int64) error {
	return m.act(ctx, func(ctx context.Context) error { return m.svc.Join(ctx, id) })
}

func (m *Mine) Withdraw(ctx context.Context, id int64) error {
	return m.act(ctx, func(ctx context.Context) error { return m.svc.Withdraw(ctx, id) })
}

func (m *Mine) Expire(ctx context.Context, id int64) error {
	return m.act(ctx, func(ctx context.Context) error { return m.svc.Expire(ctx, id) })
}

func (m *Mine) Delete(ctx context.Context, id int64) error {
	return m.act(ctx, func(ctx context.Context) error { return m.svc.Delete(ctx, id) })
}

// Create posts a new group and returns it.
func (m *Mine) Create(ctx context.Context, req models.CreateGroupRequest) (models.Group, error) {
	var g models.Group
	err := m.act(ctx, func(ctx context.Context) error {
		var err error
		g, err = m.svc.Create(ctx, req)
		return err
	})
	return g, err
}

func (m *Mine) act(ctx context.Context, call func(ctx context.Context) error) error {
	if err := call(ctx); err != nil {
		m.SetError(apperror.Message(err))
		return err
	}
	return m.Refresh(ctx)
}
