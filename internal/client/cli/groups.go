package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studygroups/internal/client/flows/groups"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/listing"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

// Groups searches recruiting groups. args are "[-c category] [keyword...]".
func (a *App) Groups(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("groups", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.Int64("c", 0, "category id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("usage: groups [-c category] [keyword]: %w", err)
	}

	f := groups.Filter{Keyword: strings.Join(fs.Args(), " "), CategoryID: *category}
	if err := a.browser.Search(ctx, f); err != nil {
		return err
	}

	a.printGroups(a.browser.State())
	a.more = func(ctx context.Context) error {
		return a.loadMoreGroups(ctx, a.browser.Pager)
	}
	return nil
}

// MyGroups lists the groups the user leads or belongs to.
func (a *App) MyGroups(ctx context.Context) error {
	if err := a.mine.Refresh(ctx); err != nil {
		return err
	}
	a.printGroups(a.mine.State())
	a.more = func(ctx context.Context) error {
		return a.loadMoreGroups(ctx, a.mine.Pager)
	}
	return nil
}

// More loads the next page of the list shown last.
func (a *App) More(ctx context.Context) error {
	if a.more == nil {
		a.println("Nothing to page through yet")
		return nil
	}
	return a.more(ctx)
}

func (a *App) loadMoreGroups(ctx context.Context, p *listing.Pager[models.Group]) error {
	before := len(p.State().Items)
	started, err := p.LoadMore(ctx)
	if err != nil {
		return err
	}
	if !started {
		a.println("No more groups")
		return nil
	}
	st := p.State()
	a.printGroupRows(st.Items[min(before, len(st.Items)):])
	a.printFooter(len(st.Items), st.Last, st.Total)
	return nil
}

func (a *App) Join(ctx context.Context, id int64) error {
	return a.groupAction(ctx, "Joined", id, a.mine.Join)
}

func (a *App) Withdraw(ctx context.Context, id int64) error {
	return a.groupAction(ctx, "Left", id, a.mine.Withdraw)
}

func (a *App) Expire(ctx context.Context, id int64) error {
	return a.groupAction(ctx, "Closed recruiting for", id, a.mine.Expire)
}

func (a *App) DeleteGroup(ctx context.Context, id int64) error {
	return a.groupAction(ctx, "Deleted", id, a.mine.Delete)
}

func (a *App) groupAction(ctx context.Context, done string, id int64, call func(context.Context, int64) error) error {
	if err := call(ctx, id); err != nil {
		return err
	}
	a.println(fmt.Sprintf("%s group #%d", done, id))
	return nil
}

// CreateGroup prompts for the group fields and creates it. The caller
// becomes its leader.
func (a *App) CreateGroup(ctx context.Context) error {
	var req models.CreateGroupRequest
	var err error

	if req.Name, err = a.prompt("Group name"); err != nil {
		return err
	}
	if req.Description, err = askParagraph(a.reader, a.out, "Description"); err != nil {
		return err
	}

	category, err := a.prompt("Category id")
	if err != nil {
		return err
	}
	if req.CategoryID, err = strconv.ParseInt(category, 10, 64); err != nil {
		return fmt.Errorf("category id must be a number")
	}

	capacity, err := a.prompt("Capacity (empty for no limit)")
	if err != nil {
		return err
	}
	if capacity != "" {
		n, err := strconv.Atoi(capacity)
		if err != nil {
			return fmt.Errorf("capacity must be a number")
		}
		req.Capacity = &n
	}

	online, err := a.prompt("Online? (y/N)")
	if err != nil {
		return err
	}
	req.Online = strings.EqualFold(online, "y") || strings.EqualFold(online, "yes")
	if !req.Online {
		if req.Location, err = a.prompt("Location"); err != nil {
			return err
		}
	}

	g, err := a.mine.Create(ctx, req)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Created group #%d %q", g.ID, g.Name))
	return nil
}

func (a *App) printGroups(st listing.State[models.Group]) {
	if len(st.Items) == 0 {
		a.println("No groups found")
		return
	}
	a.printGroupRows(st.Items)
	a.printFooter(len(st.Items), st.Last, st.Total)
}

func (a *App) printGroupRows(items []models.Group) {
	for _, g := range items {
		a.println(formatGroup(g))
	}
}

func (a *App) printFooter(n int, last bool, total int64) {
	if last {
		a.println(fmt.Sprintf("%d of %d shown", n, total))
		return
	}
	a.println(fmt.Sprintf("%d of %d shown, type 'more' for the next page", n, total))
}

func formatGroup(g models.Group) string {
	where := "online"
	if !g.Online {
		where = g.Location
	}
	size := "open"
	if g.Capacity != nil {
		size = fmt.Sprintf("max %d", *g.Capacity)
	}
	return fmt.Sprintf("#%-5d %-30s %-10s %-20s %-8s led by %s", g.ID, g.Name, g.Status, where, size, g.LeaderNickname)
}
