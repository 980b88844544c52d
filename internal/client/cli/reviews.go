package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/studygroups/internal/client/flows/reviews"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/common"
)

// ErrNoReviewList is returned by review edits before any list was opened.
var ErrNoReviewList = errors.New("open a review list first with 'reviews group <id>' or 'reviews user <id>'")

// Reviews opens the review list of a group (kind "group") or of a member
// (kind "user").
func (a *App) Reviews(ctx context.Context, kind string, id int64) error {
	var target reviews.Target
	switch kind {
	case "group":
		target.GroupID = id
	case "user":
		target.RevieweeID = id
	default:
		return fmt.Errorf("unknown review list %q, use 'group' or 'user'", kind)
	}

	h := reviews.New(a.reviewSvc, target, a.config.PageSize, a.log)
	if err := h.Refresh(ctx); err != nil {
		return err
	}
	a.reviews = h

	a.printReviews(h)
	a.more = a.loadMoreReviews
	return nil
}

func (a *App) loadMoreReviews(ctx context.Context) error {
	h := a.reviews
	before := len(h.State().Items)
	started, err := h.LoadMore(ctx)
	if err != nil {
		return err
	}
	if !started {
		a.println("No more reviews")
		return nil
	}
	st := h.State()
	for _, r := range st.Items[min(before, len(st.Items)):] {
		a.println(formatReview(r))
	}
	a.printFooter(len(st.Items), st.Last, st.Total)
	return nil
}

// AddReview rates a member of the open list's group.
func (a *App) AddReview(ctx context.Context) error {
	if a.reviews == nil {
		return ErrNoReviewList
	}
	t := a.reviews.Target()

	req := models.ReviewRequest{GroupID: t.GroupID, RevieweeID: t.RevieweeID}
	var err error
	if req.GroupID == 0 {
		if req.GroupID, err = a.promptID("Group id"); err != nil {
			return err
		}
	}
	if req.RevieweeID == 0 {
		if req.RevieweeID, err = a.promptID("Member id"); err != nil {
			return err
		}
	}
	if err := a.promptRating(&req); err != nil {
		return err
	}

	r, err := a.reviews.Create(ctx, req)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Posted review #%d", r.ID))
	return nil
}

// EditReview changes the rating and comment of a review in the open list.
func (a *App) EditReview(ctx context.Context, id int64) error {
	old, err := a.loadedReview(id)
	if err != nil {
		return err
	}

	req := models.ReviewRequest{GroupID: old.GroupID, RevieweeID: old.RevieweeID}
	if err := a.promptRating(&req); err != nil {
		return err
	}

	if _, err := a.reviews.Update(ctx, id, req); err != nil {
		return err
	}
	a.println(fmt.Sprintf("Updated review #%d", id))
	return nil
}

func (a *App) DeleteReview(ctx context.Context, id int64) error {
	if _, err := a.loadedReview(id); err != nil {
		return err
	}
	if err := a.reviews.Delete(ctx, id); err != nil {
		return err
	}
	a.println(fmt.Sprintf("Deleted review #%d", id))
	return nil
}

func (a *App) loadedReview(id int64) (models.Review, error) {
	if a.reviews == nil {
		return models.Review{}, ErrNoReviewList
	}
	for _, r := range a.reviews.State().Items {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Review{}, fmt.Errorf("review #%d: %w", id, common.ErrNotFound)
}

func (a *App) promptRating(req *models.ReviewRequest) error {
	rating, err := a.prompt(fmt.Sprintf("Rating (%d-%d)", models.MinRating, models.MaxRating))
	if err != nil {
		return err
	}
	if req.Rating, err = strconv.Atoi(rating); err != nil {
		return fmt.Errorf("rating must be a number")
	}
	req.Comment, err = a.prompt("Comment (optional)")
	return err
}

func (a *App) promptID(text string) (int64, error) {
	s, err := a.prompt(text)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", text)
	}
	return id, nil
}

func (a *App) printReviews(h *reviews.Holder) {
	st := h.State()
	if len(st.Items) == 0 {
		a.println("No reviews yet")
		return
	}
	a.println(fmt.Sprintf("Average rating %.1f", h.Average()))
	for _, r := range st.Items {
		a.println(formatReview(r))
	}
	a.printFooter(len(st.Items), st.Last, st.Total)
}

func formatReview(r models.Review) string {
	s := fmt.Sprintf("#%-5d %d/%d %s -> %s", r.ID, r.Rating, models.MaxRating, r.ReviewerNickname, r.RevieweeNickname)
	if r.Comment != "" {
		s += ": " + r.Comment
	}
	return s
}
