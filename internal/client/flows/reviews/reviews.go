// Package reviews holds the review list and editor state for a group or a
// member.
package reviews

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/listing"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/services"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// Target selects whose reviews are listed; zero fields are not filtered on.
type Target struct {
	GroupID    int64
	RevieweeID int64
}

// Holder lists reviews for one Target and edits them. Writes are followed by
// a refresh.
type Holder struct {
	*listing.Pager[models.Review]
	svc    services.ReviewService
	target Target
}

func New(svc services.ReviewService, target Target, pageSize int, log logging.Logger) *Holder {
	h := &Holder{svc: svc, target: target}
	h.Pager = listing.NewPager(pageSize, func(ctx context.Context, page, size int) (models.Page[models.Review], error) {
		return svc.Search(ctx, models.ReviewQuery{
			GroupID:    target.GroupID,
			RevieweeID: target.RevieweeID,
			Page:       page,
			Size:       size,
		})
	}, log.With("holder", "reviews"))
	return h
}

func (h *Holder) Target() Target { return h.target }

// Average is the mean rating of the loaded reviews, 0 when there are none.
func (h *Holder) Average() float64 {
	items := h.State().Items
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, r := range items {
		sum += r.Rating
	}
	return float64(sum) / float64(len(items))
}

func (h *Holder) Create(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	var out models.Review
	err := h.write(ctx, func(ctx context.Context) error {
		var err error
		out, err = h.svc.Create(ctx, req)
		return err
	})
	return out, err
}

func (h *Holder) Update(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error) {
	var out models.Review
	err := h.write(ctx, func(ctx context.Context) error {
		var err error
		out, err = h.svc.Update(ctx, id, req)
		return err
	})
	return out, err
}

func (h *Holder) Delete(ctx context.Context, id int64) error {
	return h.write(ctx, func(ctx context.Context) error { return h.svc.Delete(ctx, id) })
}

func (h *Holder) write(ctx context.Context, call func(ctx context.Context) error) error {
	if err := call(ctx); err != nil {
		h.SetError(apperror.Message(err))
		return err
	}
	return h.Refresh(ctx)
}
