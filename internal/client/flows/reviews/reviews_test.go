package reviews

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/services"
	"github.com/dmitrijs2005/studygroups/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReviewAPI is an in-memory review backend behind the real service, so
// rating validation runs as in production.
type fakeReviewAPI struct {
	nextID    int64
	reviews   []models.Review
	lastQuery models.ReviewQuery
	writes    int
}

func (f *fakeReviewAPI) CreateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	f.writes++
	f.nextID++
	r := models.Review{ID: f.nextID, GroupID: req.GroupID, RevieweeID: req.RevieweeID, Rating: req.Rating, Comment: req.Comment}
	f.reviews = append(f.reviews, r)
	return r, nil
}

func (f *fakeReviewAPI) UpdateReview(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error) {
	f.writes++
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews[i].Rating, f.reviews[i].Comment = req.Rating, req.Comment
			return f.reviews[i], nil
		}
	}
	return models.Review{}, apperror.NewServer(404, "review not found")
}

func (f *fakeReviewAPI) DeleteReview(ctx context.Context, id int64) error {
	f.writes++
	out := f.reviews[:0]
	for _, r := range f.reviews {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.reviews = out
	return nil
}

func (f *fakeReviewAPI) SearchReviews(ctx context.Context, q models.ReviewQuery) (models.Page[models.Review], error) {
	f.lastQuery = q
	return models.Page[models.Review]{Content: append([]models.Review(nil), f.reviews...), Last: true}, nil
}

func newHolder(t *testing.T) (*Holder, *fakeReviewAPI) {
	t.Helper()
	api := &fakeReviewAPI{}
	svc := services.NewReviewService(api, logging.Nop())
	return New(svc, Target{GroupID: 7}, 10, logging.Nop()), api
}

func TestHolder_CreateUpdateDeleteRefresh(t *testing.T) {
	h, api := newHolder(t)
	ctx := context.Background()

	_, err := h.Create(ctx, models.ReviewRequest{GroupID: 7, RevieweeID: 2, Rating: 4, Comment: "solid"})
	require.NoError(t, err)
	_, err = h.Create(ctx, models.ReviewRequest{GroupID: 7, RevieweeID: 3, Rating: 2})
	require.NoError(t, err)

	require.Len(t, h.State().Items, 2)
	assert.InDelta(t, 3.0, h.Average(), 0.001)
	assert.Equal(t, int64(7), api.lastQuery.GroupID)

	_, err = h.Update(ctx, 2, models.ReviewRequest{GroupID: 7, RevieweeID: 3, Rating: 5})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, h.Average(), 0.001)

	require.NoError(t, h.Delete(ctx, 1))
	assert.Len(t, h.State().Items, 1)
}

func TestHolder_InvalidRatingNeverSent(t *testing.T) {
	h, api := newHolder(t)

	_, err := h.Create(context.Background(), models.ReviewRequest{GroupID: 7, RevieweeID: 2, Rating: 9})
	require.Error(t, err)
	assert.Zero(t, api.writes)
	assert.Equal(t, "rating must be at most 5", h.State().Error)
}

func TestHolder_UpdateMissing(t *testing.T) {
	h, _ := newHolder(t)

	_, err := h.Update(context.Background(), 42, models.ReviewRequest{GroupID: 7, RevieweeID: 2, Rating: 3})
	require.Error(t, err)
	assert.Equal(t, "review not found", h.State().Error)
	assert.Equal(t, Target{GroupID: 7}, h.Target())
	assert.Zero(t, h.Average())
}
