package services

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/client/api"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// ReviewService wraps the review endpoints.
type ReviewService interface {
	Create(ctx context.Context, req models.ReviewRequest) (models.Review, error)
	Update(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q models.ReviewQuery) (models.Page[models.Review], error)
}

type reviewService struct {
	client api.ReviewAPI
	log    logging.Logger
}

func NewReviewService(client api.ReviewAPI, log logging.Logger) ReviewService {
	return &reviewService{client: client, log: log.With("service", "reviews")}
}

func (r *reviewService) Create(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	if err := models.Validate(req); err != nil {
		return models.Review{}, err
	}
	rev, err := r.client.CreateReview(ctx, req)
	if err != nil {
		return models.Review{}, logFailure(ctx, r.log, "create review", err)
	}
	return rev, nil
}

func (r *reviewService) Update(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error) {
	if err := models.Validate(req); err != nil {
		return models.Review{}, err
	}
	rev, err := r.client.UpdateReview(ctx, id, req)
	if err != nil {
		return models.Review{}, logFailure(ctx, r.log, "update review", err)
	}
	return rev, nil
}

func (r *reviewService) Delete(ctx context.Context, id int64) error {
	if err := r.client.DeleteReview(ctx, id); err != nil {
		return logFailure(ctx, r.log, "delete review", err)
	}
	return nil
}

func (r *reviewService) Search(ctx context.Context, q models.ReviewQuery) (models.Page[models.Review], error) {
	p, err := r.client.SearchReviews(ctx, q)
	if err != nil {
		return models.Page[models.Review]{}, logFailure(ctx, r.log, "search reviews", err)
	}
	return p, nil
}
