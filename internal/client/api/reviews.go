package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

func (c *HTTPClient) CreateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	var out models.Review
	err := c.doJSON(ctx, http.MethodPost, "/reviews", nil, req, &out)
	return out, err
}

func (c *HTTPClient) UpdateReview(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error) {
	var out models.Review
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/reviews/%d", id), nil, req, &out)
	return out, err
}

func (c *HTTPClient) DeleteReview(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, nil, nil)
}

func (c *HTTPClient) SearchReviews(ctx context.Context, q models.ReviewQuery) (models.Page[models.Review], error) {
	var out models.Page[models.Review]
	err := c.doJSON(ctx, http.MethodGet, "/reviews", q.Values(), nil, &out)
	return out, err
}
