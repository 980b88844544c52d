package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

func (c *HTTPClient) CreateGroup(ctx context.Context, req models.CreateGroupRequest) (models.Group, error) {
	var out models.Group
	err := c.doJSON(ctx, http.MethodPost, "/groups", nil, req, &out)
	return out, err
}

func (c *HTTPClient) SearchGroups(ctx context.Context, q models.GroupQuery) (models.Page[models.Group], error) {
	var out models.Page[models.Group]
	err := c.doJSON(ctx, http.MethodGet, "/groups", q.Values(), nil, &out)
	return out, err
}

func (c *HTTPClient) MyGroups(ctx context.Context, page, size int) (models.Page[models.Group], error) {
	var out models.Page[models.Group]
	q := models.GroupQuery{Page: page, Size: size}
	err := c.doJSON(ctx, http.MethodGet, "/groups/me", q.Values(), nil, &out)
	return out, err
}

func (c *HTTPClient) DeleteGroup(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d", id), nil, nil, nil)
}

func (c *HTTPClient) ExpireGroup(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/groups/%d/expire", id), nil, nil, nil)
}

func (c *HTTPClient) JoinGroup(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/groups/%d/members", id), nil, nil, nil)
}

func (c *HTTPClient) WithdrawGroup(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d/members", id), nil, nil, nil)
}
