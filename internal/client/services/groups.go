package services

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/client/api"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// GroupService wraps the group endpoints. It has no local side effects.
type GroupService interface {
	Create(ctx context.Context, req models.CreateGroupRequest) (models.Group, error)
	Search(ctx context.Context, q models.GroupQuery) (models.Page[models.Group], error)
	Mine(ctx context.Context, page, size int) (models.Page[models.Group], error)
	Delete(ctx context.Context, id int64) error
	Expire(ctx context.Context, id int64) error
	Join(ctx context.Context, id int64) error
	Withdraw(ctx context.Context, id int64) error
}

type groupService struct {
	client api.GroupAPI
	log    logging.Logger
}

func NewGroupService(client api.GroupAPI, log logging.Logger) GroupService {
	return &groupService{client: client, log: log.With("service", "groups")}
}

func (g *groupService) Create(ctx context.Context, req models.CreateGroupRequest) (models.Group, error) {
	if err := models.Validate(req); err != nil {
		return models.Group{}, err
	}
	grp, err := g.client.CreateGroup(ctx, req)
	if err != nil {
		return models.Group{}, logFailure(ctx, g.log, "create group", err)
	}
	return grp, nil
}

func (g *groupService) Search(ctx context.Context, q models.GroupQuery) (models.Page[models.Group], error) {
	p, err := g.client.SearchGroups(ctx, q)
	if err != nil {
		return models.Page[models.Group]{}, logFailure(ctx, g.log, "search groups", err)
	}
	return p, nil
}

func (g *groupService) Mine(ctx context.Context, page, size int) (models.Page[models.Group], error) {
	p, err := g.client.MyGroups(ctx, page, size)
	if err != nil {
		return models.Page[models.Group]{}, logFailure(ctx, g.log, "my groups", err)
	}
	return p, nil
}

func (g *groupService) Delete(ctx context.Context, id int64) error {
	if err := g.client.DeleteGroup(ctx, id); err != nil {
		return logFailure(ctx, g.log, "delete group", err)
	}
	return nil
}

func (g *groupService) Expire(ctx context.Context, id int64) error {
	if err := g.client.ExpireGroup(ctx, id); err != nil {
		return logFailure(ctx, g.log, "expire group", err)
	}
	return nil
}

func (g *groupService) Join(ctx context.Context, id int64) error {
	if err := g.client.JoinGroup(ctx, id); err != nil {
		return logFailure(ctx, g.log, "join group", err)
	}
	return nil
}

func (g *groupService) Withdraw(ctx context.Context, id int64) error {
	if err := g.client.WithdrawGroup(ctx, id); err != nil {
		return logFailure(ctx, g.log, "withdraw from group", err)
	}
	return nil
}
