package services

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studygroups/internal/client/api"
	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/filex"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// UserService wraps the profile endpoints. Every successful call mirrors the
// returned profile fields into the credential store.
type UserService interface {
	Profile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error)
	UploadImage(ctx context.Context, path string) (models.ImageResponse, error)
}

type userService struct {
	client api.UserAPI
	store  CredentialStore
	log    logging.Logger
}

func NewUserService(client api.UserAPI, store CredentialStore, log logging.Logger) UserService {
	return &userService{client: client, store: store, log: log.With("service", "users")}
}

func (u *userService) Profile(ctx context.Context) (models.Profile, error) {
	p, err := u.client.Profile(ctx)
	if err != nil {
		return models.Profile{}, logFailure(ctx, u.log, "fetch profile", err)
	}
	u.saveProfile(ctx, "fetch profile", p)
	return p, nil
}

func (u *userService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error) {
	if err := models.Validate(req); err != nil {
		return models.Profile{}, err
	}
	p, err := u.client.UpdateProfile(ctx, req)
	if err != nil {
		return models.Profile{}, logFailure(ctx, u.log, "update profile", err)
	}
	u.saveProfile(ctx, "update profile", p)
	return p, nil
}

func (u *userService) UploadImage(ctx context.Context, path string) (models.ImageResponse, error) {
	path, err := filex.ExpandHome(path)
	if err != nil {
		return models.ImageResponse{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return models.ImageResponse{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	resp, err := u.client.UploadProfileImage(ctx, f.Name(), f)
	if err != nil {
		return models.ImageResponse{}, logFailure(ctx, u.log, "upload profile image", err)
	}

	persist(ctx, u.log, "upload profile image", func() error {
		return u.store.Apply(ctx, credentials.Patch{ImageURL: credentials.Str(resp.ImageURL)})
	})
	return resp, nil
}

func (u *userService) saveProfile(ctx context.Context, op string, p models.Profile) {
	persist(ctx, u.log, op, func() error {
		return u.store.Apply(ctx, credentials.Patch{
			Nickname: credentials.Str(p.Nickname),
			Email:    credentials.Str(p.Email),
			Major:    credentials.Str(p.Major),
			Bio:      credentials.Str(p.Bio),
			ImageURL: credentials.Str(p.ImageURL),
		})
	})
}
