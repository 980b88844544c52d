package api

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/netx"
)

// ProfileImageField is the multipart field name the server reads.
const ProfileImageField = "image"

func (c *HTTPClient) Profile(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, nil, &out)
	return out, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error) {
	var out models.Profile
	err := c.doJSON(ctx, http.MethodPatch, "/users/me", nil, req, &out)
	return out, err
}

func (c *HTTPClient) UploadProfileImage(ctx context.Context, filename string, r io.Reader) (models.ImageResponse, error) {
	var out models.ImageResponse

	body, contentType, err := netx.MultipartFile(ProfileImageField, filename, r)
	if err != nil {
		return out, err
	}

	err = c.do(ctx, http.MethodPost, c.endpoint("/users/me/image", nil), contentType, body, &out)
	return out, err
}
