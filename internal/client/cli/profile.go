package cli

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

// Profile loads and prints the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	if err := a.profile.Load(ctx); err != nil {
		return err
	}
	a.printProfile(a.profile.State().Profile)
	return nil
}

// EditProfile prompts for nickname, major and bio. Empty answers keep the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	var req models.UpdateProfileRequest

	for _, f := range []struct {
		prompt string
		dst    **string
	}{
		{"Nickname (empty to keep)", &req.Nickname},
		{"Major (empty to keep)", &req.Major},
		{"Bio (empty to keep)", &req.Bio},
	} {
		v, err := a.prompt(f.prompt)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = &v
		}
	}

	if req.Nickname == nil && req.Major == nil && req.Bio == nil {
		a.println("Nothing changed")
		return nil
	}

	if err := a.profile.Update(ctx, req); err != nil {
		return err
	}
	a.printProfile(a.profile.State().Profile)
	return nil
}

// Avatar uploads the image at path as the profile picture.
func (a *App) Avatar(ctx context.Context, path string) error {
	if err := a.profile.UploadImage(ctx, path); err != nil {
		return err
	}
	a.println("Profile image:", a.profile.State().Profile.ImageURL)
	return nil
}

func (a *App) printProfile(p models.Profile) {
	a.println("Nickname:", p.Nickname)
	a.println("Email:   ", p.Email)
	for _, f := range []struct{ label, v string }{
		{"Major:   ", p.Major},
		{"Student: ", p.StudentNumber},
		{"Bio:     ", p.Bio},
		{"Image:   ", p.ImageURL},
	} {
		if f.v != "" {
			a.println(f.label, f.v)
		}
	}
}
