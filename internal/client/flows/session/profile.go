package session

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/observable"
	"github.com/dmitrijs2005/studygroups/internal/client/services"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// ProfileState is the profile screen snapshot.
type ProfileState struct {
	Profile models.Profile
	Loaded  bool
	Loading bool
	Error   string
}

// Profile loads and edits the signed-in user's profile.
type Profile struct {
	users services.UserService
	state *observable.Value[ProfileState]
	log   logging.Logger
}

func NewProfile(users services.UserService, log logging.Logger) *Profile {
	return &Profile{
		users: users,
		state: observable.New(ProfileState{}),
		log:   log.With("holder", "profile"),
	}
}

func (p *Profile) State() ProfileState { return p.state.Get() }

func (p *Profile) Subscribe(ctx context.Context) <-chan ProfileState {
	return p.state.Subscribe(ctx)
}

func (p *Profile) run(ctx context.Context, call func(ctx context.Context) error) error {
	p.state.Update(func(s ProfileState) ProfileState {
		s.Loading = true
		s.Error = ""
		return s
	})
	err := call(ctx)
	p.state.Update(func(s ProfileState) ProfileState {
		s.Loading = false
		if err != nil {
			s.Error = apperror.Message(err)
		}
		return s
	})
	return err
}

func (p *Profile) setProfile(pr models.Profile) {
	p.state.Update(func(s ProfileState) ProfileState {
		s.Profile = pr
		s.Loaded = true
		return s
	})
}

func (p *Profile) Load(ctx context.Context) error {
	return p.run(ctx, func(ctx context.Context) error {
		pr, err := p.users.Profile(ctx)
		if err == nil {
			p.setProfile(pr)
		}
		return err
	})
}

func (p *Profile) Update(ctx context.Context, req models.UpdateProfileRequest) error {
	return p.run(ctx, func(ctx context.Context) error {
		pr, err := p.users.UpdateProfile(ctx, req)
		if err == nil {
			p.setProfile(pr)
		}
		return err
	})
}

// UploadImage sends the file at path and records the new image URL.
func (p *Profile) UploadImage(ctx context.Context, path string) error {
	return p.run(ctx, func(ctx context.Context) error {
		resp, err := p.users.UploadImage(ctx, path)
		if err != nil {
			return err
		}
		p.state.Update(func(s ProfileState) ProfileState {
			s.Profile.ImageURL = resp.ImageURL
			return s
		})
		return nil
	})
}
