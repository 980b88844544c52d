// Package session holds the login, social login and profile screens' state.
package session

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/observable"
	"github.com/dmitrijs2005/studygroups/internal/client/services"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// State is the login screen snapshot.
type State struct {
	Loading  bool
	Error    string
	LoggedIn bool

	// NeedsVerification is set when a social login has no account yet;
	// SocialToken and Provider then identify the pending registration.
	NeedsVerification bool
	Provider          string
	SocialToken       string
}

// Holder drives login, social login, social signup and logout.
type Holder struct {
	auth  services.AuthService
	state *observable.Value[State]
	log   logging.Logger
}

func New(auth services.AuthService, log logging.Logger) *Holder {
	return &Holder{
		auth:  auth,
		state: observable.New(State{}),
		log:   log.With("holder", "session"),
	}
}

func (h *Holder) State() State { return h.state.Get() }

func (h *Holder) Subscribe(ctx context.Context) <-chan State { return h.state.Subscribe(ctx) }

// run sets Loading around call and records its error; on success apply
// updates the state.
func (h *Holder) run(ctx context.Context, call func(ctx context.Context) error, apply func(*State)) error {
	h.state.Update(func(s State) State {
		s.Loading = true
		s.Error = ""
		return s
	})

	err := call(ctx)

	h.state.Update(func(s State) State {
		s.Loading = false
		if err != nil {
			s.Error = apperror.Message(err)
			return s
		}
		apply(&s)
		return s
	})
	return err
}

func (h *Holder) Login(ctx context.Context, email, password string) error {
	return h.run(ctx, func(ctx context.Context) error {
		_, err := h.auth.Login(ctx, email, password)
		return err
	}, func(s *State) {
		*s = State{LoggedIn: true}
	})
}

// SocialLogin exchanges a provider token. A LOGIN answer signs in; a
// REGISTER answer leaves NeedsVerification set with the upstream token.
func (h *Holder) SocialLogin(ctx context.Context, provider, token string) error {
	var resp models.SocialLoginResponse
	return h.run(ctx, func(ctx context.Context) error {
		var err error
		resp, err = h.auth.SocialLogin(ctx, provider, token)
		return err
	}, func(s *State) {
		if resp.Status == models.SocialStatusRegister {
			*s = State{NeedsVerification: true, Provider: provider, SocialToken: resp.SocialToken}
			return
		}
		*s = State{LoggedIn: true}
	})
}

// SocialSignup completes a pending social registration with the token from
// a successful social email verification.
func (h *Holder) SocialSignup(ctx context.Context, verified models.SocialVerifyResponse, email, nickname, major, studentNumber string) error {
	req := models.SocialSignupRequest{
		SocialToken:   verified.SocialToken,
		Email:         email,
		Nickname:      nickname,
		Major:         major,
		StudentNumber: studentNumber,
	}
	return h.run(ctx, func(ctx context.Context) error {
		_, err := h.auth.SocialSignup(ctx, req)
		return err
	}, func(s *State) {
		*s = State{LoggedIn: true}
	})
}

func (h *Holder) Logout(ctx context.Context) error {
	return h.run(ctx, h.auth.Logout, func(s *State) {
		*s = State{}
	})
}
