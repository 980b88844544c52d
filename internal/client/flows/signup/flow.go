package signup

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

// Verifier is the part of services.AuthService general signup needs.
type Verifier interface {
	SendEmailCode(ctx context.Context, email string) error
	VerifyEmailCode(ctx context.Context, email, code string) (models.EmailVerifyResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error)
}

// Flow is the three-step general signup wizard.
type Flow struct {
	*machine
	auth Verifier
}

func New(auth Verifier, cfg Config, opts ...Option) *Flow {
	return &Flow{machine: newMachine(cfg, opts), auth: auth}
}

func (f *Flow) SetNickname(v string)        { f.set(func(s *State) { s.Nickname = v }) }
func (f *Flow) SetPassword(v string)        { f.set(func(s *State) { s.Password = v }) }
func (f *Flow) SetPasswordConfirm(v string) { f.set(func(s *State) { s.PasswordConfirm = v }) }
func (f *Flow) SetMajor(v string)           { f.set(func(s *State) { s.Major = v }) }
func (f *Flow) SetStudentNumber(v string)   { f.set(func(s *State) { s.StudentNumber = v }) }

// SubmitEmail sends the verification code to the entered email.
func (f *Flow) SubmitEmail(ctx context.Context) error {
	return f.submitEmail(ctx, f.auth.SendEmailCode)
}

// Resend re-sends the code and restarts the countdown.
func (f *Flow) Resend(ctx context.Context) error {
	return f.resend(ctx, f.auth.SendEmailCode)
}

// SubmitCode verifies the entered code and moves to ProfileCompletion.
func (f *Flow) SubmitCode(ctx context.Context) error {
	verify := func(ctx context.Context, email, code string) error {
		_, err := f.auth.VerifyEmailCode(ctx, email, code)
		return err
	}
	return f.submitCode(ctx, verify, func(s *State) { s.Step = ProfileCompletion })
}

func (f *Flow) request(s State) models.SignupRequest {
	return models.SignupRequest{
		Email:           s.Email,
		Nickname:        s.Nickname,
		Password:        s.Password,
		PasswordConfirm: s.PasswordConfirm,
		Major:           s.Major,
		StudentNumber:   s.StudentNumber,
	}
}

// CanSubmitProfile requires nickname, a password of at least eight
// characters and a matching confirmation.
func (f *Flow) CanSubmitProfile() bool {
	s := f.state.Get()
	return s.Step == ProfileCompletion && !s.Done && models.Valid(f.request(s))
}

// SubmitProfile registers the account. The service stores the returned token.
func (f *Flow) SubmitProfile(ctx context.Context) error {
	if !f.CanSubmitProfile() {
		return ErrActionDisabled
	}
	req := f.request(f.state.Get())

	if err := f.run(ctx, "signup", func(ctx context.Context) error {
		_, err := f.auth.Signup(ctx, req)
		return err
	}); err != nil {
		return err
	}

	f.apply(markDone)
	return nil
}
