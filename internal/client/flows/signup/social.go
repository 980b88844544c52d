package signup

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

// SocialVerifier is the part of services.AuthService social verification
// needs.
type SocialVerifier interface {
	SendSocialEmailCode(ctx context.Context, email, socialToken string) error
	VerifySocialEmailCode(ctx context.Context, email, code, socialToken string) (models.SocialVerifyResponse, error)
}

// VerifiedFunc receives the verify response and the verified email.
type VerifiedFunc func(resp models.SocialVerifyResponse, email string)

// SocialFlow is the two-step institutional email check after a first-time
// social login.
type SocialFlow struct {
	*machine
	auth        SocialVerifier
	socialToken string
	onVerified  VerifiedFunc
}

// NewSocial starts a verification for the upstream socialToken returned by
// social login. onVerified is called once, after the state is Done.
func NewSocial(auth SocialVerifier, socialToken string, onVerified VerifiedFunc, cfg Config, opts ...Option) *SocialFlow {
	return &SocialFlow{
		machine:     newMachine(cfg, opts),
		auth:        auth,
		socialToken: socialToken,
		onVerified:  onVerified,
	}
}

func (f *SocialFlow) send(ctx context.Context, email string) error {
	return f.auth.SendSocialEmailCode(ctx, email, f.socialToken)
}

func (f *SocialFlow) SubmitEmail(ctx context.Context) error {
	return f.submitEmail(ctx, f.send)
}

func (f *SocialFlow) Resend(ctx context.Context) error {
	return f.resend(ctx, f.send)
}

// SubmitCode verifies the code; on success the flow is Done and the
// callback runs with the response.
func (f *SocialFlow) SubmitCode(ctx context.Context) error {
	var resp models.SocialVerifyResponse
	verify := func(ctx context.Context, email, code string) error {
		var err error
		resp, err = f.auth.VerifySocialEmailCode(ctx, email, code, f.socialToken)
		return err
	}
	if err := f.submitCode(ctx, verify, markDone); err != nil {
		return err
	}

	if f.onVerified != nil {
		f.onVerified(resp, f.state.Get().Email)
	}
	return nil
}
