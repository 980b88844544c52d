package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studygroups/internal/client/api"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// ErrUnsupportedSocialStatus is returned when social login reports a status
// other than models.SocialStatusLogin or models.SocialStatusRegister.
var ErrUnsupportedSocialStatus = errors.New("unsupported social login status")

// AuthService covers every authentication endpoint.
//
// Contract:
//   - Login, Signup, SocialSignup: on success save token, nickname and email.
//   - SocialLogin: saves the session only for the LOGIN status; REGISTER is
//     returned as-is so the caller can start social verification.
//   - Send*/Verify*: no local side effects.
//   - Logout: clears the credential store; no network call.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.TokenResponse, error)
	SendEmailCode(ctx context.Context, email string) error
	VerifyEmailCode(ctx context.Context, email, code string) (models.EmailVerifyResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error)

	SocialLogin(ctx context.Context, provider, token string) (models.SocialLoginResponse, error)
	SendSocialEmailCode(ctx context.Context, email, socialToken string) error
	VerifySocialEmailCode(ctx context.Context, email, code, socialToken string) (models.SocialVerifyResponse, error)
	SocialSignup(ctx context.Context, req models.SocialSignupRequest) (models.TokenResponse, error)

	Logout(ctx context.Context) error
}

type authService struct {
	client api.AuthAPI
	store  CredentialStore
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(client api.AuthAPI, store CredentialStore, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("service", "auth")}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := models.Validate(req); err != nil {
		return models.TokenResponse{}, err
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return models.TokenResponse{}, logFailure(ctx, a.log, "login", err)
	}

	a.saveSession(ctx, "login", resp, email)
	return resp, nil
}

func (a *authService) SendEmailCode(ctx context.Context, email string) error {
	req := models.EmailSendRequest{Email: email}
	if err := models.Validate(req); err != nil {
		return err
	}
	if err := a.client.SendEmailCode(ctx, req); err != nil {
		return logFailure(ctx, a.log, "send email code", err)
	}
	return nil
}

func (a *authService) VerifyEmailCode(ctx context.Context, email, code string) (models.EmailVerifyResponse, error) {
	req := models.EmailVerifyRequest{Email: email, Code: code}
	if err := models.Validate(req); err != nil {
		return models.EmailVerifyResponse{}, err
	}
	resp, err := a.client.VerifyEmailCode(ctx, req)
	if err != nil {
		return models.EmailVerifyResponse{}, logFailure(ctx, a.log, "verify email code", err)
	}
	return resp, nil
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error) {
	if err := models.Validate(req); err != nil {
		return models.TokenResponse{}, err
	}

	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		return models.TokenResponse{}, logFailure(ctx, a.log, "signup", err)
	}

	if resp.Nickname == "" {
		resp.Nickname = req.Nickname
	}
	a.saveSession(ctx, "signup", resp, req.Email)
	return resp, nil
}

func (a *authService) SocialLogin(ctx context.Context, provider, token string) (models.SocialLoginResponse, error) {
	req := models.SocialLoginRequest{Provider: provider, Token: token}
	if err := models.Validate(req); err != nil {
		return models.SocialLoginResponse{}, err
	}

	resp, err := a.client.SocialLogin(ctx, req)
	if err != nil {
		return models.SocialLoginResponse{}, logFailure(ctx, a.log, "social login", err)
	}

	switch resp.Status {
	case models.SocialStatusLogin:
		a.saveSession(ctx, "social login", models.TokenResponse{
			AccessToken: resp.AccessToken,
			Nickname:    resp.Nickname,
			Email:       resp.Email,
		}, "")
	case models.SocialStatusRegister:
	default:
		err := fmt.Errorf("%w: %q", ErrUnsupportedSocialStatus, resp.Status)
		return resp, logFailure(ctx, a.log, "social login", err)
	}
	return resp, nil
}

func (a *authService) SendSocialEmailCode(ctx context.Context, email, socialToken string) error {
	req := models.SocialEmailSendRequest{Email: email, SocialToken: socialToken}
	if err := models.Validate(req); err != nil {
		return err
	}
	if err := a.client.SendSocialEmailCode(ctx, req); err != nil {
		return logFailure(ctx, a.log, "send social email code", err)
	}
	return nil
}

func (a *authService) VerifySocialEmailCode(ctx context.Context, email, code, socialToken string) (models.SocialVerifyResponse, error) {
	req := models.SocialEmailVerifyRequest{Email: email, Code: code, SocialToken: socialToken}
	if err := models.Validate(req); err != nil {
		return models.SocialVerifyResponse{}, err
	}
	resp, err := a.client.VerifySocialEmailCode(ctx, req)
	if err != nil {
		return models.SocialVerifyResponse{}, logFailure(ctx, a.log, "verify social email code", err)
	}
	return resp, nil
}

func (a *authService) SocialSignup(ctx context.Context, req models.SocialSignupRequest) (models.TokenResponse, error) {
	if err := models.Validate(req); err != nil {
		return models.TokenResponse{}, err
	}

	resp, err := a.client.SocialSignup(ctx, req)
	if err != nil {
		return models.TokenResponse{}, logFailure(ctx, a.log, "social signup", err)
	}

	if resp.Nickname == "" {
		resp.Nickname = req.Nickname
	}
	a.saveSession(ctx, "social signup", resp, req.Email)
	return resp, nil
}

// Logout forgets the local session. The backend keeps no session state to
// revoke.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// saveSession stores resp; fallbackEmail is used when the response omits it.
func (a *authService) saveSession(ctx context.Context, op string, resp models.TokenResponse, fallbackEmail string) {
	email := resp.Email
	if email == "" {
		email = fallbackEmail
	}
	persist(ctx, a.log, op, func() error {
		return a.store.SaveSession(ctx, resp.AccessToken, resp.Nickname, email)
	})
}
