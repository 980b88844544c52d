package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &out)
	return out, err
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signup", nil, req, &out)
	return out, err
}

func (c *HTTPClient) SendEmailCode(ctx context.Context, req models.EmailSendRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/email/send", nil, req, nil)
}

func (c *HTTPClient) VerifyEmailCode(ctx context.Context, req models.EmailVerifyRequest) (models.EmailVerifyResponse, error) {
	// the body is not read: the server answers 2xx only for a matching code
	if err := c.doJSON(ctx, http.MethodPost, "/auth/email/verify", nil, req, nil); err != nil {
		return models.EmailVerifyResponse{}, err
	}
	return models.EmailVerifyResponse{Verified: true}, nil
}

func (c *HTTPClient) SocialLogin(ctx context.Context, req models.SocialLoginRequest) (models.SocialLoginResponse, error) {
	var out models.SocialLoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/social/login", nil, req, &out)
	return out, err
}

func (c *HTTPClient) SendSocialEmailCode(ctx context.Context, req models.SocialEmailSendRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/social/email/send", nil, req, nil)
}

func (c *HTTPClient) VerifySocialEmailCode(ctx context.Context, req models.SocialEmailVerifyRequest) (models.SocialVerifyResponse, error) {
	var out models.SocialVerifyResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/social/email/verify", nil, req, &out)
	return out, err
}

func (c *HTTPClient) SocialSignup(ctx context.Context, req models.SocialSignupRequest) (models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/social/signup", nil, req, &out)
	return out, err
}
