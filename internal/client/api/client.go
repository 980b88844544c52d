package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
)

type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error)
	SendEmailCode(ctx context.Context, req models.EmailSendRequest) error
	VerifyEmailCode(ctx context.Context, req models.EmailVerifyRequest) (models.EmailVerifyResponse, error)

	SocialLogin(ctx context.Context, req models.SocialLoginRequest) (models.SocialLoginResponse, error)
	SendSocialEmailCode(ctx context.Context, req models.SocialEmailSendRequest) error
	VerifySocialEmailCode(ctx context.Context, req models.SocialEmailVerifyRequest) (models.SocialVerifyResponse, error)
	SocialSignup(ctx context.Context, req models.SocialSignupRequest) (models.TokenResponse, error)
}

type GroupAPI interface {
	CreateGroup(ctx context.Context, req models.CreateGroupRequest) (models.Group, error)
	SearchGroups(ctx context.Context, q models.GroupQuery) (models.Page[models.Group], error)
	MyGroups(ctx context.Context, page, size int) (models.Page[models.Group], error)
	DeleteGroup(ctx context.Context, id int64) error
	ExpireGroup(ctx context.Context, id int64) error
	JoinGroup(ctx context.Context, id int64) error
	WithdrawGroup(ctx context.Context, id int64) error
}

type ReviewAPI interface {
	CreateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error)
	UpdateReview(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
	SearchReviews(ctx context.Context, q models.ReviewQuery) (models.Page[models.Review], error)
}

type UserAPI interface {
	Profile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error)
	UploadProfileImage(ctx context.Context, filename string, r io.Reader) (models.ImageResponse, error)
}

// Client is the full backend surface.
type Client interface {
	AuthAPI
	GroupAPI
	ReviewAPI
	UserAPI
}

// TokenSource yields the bearer token to attach; "" sends no header.
type TokenSource interface {
	Token() string
}
