package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/client/storage"
	"github.com/dmitrijs2005/studygroups/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupStore(t *testing.T) *credentials.Store {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return openStore(t, db)
}

func openStore(t *testing.T, db *sql.DB) *credentials.Store {
	t.Helper()
	s, err := credentials.Open(context.Background(), db, nil, logging.Nop())
	require.NoError(t, err)
	return s
}

// ---- fake API client ----

type fakeClient struct {
	// outputs preset
	LoginRet        models.TokenResponse
	LoginErr        error
	SignupRet       models.TokenResponse
	SignupErr       error
	SendErr         error
	VerifyErr       error
	SocialLoginRet  models.SocialLoginResponse
	SocialLoginErr  error
	SocialVerifyRet models.SocialVerifyResponse
	SocialSignupRet models.TokenResponse
	SocialSignupErr error
	GroupRet        models.Group
	GroupPageRet    models.Page[models.Group]
	GroupErr        error
	ReviewRet       models.Review
	ReviewPageRet   models.Page[models.Review]
	ReviewErr       error
	ProfileRet      models.Profile
	ProfileErr      error
	ImageRet        models.ImageResponse
	ImageErr        error

	// inputs captured
	Calls            int
	LastLogin        models.LoginRequest
	LastSignup       models.SignupRequest
	LastSend         models.EmailSendRequest
	LastVerify       models.EmailVerifyRequest
	LastSocialSend   models.SocialEmailSendRequest
	LastSocialVerify models.SocialEmailVerifyRequest
	LastSocialSignup models.SocialSignupRequest
	LastGroupQuery   models.GroupQuery
	LastGroupID      int64
	LastGroupOp      string
	LastReview       models.ReviewRequest
	LastReviewID     int64
	LastUpdate       models.UpdateProfileRequest
	LastImageName    string
	LastImageData    []byte
}

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	f.Calls++
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error) {
	f.Calls++
	f.LastSignup = req
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) SendEmailCode(ctx context.Context, req models.EmailSendRequest) error {
	f.Calls++
	f.LastSend = req
	return f.SendErr
}

func (f *fakeClient) VerifyEmailCode(ctx context.Context, req models.EmailVerifyRequest) (models.EmailVerifyResponse, error) {
	f.Calls++
	f.LastVerify = req
	if f.VerifyErr != nil {
		return models.EmailVerifyResponse{}, f.VerifyErr
	}
	return models.EmailVerifyResponse{Verified: true}, nil
}

func (f *fakeClient) SocialLogin(ctx context.Context, req models.SocialLoginRequest) (models.SocialLoginResponse, error) {
	f.Calls++
	return f.SocialLoginRet, f.SocialLoginErr
}

func (f *fakeClient) SendSocialEmailCode(ctx context.Context, req models.SocialEmailSendRequest) error {
	f.Calls++
	f.LastSocialSend = req
	return f.SendErr
}

func (f *fakeClient) VerifySocialEmailCode(ctx context.Context, req models.SocialEmailVerifyRequest) (models.SocialVerifyResponse, error) {
	f.Calls++
	f.LastSocialVerify = req
	return f.SocialVerifyRet, f.VerifyErr
}

func (f *fakeClient) SocialSignup(ctx context.Context, req models.SocialSignupRequest) (models.TokenResponse, error) {
	f.Calls++
	f.LastSocialSignup = req
	return f.SocialSignupRet, f.SocialSignupErr
}

func (f *fakeClient) CreateGroup(ctx context.Context, req models.CreateGroupRequest) (models.Group, error) {
	f.Calls++
	f.LastGroupOp = "create"
	return f.GroupRet, f.GroupErr
}

func (f *fakeClient) SearchGroups(ctx context.Context, q models.GroupQuery) (models.Page[models.Group], error) {
	f.Calls++
	f.LastGroupQuery = q
	return f.GroupPageRet, f.GroupErr
}

func (f *fakeClient) MyGroups(ctx context.Context, page, size int) (models.Page[models.Group], error) {
	f.Calls++
	f.LastGroupQuery = models.GroupQuery{Page: page, Size: size}
	return f.GroupPageRet, f.GroupErr
}

func (f *fakeClient) groupOp(op string, id int64) error {
	f.Calls++
	f.LastGroupOp = op
	f.LastGroupID = id
	return f.GroupErr
}

func (f *fakeClient) DeleteGroup(ctx context.Context, id int64) error { return f.groupOp("delete", id) }
func (f *fakeClient) ExpireGroup(ctx context.Context, id int64) error { return f.groupOp("expire", id) }
func (f *fakeClient) JoinGroup(ctx context.Context, id int64) error   { return f.groupOp("join", id) }
func (f *fakeClient) WithdrawGroup(ctx context.Context, id int64) error {
	return f.groupOp("withdraw", id)
}

func (f *fakeClient) CreateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	f.Calls++
	f.LastReview = req
	return f.ReviewRet, f.ReviewErr
}

func (f *fakeClient) UpdateReview(ctx context.Context, id int64, req models.ReviewRequest) (models.Review, error) {
	f.Calls++
	f.LastReviewID = id
	f.LastReview = req
	return f.ReviewRet, f.ReviewErr
}

func (f *fakeClient) DeleteReview(ctx context.Context, id int64) error {
	f.Calls++
	f.LastReviewID = id
	return f.ReviewErr
}

func (f *fakeClient) SearchReviews(ctx context.Context, q models.ReviewQuery) (models.Page[models.Review], error) {
	f.Calls++
	return f.ReviewPageRet, f.ReviewErr
}

func (f *fakeClient) Profile(ctx context.Context) (models.Profile, error) {
	f.Calls++
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Profile, error) {
	f.Calls++
	f.LastUpdate = req
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UploadProfileImage(ctx context.Context, filename string, r io.Reader) (models.ImageResponse, error) {
	f.Calls++
	f.LastImageName = filename
	f.LastImageData, _ = io.ReadAll(r)
	return f.ImageRet, f.ImageErr
}

// ---- failing credential store ----

var errDiskFull = errors.New("disk full")

type failingStore struct{ saves int }

func (f *failingStore) SaveSession(ctx context.Context, token, nickname, email string) error {
	f.saves++
	return errDiskFull
}
func (f *failingStore) Apply(ctx context.Context, p credentials.Patch) error {
	f.saves++
	return errDiskFull
}
func (f *failingStore) Clear(ctx context.Context) error { return errDiskFull }
