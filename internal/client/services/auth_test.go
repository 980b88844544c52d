package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success_SavesSession(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{LoginRet: models.TokenResponse{AccessToken: "tok", Nickname: "neo"}}
	svc := NewAuthService(fc, store, logging.Nop())

	resp, err := svc.Login(context.Background(), "a@inst.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)

	c := store.Current()
	assert.Equal(t, "tok", c.Token)
	assert.Equal(t, "neo", c.Nickname)
	assert.Equal(t, "a@inst.edu", c.Email, "email falls back to the submitted one")
	assert.Equal(t, models.LoginRequest{Email: "a@inst.edu", Password: "pw"}, fc.LastLogin)
}

func TestLogin_ServerError_NothingSaved(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{LoginErr: apperror.NewServer(http.StatusUnauthorized, "wrong password")}
	svc := NewAuthService(fc, store, logging.Nop())

	_, err := svc.Login(context.Background(), "a@inst.edu", "pw")
	require.Error(t, err)
	assert.Equal(t, "wrong password", apperror.Message(err))
	assert.False(t, store.Current().LoggedIn())
}

func TestLogin_InvalidEmail_NoNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, setupStore(t), logging.Nop())

	_, err := svc.Login(context.Background(), "not-an-email", "pw")
	require.Error(t, err)
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
	assert.Zero(t, fc.Calls)
}

func TestLogin_StoreFailureIsNotReturned(t *testing.T) {
	fs := &failingStore{}
	fc := &fakeClient{LoginRet: models.TokenResponse{AccessToken: "tok"}}
	svc := NewAuthService(fc, fs, logging.Nop())

	resp, err := svc.Login(context.Background(), "a@inst.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, 1, fs.saves)
}

func TestLogin_SecondAccountDropsFirstProfile(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	fc := &fakeClient{LoginRet: models.TokenResponse{AccessToken: "tok-a", Nickname: "alice"}}
	svc := NewAuthService(fc, store, logging.Nop())

	_, err := svc.Login(ctx, "alice@inst.edu", "pw")
	require.NoError(t, err)
	require.NoError(t, store.Apply(ctx, credentials.Patch{
		Major:    credentials.Str("Physics"),
		Bio:      credentials.Str("alice bio"),
		ImageURL: credentials.Str("http://img/a"),
	}))

	fc.LoginRet = models.TokenResponse{AccessToken: "tok-b", Nickname: "bob"}
	_, err = svc.Login(ctx, "bob@inst.edu", "pw")
	require.NoError(t, err)

	assert.Equal(t, credentials.Credentials{
		Token:    "tok-b",
		Nickname: "bob",
		Email:    "bob@inst.edu",
	}, store.Current())
}

func TestSignup_SavesServerToken(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{SignupRet: models.TokenResponse{AccessToken: "server-token"}}
	svc := NewAuthService(fc, store, logging.Nop())

	req := models.SignupRequest{
		Email: "a@inst.edu", Nickname: "neo",
		Password: "password1", PasswordConfirm: "password1",
	}
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	c := store.Current()
	assert.Equal(t, "server-token", c.Token)
	assert.Equal(t, "neo", c.Nickname)
	assert.Equal(t, "a@inst.edu", c.Email)
	assert.Equal(t, req, fc.LastSignup)
}

func TestSignup_PasswordMismatch_NoNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, setupStore(t), logging.Nop())

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Email: "a@inst.edu", Nickname: "neo",
		Password: "password1", PasswordConfirm: "password2",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
	assert.Zero(t, fc.Calls)
}

func TestEmailCode_Delegates(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, setupStore(t), logging.Nop())
	ctx := context.Background()

	require.NoError(t, svc.SendEmailCode(ctx, "a@inst.edu"))
	assert.Equal(t, "a@inst.edu", fc.LastSend.Email)

	resp, err := svc.VerifyEmailCode(ctx, "a@inst.edu", "123456")
	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, models.EmailVerifyRequest{Email: "a@inst.edu", Code: "123456"}, fc.LastVerify)

	fc.VerifyErr = apperror.NewServer(http.StatusBadRequest, "code mismatch")
	_, err = svc.VerifyEmailCode(ctx, "a@inst.edu", "000000")
	assert.Equal(t, "code mismatch", apperror.Message(err))
}

func TestSocialLogin_Branches(t *testing.T) {
	ctx := context.Background()

	t.Run("login saves session", func(t *testing.T) {
		store := setupStore(t)
		fc := &fakeClient{SocialLoginRet: models.SocialLoginResponse{
			Status: models.SocialStatusLogin, AccessToken: "tok", Nickname: "neo", Email: "a@inst.edu",
		}}
		svc := NewAuthService(fc, store, logging.Nop())

		resp, err := svc.SocialLogin(ctx, "google", "id-token")
		require.NoError(t, err)
		assert.Equal(t, models.SocialStatusLogin, resp.Status)
		assert.Equal(t, "tok", store.Token())
		assert.Equal(t, "a@inst.edu", store.Current().Email)
	})

	t.Run("register saves nothing", func(t *testing.T) {
		store := setupStore(t)
		fc := &fakeClient{SocialLoginRet: models.SocialLoginResponse{
			Status: models.SocialStatusRegister, SocialToken: "upstream",
		}}
		svc := NewAuthService(fc, store, logging.Nop())

		resp, err := svc.SocialLogin(ctx, "google", "id-token")
		require.NoError(t, err)
		assert.Equal(t, "upstream", resp.SocialToken)
		assert.False(t, store.Current().LoggedIn())
	})

	t.Run("unknown status", func(t *testing.T) {
		store := setupStore(t)
		fc := &fakeClient{SocialLoginRet: models.SocialLoginResponse{Status: "SUSPENDED"}}
		svc := NewAuthService(fc, store, logging.Nop())

		_, err := svc.SocialLogin(ctx, "google", "id-token")
		require.ErrorIs(t, err, ErrUnsupportedSocialStatus)
		assert.Contains(t, apperror.Message(err), "SUSPENDED")
		assert.False(t, store.Current().LoggedIn())
	})
}

func TestSocialVerificationAndSignup(t *testing.T) {
	store := setupStore(t)
	fc := &fakeClient{
		SocialVerifyRet: models.SocialVerifyResponse{SocialToken: "verified"},
		SocialSignupRet: models.TokenResponse{AccessToken: "tok", Nickname: "trinity"},
	}
	svc := NewAuthService(fc, store, logging.Nop())
	ctx := context.Background()

	require.NoError(t, svc.SendSocialEmailCode(ctx, "a@inst.edu", "upstream"))
	assert.Equal(t, "upstream", fc.LastSocialSend.SocialToken)

	v, err := svc.VerifySocialEmailCode(ctx, "a@inst.edu", "123456", "upstream")
	require.NoError(t, err)
	assert.Equal(t, "verified", v.SocialToken)

	_, err = svc.SocialSignup(ctx, models.SocialSignupRequest{SocialToken: v.SocialToken, Email: "a@inst.edu", Nickname: "trinity"})
	require.NoError(t, err)
	assert.Equal(t, "tok", store.Token())
	assert.Equal(t, "trinity", store.Current().Nickname)
}

func TestLogout(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.SaveSession(context.Background(), "tok", "neo", "a@inst.edu"))

	svc := NewAuthService(&fakeClient{}, store, logging.Nop())
	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, store.Current().LoggedIn())
	assert.Equal(t, "guest", store.Current().DisplayNickname())

	failing := NewAuthService(&fakeClient{}, &failingStore{}, logging.Nop())
	err := failing.Logout(context.Background())
	require.True(t, errors.Is(err, errDiskFull))
}
