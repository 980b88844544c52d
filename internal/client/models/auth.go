package models

// Social login outcomes reported in SocialLoginResponse.Status.
const (
	SocialStatusLogin    = "LOGIN"
	SocialStatusRegister = "REGISTER"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by every call that opens a session.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
}

// SignupRequest completes the general signup wizard. PasswordConfirm is only
// checked locally.
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Nickname        string `json:"nickname" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"-" validate:"required,eqfield=Password"`
	Major           string `json:"major,omitempty"`
	StudentNumber   string `json:"studentNumber,omitempty"`
}

type EmailSendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type EmailVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type EmailVerifyResponse struct {
	Verified bool `json:"verified"`
}

// SocialLoginRequest exchanges an identity-provider token for a session.
type SocialLoginRequest struct {
	Provider string `json:"provider" validate:"required"`
	Token    string `json:"token" validate:"required"`
}

// SocialLoginResponse carries a session when Status is SocialStatusLogin and
// an upstream SocialToken to continue verification when it is
// SocialStatusRegister.
type SocialLoginResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"accessToken,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	Email       string `json:"email,omitempty"`
	SocialToken string `json:"socialToken,omitempty"`
}

type SocialEmailSendRequest struct {
	Email       string `json:"email" validate:"required,email"`
	SocialToken string `json:"socialToken" validate:"required"`
}

type SocialEmailVerifyRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	SocialToken string `json:"socialToken" validate:"required"`
}

// SocialVerifyResponse carries the token that authorises SocialSignup for the
// verified institutional email.
type SocialVerifyResponse struct {
	SocialToken string `json:"socialToken"`
}

type SocialSignupRequest struct {
	SocialToken   string `json:"socialToken" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Nickname      string `json:"nickname" validate:"required"`
	Major         string `json:"major,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
}
