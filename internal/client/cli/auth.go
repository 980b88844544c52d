package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/signup"
	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/dmitrijs2005/studygroups/internal/common"
)

// getPassword is swapped in tests; the terminal is not available there.
var getPassword = askSecret

// Login prompts for email and password and signs in. The password byte
// slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	a.println("Welcome,", a.store.Current().DisplayNickname())
	return nil
}

// SocialLogin exchanges a provider token. A first-time account goes through
// institutional email verification and then social signup.
func (a *App) SocialLogin(ctx context.Context) error {
	provider, err := a.prompt("Provider (google, kakao, naver)")
	if err != nil {
		return err
	}
	token, err := a.prompt("Provider access token")
	if err != nil {
		return err
	}

	if err := a.session.SocialLogin(ctx, provider, token); err != nil {
		return err
	}

	st := a.session.State()
	if st.LoggedIn {
		a.println("Welcome,", a.store.Current().DisplayNickname())
		return nil
	}
	if !st.NeedsVerification {
		return nil
	}

	a.println(fmt.Sprintf("No account is linked to this %s login yet. Verify your @%s email to create one.",
		st.Provider, a.signup.EmailDomain))

	var (
		verified models.SocialVerifyResponse
		email    string
	)
	f := signup.NewSocial(a.auth, st.SocialToken, func(resp models.SocialVerifyResponse, e string) {
		verified, email = resp, e
	}, a.signup, a.signupOpts...)
	defer f.Close()

	ok, err := a.verifyEmail(ctx, f)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}

	nickname, err := a.prompt("Nickname")
	if err != nil {
		return err
	}
	major, err := a.prompt("Major (optional)")
	if err != nil {
		return err
	}
	studentNumber, err := a.prompt("Student number (optional)")
	if err != nil {
		return err
	}

	if err := a.session.SocialSignup(ctx, verified, email, nickname, major, studentNumber); err != nil {
		return err
	}
	a.println("Welcome,", a.store.Current().DisplayNickname())
	return nil
}

// Register runs the general signup wizard: institutional email, code, then
// profile. An empty answer at any prompt of the first two steps cancels.
func (a *App) Register(ctx context.Context) error {
	f := signup.New(a.auth, a.signup, a.signupOpts...)
	defer f.Close()

	for {
		ok, err := a.verifyEmail(ctx, f)
		if err != nil {
			return err
		}
		if !ok {
			a.println("Cancelled")
			return nil
		}

		back, err := a.completeProfile(ctx, f)
		if err != nil {
			return err
		}
		if !back {
			break
		}
		f.Back()
	}

	a.println("Account created. Welcome,", a.store.Current().DisplayNickname())
	return nil
}

// completeProfile fills in and submits the last step. It reports back=true
// when the user typed "back" at the nickname prompt.
func (a *App) completeProfile(ctx context.Context, f *signup.Flow) (back bool, err error) {
	for {
		nickname, err := a.prompt("Nickname ('back' to change the code)")
		if err != nil {
			return false, err
		}
		if nickname == "back" {
			return true, nil
		}

		password, err := getPassword(a.out, "Password")
		if err != nil {
			return false, err
		}
		confirm, err := getPassword(a.out, "Repeat password")
		if err != nil {
			common.WipeByteArray(password)
			return false, err
		}
		f.SetPassword(string(password))
		f.SetPasswordConfirm(string(confirm))
		common.WipeByteArray(password)
		common.WipeByteArray(confirm)

		major, err := a.prompt("Major (optional)")
		if err != nil {
			return false, err
		}
		studentNumber, err := a.prompt("Student number (optional)")
		if err != nil {
			return false, err
		}

		f.SetNickname(nickname)
		f.SetMajor(major)
		f.SetStudentNumber(studentNumber)

		if !f.CanSubmitProfile() {
			s := f.State()
			a.println("Error:", profileProblem(s))
			continue
		}

		if err := f.SubmitProfile(ctx); err != nil {
			a.println("Error:", f.State().Error)
			continue
		}
		return false, nil
	}
}

func profileProblem(s signup.State) string {
	err := models.Validate(models.SignupRequest{
		Email:           s.Email,
		Nickname:        s.Nickname,
		Password:        s.Password,
		PasswordConfirm: s.PasswordConfirm,
	})
	if err == nil {
		return "profile is incomplete"
	}
	return apperror.Message(err)
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// WhoAmI prints the stored identity and when the session token expires.
func (a *App) WhoAmI(context.Context) error {
	c := a.store.Current()

	switch err := a.store.CheckSession(a.now()); {
	case errors.Is(err, common.ErrNotLoggedIn):
		a.println("Not logged in, browsing as", c.DisplayNickname())
		return nil
	case errors.Is(err, common.ErrTokenExpired):
		a.println(c.DisplayNickname(), "- session expired, please log in again")
		return nil
	}

	a.println(fmt.Sprintf("%s <%s>", c.DisplayNickname(), c.Email))
	if c.Major != "" {
		a.println("Major:", c.Major)
	}
	if exp, ok, err := credentials.TokenExpiry(c.Token); err == nil && ok {
		a.println("Session valid until", exp.Local().Format(time.DateTime))
	}
	return nil
}
