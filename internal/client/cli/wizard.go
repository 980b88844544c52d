package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studygroups/internal/client/flows/signup"
)

// wizard is the email and code part shared by signup.Flow and
// signup.SocialFlow.
type wizard interface {
	State() signup.State
	SetEmail(v string)
	SetCode(v string)
	CanSubmitEmail() bool
	CanSubmitCode() bool
	CanResend() bool
	SubmitEmail(ctx context.Context) error
	Resend(ctx context.Context) error
	SubmitCode(ctx context.Context) error
	Back()
}

// verifyEmail drives w through email entry and code verification. It returns
// false when the user cancels with an empty answer.
func (a *App) verifyEmail(ctx context.Context, w wizard) (bool, error) {
	for {
		s := w.State()
		if s.Done || s.Step == signup.ProfileCompletion {
			return true, nil
		}

		switch s.Step {
		case signup.EmailEntry:
			email, err := a.prompt(fmt.Sprintf("Enter your @%s email (empty to cancel)", a.signup.EmailDomain))
			if err != nil {
				return false, err
			}
			if email == "" {
				return false, nil
			}
			w.SetEmail(email)
			if !w.CanSubmitEmail() {
				a.println(fmt.Sprintf("Error: use an address ending in @%s", a.signup.EmailDomain))
				continue
			}
			if err := w.SubmitEmail(ctx); err != nil {
				a.println("Error:", w.State().Error)
				continue
			}
			a.println("Verification code sent to", email)

		case signup.CodeVerification:
			in, err := a.prompt(fmt.Sprintf("Enter the %d-digit code ('resend', 'back', empty to cancel) %s",
				a.signup.CodeLength, resendHint(s.Countdown)))
			if err != nil {
				return false, err
			}

			switch strings.ToLower(in) {
			case "":
				return false, nil
			case "back":
				w.Back()
			case "resend":
				if !w.CanResend() {
					a.println("Resend available in", clock(w.State().Countdown))
					continue
				}
				if err := w.Resend(ctx); err != nil {
					a.println("Error:", w.State().Error)
					continue
				}
				a.println("Code sent again")
			default:
				w.SetCode(in)
				if !w.CanSubmitCode() {
					a.println(fmt.Sprintf("Error: the code has %d digits", a.signup.CodeLength))
					continue
				}
				if err := w.SubmitCode(ctx); err != nil {
					a.println("Error:", w.State().Error)
				}
			}

		default:
			return false, fmt.Errorf("unexpected signup step %s", s.Step)
		}
	}
}

func resendHint(countdown int) string {
	if countdown == 0 {
		return "[resend available]"
	}
	return fmt.Sprintf("[resend in %s]", clock(countdown))
}

// clock formats seconds as m:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
