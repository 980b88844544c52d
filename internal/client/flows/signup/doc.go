// Package signup implements the step-gated signup wizards.
//
// Flow drives general signup through three steps: EmailEntry,
// CodeVerification and ProfileCompletion. SocialFlow drives the institutional
// email check that follows a first-time social login and stops after
// CodeVerification, handing the verify response to a callback.
//
// A step only advances after the matching server call succeeds. Submitting
// an email (or resending it) restarts a countdown that decrements once per
// tick in a single background goroutine; resend is enabled only when it
// reaches zero. Every failure becomes State.Error and leaves the step as is.
package signup
