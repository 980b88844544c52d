package signup

import (
	"errors"
	"strings"
	"time"
)

// Step is the wizard position, starting at 1.
type Step int

const (
	EmailEntry Step = iota + 1
	CodeVerification
	ProfileCompletion
)

func (s Step) String() string {
	switch s {
	case EmailEntry:
		return "email"
	case CodeVerification:
		return "code"
	case ProfileCompletion:
		return "profile"
	default:
		return "unknown"
	}
}

// ErrActionDisabled is returned when a submit is attempted while its guard
// is false. No request is made.
var ErrActionDisabled = errors.New("action disabled")

// Config holds the wizard constants.
type Config struct {
	// EmailDomain is the institutional domain, compared case-insensitively.
	EmailDomain string
	CodeLength  int
	// Countdown is the resend window in ticks.
	Countdown int
	Tick      time.Duration
}

func DefaultConfig() Config {
	return Config{
		EmailDomain: "inst.edu",
		CodeLength:  6,
		Countdown:   180,
		Tick:        time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EmailDomain == "" {
		c.EmailDomain = d.EmailDomain
	}
	if c.CodeLength <= 0 {
		c.CodeLength = d.CodeLength
	}
	if c.Countdown <= 0 {
		c.Countdown = d.Countdown
	}
	if c.Tick <= 0 {
		c.Tick = d.Tick
	}
	return c
}

// State is a snapshot of one wizard session.
type State struct {
	Step Step

	Email           string
	Code            string
	Nickname        string
	Password        string
	PasswordConfirm string
	Major           string
	StudentNumber   string

	// Countdown is the remaining resend window; it never goes below zero.
	Countdown int

	Loading bool
	Error   string
	Done    bool

	// countdownGen identifies the goroutine allowed to decrement Countdown.
	countdownGen uint64
}

// IsInstitutionalEmail reports whether email has a non-empty local part and
// exactly the given domain.
func IsInstitutionalEmail(email, domain string) bool {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	local := email[:at]
	if strings.ContainsAny(local, "@ \t") {
		return false
	}
	return strings.EqualFold(email[at+1:], domain)
}
