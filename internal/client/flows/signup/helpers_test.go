package signup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/studygroups/internal/client/models"
	"github.com/stretchr/testify/require"
)

// manualTicker hands every countdown goroutine its own unbuffered channel so
// a test can deliver ticks one at a time.
type manualTicker struct {
	mu      sync.Mutex
	chans   []chan time.Time
	stopped int
}

func (m *manualTicker) new(time.Duration) (<-chan time.Time, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan time.Time)
	m.chans = append(m.chans, ch)
	return ch, func() {
		m.mu.Lock()
		m.stopped++
		m.mu.Unlock()
	}
}

func (m *manualTicker) started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chans)
}

func (m *manualTicker) stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// tick delivers one tick to the newest countdown and reports whether it was
// taken within a short wait.
func (m *manualTicker) tick() bool {
	m.mu.Lock()
	if len(m.chans) == 0 {
		m.mu.Unlock()
		return false
	}
	ch := m.chans[len(m.chans)-1]
	m.mu.Unlock()

	select {
	case ch <- time.Now():
		return true
	case <-time.After(50 * time.Millisecond):
		return false
	}
}

func waitCountdown(t *testing.T, st interface{ State() State }, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return st.State().Countdown == want },
		time.Second, time.Millisecond, "countdown did not reach %d", want)
}

// fakeAuth records calls and answers with preset results.
type fakeAuth struct {
	mu sync.Mutex

	SendErr   error
	VerifyErr error
	SignupErr error
	SignupRet models.TokenResponse
	SocialRet models.SocialVerifyResponse

	SendCalls   int
	VerifyCalls int
	SignupCalls int

	LastEmail       string
	LastCode        string
	LastSocialToken string
	LastSignup      models.SignupRequest
}

func (f *fakeAuth) SendEmailCode(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SendCalls++
	f.LastEmail = email
	return f.SendErr
}

func (f *fakeAuth) VerifyEmailCode(ctx context.Context, email, code string) (models.EmailVerifyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.VerifyCalls++
	f.LastEmail, f.LastCode = email, code
	if f.VerifyErr != nil {
		return models.EmailVerifyResponse{}, f.VerifyErr
	}
	return models.EmailVerifyResponse{Verified: true}, nil
}

func (f *fakeAuth) Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++
	f.LastSignup = req
	return f.SignupRet, f.SignupErr
}

func (f *fakeAuth) SendSocialEmailCode(ctx context.Context, email, socialToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SendCalls++
	f.LastEmail, f.LastSocialToken = email, socialToken
	return f.SendErr
}

func (f *fakeAuth) VerifySocialEmailCode(ctx context.Context, email, code, socialToken string) (models.SocialVerifyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.VerifyCalls++
	f.LastEmail, f.LastCode, f.LastSocialToken = email, code, socialToken
	if f.VerifyErr != nil {
		return models.SocialVerifyResponse{}, f.VerifyErr
	}
	return f.SocialRet, nil
}

func newFlow(t *testing.T, auth Verifier, cfg Config) (*Flow, *manualTicker) {
	t.Helper()
	mt := &manualTicker{}
	f := New(auth, cfg, WithTicker(mt.new))
	t.Cleanup(f.Close)
	return f, mt
}

// atCodeStep drives f through a successful email submit.
func atCodeStep(t *testing.T, f interface {
	SetEmail(string)
	SubmitEmail(context.Context) error
}) {
	t.Helper()
	f.SetEmail("a@inst.edu")
	require.NoError(t, f.SubmitEmail(context.Background()))
}

const (
	timeout   = time.Second
	tickEvery = time.Millisecond
)
