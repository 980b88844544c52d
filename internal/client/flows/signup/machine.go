package signup

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/observable"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// TickerFunc returns a tick channel and a stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Option customises a wizard.
type Option func(*machine)

// WithTicker replaces the wall-clock ticker driving the countdown.
func WithTicker(f TickerFunc) Option {
	return func(m *machine) { m.newTicker = f }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l logging.Logger) Option {
	return func(m *machine) { m.log = l }
}

// machine holds what both wizards share: the observable state, the email
// and code guards, and the countdown goroutine.
type machine struct {
	cfg       Config
	state     *observable.Value[State]
	newTicker TickerFunc
	log       logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
	wg     sync.WaitGroup
}

func newMachine(cfg Config, opts []Option) *machine {
	m := &machine{
		cfg:       cfg.withDefaults(),
		state:     observable.New(State{Step: EmailEntry}),
		newTicker: realTicker,
		log:       logging.Nop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// State returns the current snapshot.
func (m *machine) State() State { return m.state.Get() }

// Subscribe streams snapshots until ctx is done.
func (m *machine) Subscribe(ctx context.Context) <-chan State { return m.state.Subscribe(ctx) }

func (m *machine) set(fn func(*State)) {
	m.state.Update(func(s State) State {
		fn(&s)
		s.Error = ""
		return s
	})
}

func (m *machine) SetEmail(v string) { m.set(func(s *State) { s.Email = v }) }
func (m *machine) SetCode(v string)  { m.set(func(s *State) { s.Code = v }) }

func (m *machine) CanSubmitEmail() bool {
	s := m.state.Get()
	return s.Step == EmailEntry && IsInstitutionalEmail(s.Email, m.cfg.EmailDomain)
}

func (m *machine) CanSubmitCode() bool {
	s := m.state.Get()
	return s.Step == CodeVerification && utf8.RuneCountInString(s.Code) == m.cfg.CodeLength
}

// CanResend is true on CodeVerification once the countdown reached zero.
func (m *machine) CanResend() bool {
	s := m.state.Get()
	return s.Step == CodeVerification && s.Countdown == 0
}

// Back moves one step back from CodeVerification or ProfileCompletion. It
// makes no request and leaves the countdown running.
func (m *machine) Back() {
	m.state.Update(func(s State) State {
		if s.Step > EmailEntry && !s.Done {
			s.Step--
			s.Error = ""
		}
		return s
	})
}

// Close stops the countdown and waits for its goroutine to exit.
func (m *machine) Close() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// run marks the state loading, calls fn and records its failure.
func (m *machine) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	m.state.Update(func(s State) State {
		s.Loading = true
		s.Error = ""
		return s
	})

	err := fn(ctx)

	m.state.Update(func(s State) State {
		s.Loading = false
		if err != nil {
			s.Error = apperror.Message(err)
		}
		return s
	})
	if err != nil {
		m.log.Warn(ctx, op+" failed", "error", err)
	}
	return err
}

// submitEmail sends the code and, on success, advances to CodeVerification
// and restarts the countdown.
func (m *machine) submitEmail(ctx context.Context, send func(ctx context.Context, email string) error) error {
	if !m.CanSubmitEmail() {
		return ErrActionDisabled
	}
	email := m.state.Get().Email

	err := m.run(ctx, "send email code", func(ctx context.Context) error {
		return send(ctx, email)
	})
	if err != nil {
		return err
	}

	m.state.Update(func(s State) State {
		s.Step = CodeVerification
		return s
	})
	m.restartCountdown()
	return nil
}

func (m *machine) resend(ctx context.Context, send func(ctx context.Context, email string) error) error {
	if !m.CanResend() {
		return ErrActionDisabled
	}
	email := m.state.Get().Email

	if err := m.run(ctx, "resend email code", func(ctx context.Context) error {
		return send(ctx, email)
	}); err != nil {
		return err
	}
	m.restartCountdown()
	return nil
}

// submitCode verifies the code and applies next on success.
func (m *machine) submitCode(ctx context.Context, verify func(ctx context.Context, email, code string) error, next func(*State)) error {
	if !m.CanSubmitCode() {
		return ErrActionDisabled
	}
	s := m.state.Get()

	if err := m.run(ctx, "verify email code", func(ctx context.Context) error {
		return verify(ctx, s.Email, s.Code)
	}); err != nil {
		return err
	}

	m.apply(next)
	return nil
}

// apply runs fn on the state and stops the countdown once the session is
// done. The countdown lock is never taken while the state is locked.
func (m *machine) apply(fn func(*State)) {
	s := m.state.Update(func(s State) State {
		fn(&s)
		return s
	})
	if s.Done {
		m.stopCountdown()
	}
}

func markDone(s *State) { s.Done = true }

func (m *machine) stopCountdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// restartCountdown cancels any running countdown, resets State.Countdown and
// starts a new goroutine. Only the newest goroutine may decrement.
func (m *machine) restartCountdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
	}
	m.gen++
	gen := m.gen

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.state.Update(func(s State) State {
		s.Countdown = m.cfg.Countdown
		s.countdownGen = gen
		return s
	})

	ticks, stop := m.newTicker(m.cfg.Tick)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				s := m.state.Update(func(s State) State {
					if s.countdownGen == gen && s.Countdown > 0 {
						s.Countdown--
					}
					return s
				})
				if s.countdownGen != gen || s.Countdown == 0 {
					return
				}
			}
		}
	}()
}
