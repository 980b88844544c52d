package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/studygroups/internal/client/api"
	"github.com/dmitrijs2005/studygroups/internal/client/config"
	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/groups"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/reviews"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/session"
	"github.com/dmitrijs2005/studygroups/internal/client/flows/signup"
	"github.com/dmitrijs2005/studygroups/internal/client/services"
	"github.com/dmitrijs2005/studygroups/internal/common"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// App is the interactive client. It owns one holder per screen; the review
// holder is replaced whenever a different review list is opened.
type App struct {
	config *config.Config
	store  *credentials.Store
	log    logging.Logger

	auth      services.AuthService
	reviewSvc services.ReviewService

	session *session.Holder
	profile *session.Profile
	browser *groups.Browser
	mine    *groups.Mine
	reviews *reviews.Holder

	// more loads and prints the next page of the list shown last.
	more func(ctx context.Context) error

	signup     signup.Config
	signupOpts []signup.Option

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp builds the services on top of client and store and the screen
// holders on top of the services.
func NewApp(c *config.Config, store *credentials.Store, client api.Client, log logging.Logger) *App {
	return newApp(c, store,
		services.NewAuthService(client, store, log),
		services.NewGroupService(client, log),
		services.NewReviewService(client, log),
		services.NewUserService(client, store, log),
		log,
	)
}

func newApp(c *config.Config, store *credentials.Store, auth services.AuthService, gs services.GroupService,
	rs services.ReviewService, us services.UserService, log logging.Logger) *App {
	return &App{
		config:    c,
		store:     store,
		log:       log,
		auth:      auth,
		reviewSvc: rs,
		session:   session.New(auth, log),
		profile:   session.NewProfile(us, log),
		browser:   groups.NewBrowser(gs, c.PageSize, log),
		mine:      groups.NewMine(gs, c.PageSize, log),
		signup: signup.Config{
			EmailDomain: c.EmailDomain,
			CodeLength:  c.CodeLength,
			Countdown:   c.CountdownSeconds(),
			Tick:        time.Second,
		},
		signupOpts: []signup.Option{signup.WithLogger(log)},
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		now:        time.Now,
	}
}

// Run checks the stored session and then serves commands until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.println("Study groups client (type 'help' for commands)")

	if err := a.store.CheckSession(a.now()); errors.Is(err, common.ErrTokenExpired) {
		a.println("Your session has expired, please log in again")
		if err := a.session.Logout(ctx); err != nil {
			a.log.Error(ctx, "clear expired session", "error", err)
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.store.Current().LoggedIn()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.store.Current().DisplayNickname())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) prompt(text string) (string, error) {
	return askLine(a.reader, a.out, text)
}
