package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	SocialLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Groups(ctx context.Context, args []string) error
	More(ctx context.Context) error
	MyGroups(ctx context.Context) error
	CreateGroup(ctx context.Context) error
	Join(ctx context.Context, id int64) error
	Withdraw(ctx context.Context, id int64) error
	Expire(ctx context.Context, id int64) error
	DeleteGroup(ctx context.Context, id int64) error

	Reviews(ctx context.Context, kind string, id int64) error
	AddReview(ctx context.Context) error
	EditReview(ctx context.Context, id int64) error
	DeleteReview(ctx context.Context, id int64) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
}

// runREPL starts a read-eval-print loop over reader.
//
// It parses the first token of each line as the command and dispatches to
// methods on 'a'. Handler errors are printed and the loop continues. The loop
// exits on EOF, on ctx cancellation or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Always:
//	  - help                       - show available commands
//	  - groups [-c id] [keyword]   - search recruiting groups
//	  - more                       - next page of the last list
//	  - reviews group|user <id>    - list reviews
//	  - whoami                     - show the stored identity
//	  - exit | quit                - leave the program
//
//	Not logged in:
//	  - register                   - sign up with an institutional email
//	  - login                      - email and password
//	  - sociallogin                - sign in with a provider token
//
//	Logged in:
//	  - mygroups, creategroup
//	  - join | withdraw | expire | delete <group id>
//	  - addreview, editreview <id>, deletereview <id>
//	  - profile, editprofile, avatar <path>
//	  - logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("sg%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", apperror.Message(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: groups, more, mygroups, creategroup, join, withdraw, expire, delete, " +
				"reviews, addreview, editreview, deletereview, profile, editprofile, avatar, whoami, logout, exit")
		} else {
			printlnFn("Available commands: register, login, sociallogin, groups, more, reviews, whoami, exit")
		}

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "sociallogin":
		return a.SocialLogin(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)

	case "groups":
		return a.Groups(ctx, args)
	case "more":
		return a.More(ctx)
	case "mygroups":
		return a.MyGroups(ctx)
	case "creategroup":
		return a.CreateGroup(ctx)
	case "join", "withdraw", "expire", "delete":
		id, ok := parseID(cmd, args)
		if !ok {
			return nil
		}
		switch cmd {
		case "join":
			return a.Join(ctx, id)
		case "withdraw":
			return a.Withdraw(ctx, id)
		case "expire":
			return a.Expire(ctx, id)
		default:
			return a.DeleteGroup(ctx, id)
		}

	case "reviews":
		if len(args) != 2 {
			printlnFn("Usage: reviews group|user <id>")
			return nil
		}
		id, ok := parseID("reviews "+args[0], args[1:])
		if !ok {
			return nil
		}
		return a.Reviews(ctx, args[0], id)
	case "addreview":
		return a.AddReview(ctx)
	case "editreview", "deletereview":
		id, ok := parseID(cmd, args)
		if !ok {
			return nil
		}
		if cmd == "editreview" {
			return a.EditReview(ctx, id)
		}
		return a.DeleteReview(ctx, id)

	case "profile":
		return a.Profile(ctx)
	case "editprofile":
		return a.EditProfile(ctx)
	case "avatar":
		if len(args) != 1 {
			printlnFn("Usage: avatar <path>")
			return nil
		}
		return a.Avatar(ctx, args[0])

	default:
		printlnFn("Unknown command:", cmd)
	}
	return nil
}

// parseID reads a positive id from args[0], printing usage when it is
// missing or malformed.
func parseID(cmd string, args []string) (int64, bool) {
	if len(args) == 1 {
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil && id > 0 {
			return id, true
		}
	}
	printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
	return 0, false
}
