package menu

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"novepus/internal/console"
	"novepus/internal/service"
)

const (
	cancelToken  = "~"
	confirmToken = "w"
)

// errAbort unwinds a guided flow after a storage failure has already been
// reported to the user.
var errAbort = errors.New("flow aborted")

// Controller drives the nested menu loops. Each menu reads one command,
// dispatches, and re-prompts on anything it does not recognize.
type Controller struct {
	io       console.Console
	session  *service.Session
	users    service.UserService
	posts    service.PostService
	messages service.MessageService
	follows  service.FollowService
}

func NewController(
	io console.Console,
	session *service.Session,
	users service.UserService,
	posts service.PostService,
	messages service.MessageService,
	follows service.FollowService,
) *Controller {
	return &Controller{
		io:       io,
		session:  session,
		users:    users,
		posts:    posts,
		messages: messages,
		follows:  follows,
	}
}

func (m *Controller) Run(ctx context.Context) {
	m.io.SetIdentity(service.GuestUser)
	m.io.ShowWelcome()
	m.mainMenu(ctx)
}

func (m *Controller) command() string {
	return strings.ToLower(strings.TrimSpace(m.io.ReadLine()))
}

// abort reports a storage failure and drops the current operation. The
// caller falls back to the enclosing menu.
func (m *Controller) abort(ctx context.Context, err error) {
	log.ErrorContext(ctx, "repository operation failed", "err", err)
	m.io.Notify("Operation aborted, storage trouble: " + err.Error())
}

// fail routes an operation error: rule violations are shown to the user,
// anything else counts as a storage failure.
func (m *Controller) fail(ctx context.Context, err error) {
	if service.Recoverable(err) {
		m.io.Notify(err.Error())
		return
	}
	m.abort(ctx, err)
}

// promptLine repeats one validated input step until the value passes,
// the user cancels with '~', or the validator aborts the flow.
func (m *Controller) promptLine(prompt string, validate func(value string) error) (string, bool) {
	for {
		m.io.Notify(prompt)
		value := m.io.ReadLine()
		if value == cancelToken {
			return "", false
		}
		if err := validate(value); err != nil {
			if errors.Is(err, errAbort) {
				return "", false
			}
			m.io.Notify(err.Error())
			continue
		}
		return value, true
	}
}

// existingUser validates a typed username against the repository.
func (m *Controller) existingUser(ctx context.Context) func(value string) error {
	return func(value string) error {
		exists, err := m.users.Exists(ctx, value)
		if err != nil {
			m.abort(ctx, err)
			return errAbort
		}
		if !exists {
			return errors.New("User '" + value + "' does not exist!")
		}
		return nil
	}
}

func (m *Controller) confirm() bool {
	m.io.Notify("'" + confirmToken + "' to confirm, otherwise quit")
	return m.command() == confirmToken
}
