package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"novepus/internal/dto"
	"novepus/internal/service"
)

func (m *Controller) mainMenu(ctx context.Context) {
	for {
		m.io.ShowMainMenu()
		cmd := m.command()
		switch cmd {
		case "r":
			m.registerGuide(ctx)
		case "l":
			if m.loginGuide(ctx) {
				m.userMenu(ctx)
			}
		case "w":
			m.forumMenu(ctx)
		case "q":
			m.io.Notify("Quit session")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) registerGuide(ctx context.Context) {
	username, ok := m.promptLine("Input your Username ('~' to quit)", func(value string) error {
		if len(value) > 15 {
			return errors.New("Username oversize!")
		}
		exists, err := m.users.Exists(ctx, value)
		if err != nil {
			m.abort(ctx, err)
			return errAbort
		}
		if exists {
			return errors.New(value + " has been taken!")
		}
		return nil
	})
	if !ok {
		return
	}

	var password string
	for {
		m.io.Notify("Input your Password")
		password = m.io.ReadPassword()
		m.io.Notify("Confirm your Password (Repeat)")
		confirm := m.io.ReadPassword()
		if password != confirm {
			m.io.Notify("Confirmation Failure!")
			continue
		}
		if len(password) > 15 {
			m.io.Notify("Password oversize!")
			continue
		}
		break
	}

	var email string
	for {
		m.io.Notify("Your email (optional)")
		email = m.io.ReadOptional()
		if len(email) > 28 {
			m.io.Notify("Email oversize!")
			continue
		}
		break
	}

	input := &dto.RegisterInput{Username: username, Password: password, Email: email}
	if _, err := m.users.Register(ctx, input); err != nil {
		// ErrNameTaken can still fire here when a concurrent session
		// grabbed the name after the prompt check.
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("New User '%s' finished registration at %s",
		username, time.Now().Format(time.ANSIC)))
}

func (m *Controller) loginGuide(ctx context.Context) bool {
	for {
		username, ok := m.promptLine("Input your Username ('~' to quit)", m.existingUser(ctx))
		if !ok {
			return false
		}
		m.io.Notify("Input Password for " + username)
		password := m.io.ReadPassword()
		err := m.session.Login(ctx, username, password)
		if err == nil {
			m.io.SetIdentity(username)
			m.io.Notify("Successfully Log In As " + username)
			m.io.Notify("Welcome!")
			return true
		}
		if service.Recoverable(err) {
			m.io.Notify("Incorrect Password!")
			continue
		}
		m.abort(ctx, err)
		return false
	}
}
