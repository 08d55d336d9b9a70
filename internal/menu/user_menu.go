package menu

import (
	"context"
	"errors"
	"fmt"

	"novepus/internal/dto"
	"novepus/internal/service"
)

func (m *Controller) userMenu(ctx context.Context) {
	for {
		m.io.ShowUserMenu()
		cmd := m.command()
		switch cmd {
		case "i":
			m.showProfile(ctx, m.session.Current())
		case "e":
			m.editMenu(ctx)
		case "p":
			m.postMenu(ctx)
		case "w":
			m.forumMenu(ctx)
		case "s":
			m.followMenu(ctx)
		case "m":
			m.mailboxMenu(ctx)
		case "q":
			m.io.Notify("Logging out...")
			if err := m.session.Logout(ctx); err != nil {
				m.abort(ctx, err)
			}
			m.io.SetIdentity(service.GuestUser)
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) showProfile(ctx context.Context, username string) {
	profile, err := m.users.Profile(ctx, username)
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.PrintProfile(profile)
}

func (m *Controller) editMenu(ctx context.Context) {
	m.showProfile(ctx, m.session.Current())
	for {
		m.io.ShowEditMenu()
		cmd := m.command()
		switch cmd {
		case "p":
			m.resetPassword(ctx)
		case "e":
			m.resetEmail(ctx)
		case "i":
			m.addInterests(ctx)
		case "q":
			m.io.Notify("Going Back")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) resetPassword(ctx context.Context) {
	m.io.Notify("You have to input your old Password first")
	oldPassword := m.io.ReadPassword()

	var newPassword string
	for {
		m.io.Notify("Input your new Password now")
		newPassword = m.io.ReadPassword()
		m.io.Notify("Confirm your new Password (Repeat)")
		confirm := m.io.ReadPassword()
		if len(newPassword) > 15 {
			m.io.Notify("New Password oversize!")
			continue
		}
		if newPassword != confirm {
			m.io.Notify("Confirmation Failure!")
			continue
		}
		break
	}

	input := &dto.PasswordChangeInput{OldPassword: oldPassword, NewPassword: newPassword}
	err := m.users.ChangePassword(ctx, m.session.Current(), input)
	if errors.Is(err, service.ErrWrongPassword) {
		m.io.Notify("Incorrect Password! Going Back")
		return
	}
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify("Password Reset!")
}

func (m *Controller) resetEmail(ctx context.Context) {
	var email string
	for {
		m.io.Notify("Your new email")
		email = m.io.ReadOptional()
		if len(email) > 28 {
			m.io.Notify("Email oversize!")
			continue
		}
		break
	}
	if err := m.users.ChangeEmail(ctx, m.session.Current(), email); err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify("Email Reset!")
}

func (m *Controller) addInterests(ctx context.Context) {
	for {
		m.io.Notify("Input the interest word ('~' to quit)")
		label := m.io.ReadLine()
		if label == cancelToken {
			break
		}
		if err := m.users.AddInterest(ctx, m.session.Current(), label); err != nil {
			m.fail(ctx, err)
			return
		}
		m.io.Notify(fmt.Sprintf("'%s' added!", label))
	}
	m.showProfile(ctx, m.session.Current())
}
