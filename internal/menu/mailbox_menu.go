package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"novepus/internal/dto"
	"novepus/internal/service"
)

// mailboxMenu re-renders the inbox and sent listings on every pass so a
// deletion is visible immediately.
func (m *Controller) mailboxMenu(ctx context.Context) {
	for {
		inbox, err := m.messages.Inbox(ctx, m.session.Current())
		if err != nil {
			m.abort(ctx, err)
			return
		}
		sent, err := m.messages.Sent(ctx, m.session.Current())
		if err != nil {
			m.abort(ctx, err)
			return
		}
		m.io.Notify("Displaying User Inbox")
		m.io.PrintMessageList(inbox)
		m.io.Notify("Display User Inbox Finished!")
		m.io.Notify("Displaying User Sent")
		m.io.PrintMessageList(sent)
		m.io.Notify("Display User Sent Finished!")

		m.io.ShowMailboxMenu()
		cmd := m.command()
		switch cmd {
		case "p":
			m.sendMessage(ctx)
		case "d":
			m.deleteMessage(ctx)
		case "q":
			m.io.Notify("Going Back")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) sendMessage(ctx context.Context) {
	receiver, ok := m.promptLine("Input the username of the receiver ('~' to quit)", m.existingUser(ctx))
	if !ok {
		return
	}
	m.io.Notify("You may input your Message content now")
	content := m.io.ReadText()
	input := &dto.MessageInput{Receiver: receiver, Content: content}
	if _, err := m.messages.Send(ctx, m.session.Current(), input); err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify("Sent!")
}

func (m *Controller) deleteMessage(ctx context.Context) {
	for {
		m.io.Notify("Input the 'mid' to delete ('~' to quit)")
		raw := m.io.ReadLine()
		if raw == cancelToken {
			return
		}
		mid, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			m.io.Notify("Invalid mid value!")
			continue
		}
		message, err := m.messages.Get(ctx, mid)
		if err != nil {
			if errors.Is(err, service.ErrMessageNotFound) {
				m.io.Notify(fmt.Sprintf("Message (mid=%d) does not exist! Cannot delete!", mid))
				continue
			}
			m.abort(ctx, err)
			return
		}
		if message.Sender != m.session.Current() && message.Receiver != m.session.Current() {
			m.io.Notify(fmt.Sprintf("Message (mid=%d) is not yours! Cannot delete!", mid))
			continue
		}

		m.io.PrintMessage(message)
		m.io.Notify("Are you sure to delete?")
		if !m.confirm() {
			m.io.Notify("Canceled")
			return
		}
		if err := m.messages.Delete(ctx, m.session.Current(), mid); err != nil {
			m.fail(ctx, err)
			return
		}
		m.io.Notify(fmt.Sprintf("Successfully delete Message at %s", time.Now().Format(time.ANSIC)))
		return
	}
}
