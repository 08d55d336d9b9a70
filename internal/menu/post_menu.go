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

func (m *Controller) postMenu(ctx context.Context) {
	for {
		m.io.ShowPostMenu()
		cmd := m.command()
		switch cmd {
		case "p":
			m.postGuide(ctx)
		case "v":
			m.myPosts(ctx)
		case "w":
			m.forumMenu(ctx)
		case "d":
			m.deletePost(ctx)
		case "q":
			m.io.Notify("Going Back")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) postGuide(ctx context.Context) {
	if m.session.IsGuest() {
		m.io.Notify("You must Log In before posting")
		if !m.loginGuide(ctx) {
			return
		}
	}

	title, ok := m.promptLine("Input the title ('~' to quit)", func(value string) error {
		if len(value) > 30 {
			return errors.New("Title oversize!")
		}
		return nil
	})
	if !ok {
		return
	}

	m.io.Notify("You may input the content now")
	content := m.io.ReadText()
	if !m.confirm() {
		m.io.Notify("Leaving")
		return
	}

	var labels []string
	for {
		m.io.Notify("You may add several label to your Post ('~' to finish)")
		label := m.io.ReadLine()
		if label == cancelToken {
			break
		}
		labels = append(labels, label)
		m.io.Notify(fmt.Sprintf("'%s' added!", label))
	}

	input := &dto.PostInput{Title: title, Content: content, Labels: labels}
	post, err := m.posts.Create(ctx, m.session.Current(), input)
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("User '%s' creates a new Post '%s' at %s",
		m.session.Current(), post.Title, time.Now().Format(time.ANSIC)))
}

func (m *Controller) myPosts(ctx context.Context) {
	posts, err := m.posts.MyPosts(ctx, m.session.Current())
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("%d Posts in total!", len(posts)))
	m.io.PrintPostList(posts)
	m.io.Notify("Display posts finished!")
}

func (m *Controller) deletePost(ctx context.Context) {
	m.myPosts(ctx)
	for {
		m.io.Notify("Input the 'pid' to delete ('~' to quit)")
		raw := m.io.ReadLine()
		if raw == cancelToken {
			return
		}
		pid, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			m.io.Notify("Invalid pid value!")
			continue
		}
		err = m.posts.Delete(ctx, m.session.Current(), pid)
		switch {
		case err == nil:
			m.io.Notify(fmt.Sprintf("Successfully delete Post (pid=%d) at %s",
				pid, time.Now().Format(time.ANSIC)))
			return
		case errors.Is(err, service.ErrPostNotFound):
			m.io.Notify(fmt.Sprintf("Post (pid=%d) does not exist! Cannot delete!", pid))
		case errors.Is(err, service.ErrNotOwner):
			m.io.Notify(fmt.Sprintf("Post (pid=%d) is not yours! Cannot delete!", pid))
		default:
			m.abort(ctx, err)
			return
		}
	}
}
