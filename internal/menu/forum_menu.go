package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"novepus/internal/service"
)

func (m *Controller) forumMenu(ctx context.Context) {
	for {
		m.io.ShowForumMenu()
		cmd := m.command()
		switch cmd {
		case "v":
			m.allPosts(ctx)
		case "r":
			m.interestFeed(ctx)
		case "s":
			m.selectPost(ctx)
		case "a":
			m.allUsers(ctx)
		case "p":
			m.postGuide(ctx)
		case "q":
			m.io.Notify("Going Back")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) allPosts(ctx context.Context) {
	posts, err := m.posts.AllPosts(ctx)
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("Displaying all Posts, %d in total!", len(posts)))
	m.io.PrintPostList(posts)
	m.io.Notify("Display posts finished!")
}

func (m *Controller) interestFeed(ctx context.Context) {
	if !m.requireLogin(ctx) {
		return
	}
	profile, err := m.users.Profile(ctx, m.session.Current())
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify("You are interested in [" + strings.Join(profile.Interests, ", ") + "]")
	posts, err := m.posts.InterestFeed(ctx, m.session.Current())
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("Displaying interesting Posts, %d in total!", len(posts)))
	m.io.PrintPostList(posts)
	m.io.Notify("Display interesting posts finished!")
}

func (m *Controller) allUsers(ctx context.Context) {
	users, err := m.users.AllUsers(ctx)
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("Displaying all Users, %d in total!", len(users)))
	m.io.PrintUserList(users)
	m.io.Notify("Display all Users finished!")
}

// requireLogin routes a guest through the login guide before an
// authenticated-only action.
func (m *Controller) requireLogin(ctx context.Context) bool {
	if !m.session.IsGuest() {
		return true
	}
	m.io.Notify("You must Log In first!")
	return m.loginGuide(ctx)
}

func (m *Controller) selectPost(ctx context.Context) {
	m.allPosts(ctx)
	if !m.requireLogin(ctx) {
		return
	}
	for {
		m.io.Notify("Input the 'pid' ('~' to quit)")
		raw := m.io.ReadLine()
		if raw == cancelToken {
			return
		}
		pid, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			m.io.Notify("Invalid pid value!")
			continue
		}
		if _, err := m.posts.Get(ctx, pid); err != nil {
			if errors.Is(err, service.ErrPostNotFound) {
				m.io.Notify(fmt.Sprintf("Post (pid=%d) does not exist! Cannot select!", pid))
				continue
			}
			m.abort(ctx, err)
			return
		}
		m.postDetail(ctx, pid)
		return
	}
}

func (m *Controller) postDetail(ctx context.Context, pid uint64) {
	for {
		detail, err := m.posts.Detail(ctx, pid)
		if err != nil {
			m.fail(ctx, err)
			return
		}
		m.io.PrintPostDetail(detail)
		m.io.ShowPostDetailMenu()
		cmd := m.command()
		switch cmd {
		case "l":
			if err := m.posts.Like(ctx, m.session.Current(), pid); err != nil {
				m.fail(ctx, err)
				return
			}
			m.io.Notify("Liked")
		case "c":
			m.io.Notify("You may make comment to this Post")
			content := m.io.ReadText()
			if err := m.posts.Comment(ctx, m.session.Current(), pid, content); err != nil {
				m.fail(ctx, err)
				return
			}
			m.io.Notify(fmt.Sprintf("Successfully comment on Post (pid=%d)", pid))
		case "q":
			m.io.Notify("Going Back")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}
