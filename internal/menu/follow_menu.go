package menu

import (
	"context"
	"errors"
	"fmt"
)

func (m *Controller) followMenu(ctx context.Context) {
	profile, err := m.users.Profile(ctx, m.session.Current())
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("User '%s' follows %d users and has %d followers!",
		profile.User.Username, len(profile.User.FollowingIDs), len(profile.User.FollowerIDs)))
	for {
		m.io.ShowFollowMenu()
		cmd := m.command()
		switch cmd {
		case "v":
			m.followDetails(ctx)
		case "f":
			m.followGuide(ctx)
		case "d":
			m.unfollowGuide(ctx)
		case "p":
			m.sendMessage(ctx)
		case "q":
			m.io.Notify("Going Back")
			return
		default:
			m.io.Notify("Unrecognized Command " + cmd)
		}
	}
}

func (m *Controller) followDetails(ctx context.Context) {
	graph, err := m.follows.Graph(ctx, m.session.Current())
	if err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify(fmt.Sprintf("%d followings in total!", len(graph.Followings)))
	m.io.PrintUserList(graph.Followings)
	m.io.Notify("Display followings finished!")
	m.io.Notify(fmt.Sprintf("%d followers in total!", len(graph.Followers)))
	m.io.PrintUserList(graph.Followers)
	m.io.Notify("Display followers finished!")

	username, ok := m.promptLine("You may input the username to view details ('~' to quit)", m.existingUser(ctx))
	if !ok {
		return
	}
	m.showProfile(ctx, username)
}

func (m *Controller) followGuide(ctx context.Context) {
	username, ok := m.promptLine("Input the username of the user you want to follow ('~' to quit)", func(value string) error {
		if value == m.session.Current() {
			return errors.New("You cannot follow yourself!")
		}
		if err := m.existingUser(ctx)(value); err != nil {
			return err
		}
		following, err := m.follows.IsFollowing(ctx, m.session.Current(), value)
		if err != nil {
			m.abort(ctx, err)
			return errAbort
		}
		if following {
			return fmt.Errorf("You have already followed '%s'!", value)
		}
		return nil
	})
	if !ok {
		return
	}

	m.showProfile(ctx, username)
	m.io.Notify(fmt.Sprintf("Are you sure to follow User '%s'?", username))
	if !m.confirm() {
		m.io.Notify("Canceled")
		return
	}
	if err := m.follows.Follow(ctx, m.session.Current(), username); err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify("Followed")
}

func (m *Controller) unfollowGuide(ctx context.Context) {
	username, ok := m.promptLine("Input the username of the user you want to unfollow ('~' to quit)", func(value string) error {
		if err := m.existingUser(ctx)(value); err != nil {
			return err
		}
		following, err := m.follows.IsFollowing(ctx, m.session.Current(), value)
		if err != nil {
			m.abort(ctx, err)
			return errAbort
		}
		if !following {
			return fmt.Errorf("You have not followed '%s' yet!", value)
		}
		return nil
	})
	if !ok {
		return
	}

	m.io.Notify(fmt.Sprintf("Are you sure to unfollow User '%s'?", username))
	if !m.confirm() {
		m.io.Notify("Canceled")
		return
	}
	if err := m.follows.Unfollow(ctx, m.session.Current(), username); err != nil {
		m.fail(ctx, err)
		return
	}
	m.io.Notify("Unfollowed")
}
