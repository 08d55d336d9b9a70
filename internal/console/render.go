package console

import (
	"fmt"
	"strings"
	"time"

	"novepus/internal/dto"
	"novepus/internal/model"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

type userRow struct {
	ID        uint64
	Username  string
	Email     string
	IsOnline  bool
	CreatedAt time.Time
}

type postRow struct {
	ID        uint64
	Title     string
	Author    string
	Content   string
	Labels    []string
	CreatedAt time.Time
}

type messageRow struct {
	ID        uint64
	Sender    string
	Receiver  string
	Content   string
	CreatedAt time.Time
}

func orNotSet(s string) string {
	if s == "" {
		return "NOT SET"
	}
	return s
}

func (t *Terminal) PrintProfile(profile *dto.UserProfile) {
	var row userRow
	_ = copier.Copy(&row, profile.User)
	fmt.Fprintln(t.out, "------------------------------------------------------------")
	fmt.Fprintf(t.out, "| uid      | %d\n", row.ID)
	fmt.Fprintf(t.out, "| name     | %s\n", row.Username)
	fmt.Fprintf(t.out, "| email    | %s\n", orNotSet(row.Email))
	fmt.Fprintf(t.out, "| online   | %t\n", row.IsOnline)
	fmt.Fprintf(t.out, "| joined   | %s\n", row.CreatedAt.Format(timeLayout))
	fmt.Fprintf(t.out, "| interest | %s\n", orNotSet(strings.Join(profile.Interests, ", ")))
	fmt.Fprintf(t.out, "| posts    | %d\n", len(profile.User.PostIDs))
	fmt.Fprintf(t.out, "| follows  | %d followings, %d followers\n",
		len(profile.User.FollowingIDs), len(profile.User.FollowerIDs))
	fmt.Fprintln(t.out, "------------------------------------------------------------")
}

func (t *Terminal) PrintUserList(users []*model.User) {
	fmt.Fprintln(t.out, "________NAME_____________________EMAIL______________________")
	for _, user := range users {
		var row userRow
		_ = copier.Copy(&row, user)
		fmt.Fprintf(t.out, "|    %15s    ||%28s|\n", row.Username, orNotSet(row.Email))
	}
	fmt.Fprintln(t.out, "------------------------------------------------------------")
}

func (t *Terminal) postToRow(post *model.Post) postRow {
	var row postRow
	_ = copier.Copy(&row, post)
	row.Author = post.User.Username
	return row
}

func (t *Terminal) PrintPost(post *model.Post) {
	row := t.postToRow(post)
	fmt.Fprintln(t.out, "------------------------------------------------------------")
	fmt.Fprintf(t.out, "| pid    | %d\n", row.ID)
	fmt.Fprintf(t.out, "| title  | %s\n", row.Title)
	fmt.Fprintf(t.out, "| author | %s\n", row.Author)
	fmt.Fprintf(t.out, "| date   | %s\n", row.CreatedAt.Format(timeLayout))
	if len(row.Labels) > 0 {
		fmt.Fprintf(t.out, "| labels | %s\n", strings.Join(row.Labels, ", "))
	}
	fmt.Fprintln(t.out, "|--------|")
	fmt.Fprintln(t.out, strings.TrimRight(row.Content, "\n"))
	fmt.Fprintln(t.out, "------------------------------------------------------------")
}

func (t *Terminal) PrintPostList(posts []*model.Post) {
	fmt.Fprintln(t.out, "____PID_________TITLE_________________AUTHOR________________")
	for _, post := range posts {
		row := t.postToRow(post)
		fmt.Fprintf(t.out, "| %5d | %-30s | %15s |\n", row.ID, row.Title, row.Author)
	}
	fmt.Fprintln(t.out, "------------------------------------------------------------")
}

func (t *Terminal) PrintPostDetail(detail *dto.PostDetail) {
	t.PrintPost(detail.Post)
	fmt.Fprintf(t.out, "%d likes, %d comments\n", detail.Likes, len(detail.Comments))
	for _, comment := range detail.Comments {
		fmt.Fprintf(t.out, "  [%s @ %s] %s\n",
			comment.User.Username,
			comment.CreatedAt.Format(timeLayout),
			strings.TrimRight(comment.Content, "\n"))
	}
}

func (t *Terminal) PrintMessage(message *model.Message) {
	var row messageRow
	_ = copier.Copy(&row, message)
	fmt.Fprintln(t.out, "------------------------------------------------------------")
	fmt.Fprintf(t.out, "| mid  | %d\n", row.ID)
	fmt.Fprintf(t.out, "| from | %s\n", row.Sender)
	fmt.Fprintf(t.out, "| to   | %s\n", row.Receiver)
	fmt.Fprintf(t.out, "| date | %s\n", row.CreatedAt.Format(timeLayout))
	fmt.Fprintln(t.out, strings.TrimRight(row.Content, "\n"))
	fmt.Fprintln(t.out, "------------------------------------------------------------")
}

func (t *Terminal) PrintMessageList(messages []*model.Message) {
	fmt.Fprintln(t.out, "____MID_________FROM_________________TO_____________________")
	for _, message := range messages {
		var row messageRow
		_ = copier.Copy(&row, message)
		fmt.Fprintf(t.out, "| %5d | %15s | %15s | %s\n",
			row.ID, row.Sender, row.Receiver, strings.TrimRight(row.Content, "\n"))
	}
	fmt.Fprintln(t.out, "------------------------------------------------------------")
}
