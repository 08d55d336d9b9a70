package console

import (
	"novepus/internal/dto"
	"novepus/internal/model"
)

// Console is the presentation boundary the menu state machine drives. The
// core never touches the terminal directly, tests swap this for a
// scripted implementation.
type Console interface {
	// ReadLine re-prompts until a non-blank line arrives.
	ReadLine() string
	// ReadPassword reads without echo when stdin is a real terminal.
	ReadPassword() string
	// ReadOptional accepts a blank line.
	ReadOptional() string
	// ReadText collects lines until an empty line terminates the block.
	ReadText() string

	Notify(message string)
	SetIdentity(username string)

	ShowWelcome()
	ShowMainMenu()
	ShowUserMenu()
	ShowEditMenu()
	ShowPostMenu()
	ShowFollowMenu()
	ShowForumMenu()
	ShowMailboxMenu()
	ShowPostDetailMenu()

	PrintProfile(profile *dto.UserProfile)
	PrintUserList(users []*model.User)
	PrintPost(post *model.Post)
	PrintPostList(posts []*model.Post)
	PrintPostDetail(detail *dto.PostDetail)
	PrintMessage(message *model.Message)
	PrintMessageList(messages []*model.Message)
}
