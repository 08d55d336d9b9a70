package console

import (
	"fmt"
)

func (t *Terminal) ShowWelcome() {
	fmt.Fprintln(t.out, `
    _   __
   / | / /___ _   _____  ____  __  _______
  /  |/ / __ \ | / / _ \/ __ \/ / / / ___/
 / /|  / /_/ / |/ /  __/ /_/ / /_/ (__  )
/_/ |_/\____/|___/\___/ .___/\__,_/____/
                     /_/`)
}

func (t *Terminal) ShowMainMenu() {
	fmt.Fprintln(t.out, `_______________________________________________
        [        Main Menu            ]
        |    'r'    to     New User   |
        |    'l'    to      Log In    |
        |    'w'    to      Forum     |
        |    'q'    to      Exit      |
-----------------------------------------------`)
}

func (t *Terminal) ShowUserMenu() {
	fmt.Fprintf(t.out, `_______________________________________________
                 User Center  [%s]
        |    'i'     to    Basic Info |
        |    'e'     to      Edit     |
        |    'p'     to      Post     |
        |    'w'     to      Forum    |
        |    's'     to     Follows   |
        |    'm'     to     MailBox   |
        |    'q'     to     Log Out   |
-----------------------------------------------
`, t.identity)
}

func (t *Terminal) ShowEditMenu() {
	fmt.Fprintf(t.out, `_______________________________________________
                 Edit Profile [%s]
        |    'p'    to  Reset Password|
        |    'e'    to   Reset Email  |
        |    'i'    to  Add Interests |
        |    'q'    to     Go Back    |
-----------------------------------------------
`, t.identity)
}

func (t *Terminal) ShowPostMenu() {
	fmt.Fprintf(t.out, `_______________________________________________
                 Post Center  [%s]
        |    'p'    to     New Post   |
        |    'v'    to    View Mine   |
        |    'w'    to      Forum     |
        |    'd'    to      Delete    |
        |    'q'    to     Go Back    |
-----------------------------------------------
`, t.identity)
}

func (t *Terminal) ShowFollowMenu() {
	fmt.Fprintf(t.out, `_______________________________________________
               Social Option [%s]
        |    'v'    to   View Details |
        |    'f'    to      Follow    |
        |    'd'    to     Unfollow   |
        |    'p'    to  Send Message  |
        |    'q'    to     Go Back    |
-----------------------------------------------
`, t.identity)
}

func (t *Terminal) ShowForumMenu() {
	fmt.Fprintf(t.out, `_______________________________________________
                World Forum  [%s]
        |    'v'    to   View Recent  |
        |    'r'    to   Recommends   |
        |    's'    to     Search     |
        |    'a'    to    All Users   |
        |    'p'    to      Post      |
        |    'q'    to    Go Back     |
-----------------------------------------------
`, t.identity)
}

func (t *Terminal) ShowMailboxMenu() {
	fmt.Fprintf(t.out, `_______________________________________________
                  MailBox    [%s]
        |    'p'    to  Send Message  |
        |    'd'    to     Delete     |
        |    'q'    to    Go Back     |
-----------------------------------------------
`, t.identity)
}

func (t *Terminal) ShowPostDetailMenu() {
	fmt.Fprintln(t.out, `_______________________________________________
        |    'l'    to     Like       |
        |    'c'    to    Comment     |
        |    'q'    to    Go Back     |
-----------------------------------------------`)
}
