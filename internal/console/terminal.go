package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal implements Console over a line reader and a writer. The real
// process wraps stdin/stdout, tests feed a scripted reader.
type Terminal struct {
	scanner  *bufio.Scanner
	out      io.Writer
	fd       int
	identity string
}

func NewTerminal() *Terminal {
	t := NewTerminalWithIO(os.Stdin, os.Stdout)
	t.fd = int(os.Stdin.Fd())
	return t
}

func NewTerminalWithIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		scanner: bufio.NewScanner(in),
		out:     out,
		fd:      -1,
	}
}

func (t *Terminal) prompt() {
	fmt.Fprintf(t.out, "%s %% ", t.identity)
}

// line reads one raw line. EOF reads as the quit command so piped input
// unwinds every menu loop instead of spinning.
func (t *Terminal) line() string {
	if !t.scanner.Scan() {
		return "q"
	}
	return t.scanner.Text()
}

func (t *Terminal) ReadLine() string {
	for {
		t.prompt()
		line := t.line()
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
}

func (t *Terminal) ReadPassword() string {
	for {
		t.prompt()
		if t.fd >= 0 && term.IsTerminal(t.fd) {
			raw, err := term.ReadPassword(t.fd)
			fmt.Fprintln(t.out)
			if err == nil && strings.TrimSpace(string(raw)) != "" {
				return string(raw)
			}
			continue
		}
		line := t.line()
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
}

func (t *Terminal) ReadOptional() string {
	t.prompt()
	if !t.scanner.Scan() {
		return ""
	}
	return t.scanner.Text()
}

func (t *Terminal) ReadText() string {
	t.Notify("Reading multiple lines, double 'Enter' to finish")
	var text strings.Builder
	for {
		fmt.Fprintf(t.out, "%s[continue]:", t.identity)
		if !t.scanner.Scan() {
			break
		}
		line := t.scanner.Text()
		if line == "" {
			break
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}
	t.Notify("Finished!")
	return text.String()
}

func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, "Novepus >>> "+message)
}

func (t *Terminal) SetIdentity(username string) {
	t.identity = username
}
