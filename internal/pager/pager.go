// Package pager writes text to stdout, handing it to a pager when it is
// too wide for the terminal.
package pager

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/replit/otable/internal/config"
	"github.com/replit/otable/internal/util"
	"golang.org/x/term"
)

// defaultPager is used when $PAGER is unset. -S truncates long lines
// and allows horizontal scrolling.
var defaultPager = []string{"less", "-S"}

// Width returns the width of the widest line of text in terminal cells.
func Width(text string) int {
	width := 0
	for _, line := range strings.Split(text, "\n") {
		width = max(width, runewidth.StringWidth(line))
	}
	return width
}

// Command returns the pager command line, from $PAGER when it is set.
func Command() ([]string, error) {
	env := os.Getenv("PAGER")
	if strings.TrimSpace(env) == "" {
		return defaultPager, nil
	}
	cmd, err := shellquote.Split(env)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing $PAGER %q", env)
	}
	return cmd, nil
}

// PrintOrPage either prints text to stdout or pipes it through the
// pager. The pager is used only if stdout is connected to a terminal,
// the text is wider than the terminal, the pager is installed and
// --no-pager was not given.
func PrintOrPage(text string) error {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if config.NoPager || err != nil || Width(text) < termWidth {
		_, err := fmt.Print(text)
		return err
	}

	cmd, err := Command()
	if err != nil {
		return err
	}
	path, err := exec.LookPath(cmd[0])
	if err != nil {
		_, err := fmt.Print(text)
		return err
	}

	util.ProgressMsg(util.QuoteCmd(cmd))

	pager := exec.Cmd{
		Path: path,
		Args: cmd,
		// less does not pick up a UTF-8 charset from the
		// environment everywhere (Docker in particular), and
		// would show the box-drawing characters as escapes.
		Env:    append(os.Environ(), "LESSCHARSET=utf-8"),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	stdin, err := pager.StdinPipe()
	if err != nil {
		return errors.Wrap(err, "connecting pipe to pager stdin")
	}
	if err := pager.Start(); err != nil {
		return errors.Wrap(err, "starting pager")
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		return errors.Wrap(err, "writing to pager")
	}
	if err := stdin.Close(); err != nil {
		return errors.Wrap(err, "closing pipe to pager stdin")
	}
	return errors.Wrap(pager.Wait(), "running pager")
}
