package util

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/replit/otable/internal/config"
)

// ProgressMsg prints msg prefixed with an arrow unless --quiet was
// given.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Println("-->", msg)
	}
}

// QuoteCmd renders cmd as a shell command line for progress messages.
// Arguments containing newlines are elided.
func QuoteCmd(cmd []string) string {
	cleanedCmd := make([]string, len(cmd))
	copy(cleanedCmd, cmd)
	for i := range cmd {
		if strings.ContainsRune(cmd[i], '\n') {
			cleanedCmd[i] = "<multi-line argument>"
		}
	}
	return shellquote.Join(cleanedCmd...)
}
