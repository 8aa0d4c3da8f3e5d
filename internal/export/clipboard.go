package export

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// OSC52 writes to the terminal clipboard with the OSC 52 escape sequence.
// It writes straight to the controlling terminal, bypassing the UI renderer;
// the sequence has no visible effect.
type OSC52 struct {
	// TTY defaults to /dev/tty.
	TTY string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// WriteText implements Clipboard.
func (c OSC52) WriteText(text string) error {
	path := c.TTY
	if path == "" {
		path = "/dev/tty"
	}
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	tty, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	defer tty.Close()

	seq := Sequence(text)
	term := getenv("TERM")
	if getenv("TMUX") != "" || strings.HasPrefix(term, "tmux") || strings.HasPrefix(term, "screen") {
		// tmux passthrough for allow-passthrough setups.
		if _, err := fmt.Fprintf(tty, "\x1bPtmux;\x1b%s\x1b\\", seq); err != nil {
			return fmt.Errorf("write tmux passthrough: %w", err)
		}
	}
	if _, err := tty.WriteString(seq); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

// Sequence returns the OSC 52 set-clipboard sequence for text, terminated
// with BEL.
func Sequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}
