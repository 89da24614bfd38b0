package opener

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Opener opens a URL in a new browsing context. target names the context (the item name).
type Opener interface {
	Open(url, target string) error
}

// Func adapts a function to Opener
type Func func(url, target string) error

func (f Func) Open(url, target string) error { return f(url, target) }

// Browser starts the platform URL handler, or Command when set
type Browser struct {
	Command string // e.g. `firefox --new-tab`; the URL is appended as the last argument

	start func(cmd *exec.Cmd) error
}

// NewBrowser creates a browser opener
func NewBrowser(command string) *Browser {
	return &Browser{Command: command}
}

func (b *Browser) Open(raw, target string) error {
	url := strings.TrimSpace(raw)
	if url == "" {
		return errors.New("url is required")
	}

	cmd, err := b.command(url)
	if err != nil {
		return err
	}

	start := b.start
	if start == nil {
		start = func(c *exec.Cmd) error { return c.Start() }
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func (b *Browser) command(url string) (*exec.Cmd, error) {
	if strings.TrimSpace(b.Command) != "" {
		args, err := shellquote.Split(b.Command)
		if err != nil {
			return nil, fmt.Errorf("parse browser command: %w", err)
		}
		if len(args) == 0 {
			return nil, errors.New("browser command is empty")
		}
		args = append(args, url)
		return exec.Command(args[0], args[1:]...), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return exec.Command("xdg-open", url), nil
	}
}
