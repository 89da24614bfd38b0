package commands

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cmdboard/internal/config"
	"cmdboard/internal/domain"
	"cmdboard/internal/provider"
)

// Command represents a UI operation that runs outside the update loop
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides the dependencies commands need
type CommandContext struct {
	Provider      provider.Provider
	ConfigService config.ConfigService
	FetchTimeout  time.Duration
	StatusTimeout time.Duration
}

// ItemsLoadedMsg carries the result of a mount-time fetch
type ItemsLoadedMsg struct {
	MountID string
	Items   []domain.Item
	Err     error
}

// ConfigReloadedMsg carries a configuration read back from disk
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ClearStatusMsg clears the status line if it still shows message Seq
type ClearStatusMsg struct {
	Seq int
}

// FetchItemsCommand runs the provider once for a palette mount
type FetchItemsCommand struct {
	provider provider.Provider
	timeout  time.Duration
	mountID  string
}

// NewFetchItemsCommand creates a fetch bound to mountID
func NewFetchItemsCommand(ctx *CommandContext, mountID string) *FetchItemsCommand {
	return &FetchItemsCommand{
		provider: ctx.Provider,
		timeout:  ctx.FetchTimeout,
		mountID:  mountID,
	}
}

// Execute returns the tea.Cmd performing the fetch. The result always names the
// mount it was started for, so the palette can drop it once that mount is gone.
func (c *FetchItemsCommand) Execute() tea.Cmd {
	p, timeout, mountID := c.provider, c.timeout, c.mountID
	return func() tea.Msg {
		if p == nil {
			return ItemsLoadedMsg{MountID: mountID}
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		items, err := p.FetchItems(ctx)
		log.Printf("Fetch for mount %s finished in %v (%d items, err=%v)", mountID, time.Since(start), len(items), err)
		return ItemsLoadedMsg{MountID: mountID, Items: items, Err: err}
	}
}

// ReloadConfigCommand reads the configuration file again
type ReloadConfigCommand struct {
	service config.ConfigService
}

// NewReloadConfigCommand creates a new reload command
func NewReloadConfigCommand(ctx *CommandContext) *ReloadConfigCommand {
	return &ReloadConfigCommand{service: ctx.ConfigService}
}

func (c *ReloadConfigCommand) Execute() tea.Cmd {
	service := c.service
	return func() tea.Msg {
		if service == nil {
			return ConfigReloadedMsg{Err: errNoConfigService}
		}
		cfg, err := service.Load()
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}

// ClearStatusCommand clears a status message after a delay
type ClearStatusCommand struct {
	after time.Duration
	seq   int
}

// NewClearStatusCommand creates a new clear status command
func NewClearStatusCommand(ctx *CommandContext, seq int) *ClearStatusCommand {
	return &ClearStatusCommand{after: ctx.StatusTimeout, seq: seq}
}

func (c *ClearStatusCommand) Execute() tea.Cmd {
	seq := c.seq
	return tea.Tick(c.after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
