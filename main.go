package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"cmdboard/internal/config"
	"cmdboard/internal/eventbus"
	"cmdboard/internal/provider"
	"cmdboard/internal/ui"
	"cmdboard/internal/ui/palette"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "cmdboard",
		Usage:   "a dashboard of links with a searchable command palette",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config.toml (default: user config dir)",
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "signed-in user, overrides the config",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every domain event",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "validate the config and run the item fetch once",
				Action: runCheck,
			},
			{
				Name:   "init",
				Usage:  "write the default config if none exists",
				Action: runInit,
			},
		},
		Action: runUI,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "cmdboard: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config named by --config and applies --user
func loadConfig(cmd *cli.Command, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(cmd.String("config"), bus)
	} else {
		svc = config.NewConfigService(cmd.String("config"))
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if user := cmd.String("user"); user != "" {
		cfg.User = user
	}
	return cfg, svc, nil
}

// setupLogging sends the standard logger to a rotating file
func setupLogging(cfg *config.Config) io.Closer {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}
	rot := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
	log.SetOutput(rot)
	return rot
}

func runUI(ctx context.Context, cmd *cli.Command) error {
	// Create event bus
	var bus eventbus.EventBus
	if cmd.Bool("debug") {
		bus = eventbus.NewVerbose()
	} else {
		bus = eventbus.New()
	}

	cfg, configSvc, err := loadConfig(cmd, bus)
	if err != nil {
		return err
	}
	logFile := setupLogging(cfg)
	defer logFile.Close()
	log.Printf("cmdboard %s starting (config %s)", version, configSvc.Path())

	if err := palette.CatalogFromConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", configSvc.Path(), err)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, ui.Options{ConfigService: configSvc})

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	var unsubscribe []func()
	for _, t := range []eventbus.EventType{
		eventbus.EventFetchFailed,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, forward))
	}
	unsubscribe = append(unsubscribe,
		bus.Subscribe(eventbus.EventItemsFetched, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ItemsFetchedEvent); ok {
				log.Printf("Mount %s received %d items", event.MountID, event.Count)
			}
		}),
		bus.Subscribe(eventbus.EventURLOpened, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.URLOpenedEvent); ok && event.Err == nil {
				log.Printf("Opened %s (%s)", event.URL, event.Target)
			}
		}),
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
				log.Printf("Config loaded from %s (user %q)", event.Path, event.User)
			}
		}),
	)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	_, statErr := os.Stat(configSvc.Path())
	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: statErr == nil})
	if os.Getenv("CMDBOARD_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	_, runErr := p.Run()

	// Cleanup
	for _, unsub := range unsubscribe {
		unsub()
	}
	bus.Close()
	close(eventChan)

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", runErr)
		return runErr
	}
	log.Printf("UI exited normally")
	return nil
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	cfg, svc, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	out := cmd.Root().Writer

	catalog := palette.CatalogFromConfig(cfg)
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", svc.Path(), err)
	}
	fmt.Fprintf(out, "config: %s\n", svc.Path())
	fmt.Fprintf(out, "links: %d, commands: %d, repos: %d, team members: %d\n",
		len(catalog.Links), len(catalog.Commands), len(catalog.Repos), len(catalog.Teams))
	if cfg.User == "" {
		fmt.Fprintln(out, "warning: no user set, the palette hotkey stays disabled")
	}

	p := provider.FromConfig(cfg)
	if p.Len() == 0 {
		fmt.Fprintln(out, "fetch: no catalog or repo_scan configured")
		return nil
	}
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout())
	defer cancel()
	items, err := p.FetchItems(fetchCtx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	fmt.Fprintf(out, "fetch: %d items\n", len(items))
	return nil
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	svc := config.NewConfigService(cmd.String("config"))
	if _, err := os.Stat(svc.Path()); err == nil {
		return cli.Exit(fmt.Sprintf("config already exists: %s", svc.Path()), 1)
	}
	cfg := config.DefaultConfig()
	if user := cmd.String("user"); user != "" {
		cfg.User = user
	}
	if err := svc.Save(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "wrote %s\n", svc.Path())
	return nil
}
