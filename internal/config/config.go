package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"cmdboard/internal/eventbus"
)

const (
	// EnvPrefix is the prefix of environment overrides, e.g. CMDBOARD_USER
	EnvPrefix = "CMDBOARD"

	defaultHotkey       = "ctrl+k"
	defaultFetchTimeout = 5000
	defaultPlaceholder  = "Search for apps and commands..."
	defaultStoryURL     = "https://app.shortcut.com/checkly/stories/new"
)

// Config represents the application configuration
type Config struct {
	Version  int             `toml:"version"`
	User     string          `toml:"user"` // signed-in user; the palette stays locked without one
	Palette  PaletteSettings `toml:"palette"`
	Catalog  CatalogSettings `toml:"catalog"`
	Links    []Link          `toml:"links"`
	Commands []CommandEntry  `toml:"commands"`
	Repos    []Repo          `toml:"repos"`
	RepoScan RepoScan        `toml:"repo_scan"`
	Teams    []Member        `toml:"teams"`
	Log      LogSettings     `toml:"log"`
	Browser  BrowserSettings `toml:"browser"`
}

// PaletteSettings controls palette behavior
type PaletteSettings struct {
	Hotkey         string `toml:"hotkey"`
	// Case is smart, sensitive or insensitive. Smart matches lowercase queries
	// case-insensitively; sensitive is a plain substring match.
	Case           string `toml:"case"`
	DisableWrap    bool   `toml:"disable_wrap"`
	FetchTimeoutMS int    `toml:"fetch_timeout_ms"`
	Placeholder    string `toml:"placeholder"`
}

// CatalogSettings points at the apps catalog, a file, a URL or both
type CatalogSettings struct {
	File string `toml:"file"`
	URL  string `toml:"url"`
}

// Link is a curated suggestion
type Link struct {
	Name     string `toml:"name"`
	URL      string `toml:"url"`
	Category string `toml:"category,omitempty"`
}

// CommandEntry either opens URL or pushes Page
type CommandEntry struct {
	Name string `toml:"name"`
	URL  string `toml:"url,omitempty"`
	Page string `toml:"page,omitempty"`
}

// Repo is a pull-request target
type Repo struct {
	Slug string `toml:"slug"`
	URL  string `toml:"url,omitempty"` // defaults to the GitHub compare page
}

// RepoScan lists local clones whose origin becomes a pull-request target.
// Roots are searched for clones up to MaxDepth directories deep.
type RepoScan struct {
	Paths    []string `toml:"paths"`
	Roots    []string `toml:"roots,omitempty"`
	MaxDepth int      `toml:"max_depth,omitempty"`
}

// Member is an entry of the teams page
type Member struct {
	Name string `toml:"name"`
	Team string `toml:"team,omitempty"`
	URL  string `toml:"url,omitempty"`
}

// LogSettings configures the rotating log file
type LogSettings struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// BrowserSettings overrides the platform URL opener
type BrowserSettings struct {
	Command string `toml:"command"` // e.g. "firefox --new-tab"; the URL is appended
}

// FetchTimeout returns the mount-time fetch deadline
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Palette.FetchTimeoutMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the per-user config directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cmdboard")
}

// NewConfigService creates a config service for path, or the default location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		ApplyEnv(cfg)
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, User: cfg.User})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path and applies env overrides
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	ApplyEnv(cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes TOML and fills unset fields with defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Palette.Hotkey == "" {
		c.Palette.Hotkey = defaultHotkey
	}
	if c.Palette.Case == "" {
		c.Palette.Case = "smart"
	}
	if c.Palette.FetchTimeoutMS <= 0 {
		c.Palette.FetchTimeoutMS = defaultFetchTimeout
	}
	if c.Palette.Placeholder == "" {
		c.Palette.Placeholder = defaultPlaceholder
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(DefaultDir(), "cmdboard.log")
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 3
	}
}

// ApplyEnv overrides selected fields from CMDBOARD_* environment variables
func ApplyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	overrides := map[string]*string{
		"user":            &cfg.User,
		"catalog.file":    &cfg.Catalog.File,
		"catalog.url":     &cfg.Catalog.URL,
		"browser.command": &cfg.Browser.Command,
		"log.file":        &cfg.Log.File,
		"palette.hotkey":  &cfg.Palette.Hotkey,
		"palette.case":    &cfg.Palette.Case,
	}
	for key, dst := range overrides {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			*dst = s
		}
	}

	if v.IsSet("palette.disable_wrap") {
		cfg.Palette.DisableWrap = v.GetBool("palette.disable_wrap")
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		Links: []Link{
			{Name: "Figma", URL: "https://figma.com"},
			{Name: "YouTube", URL: "https://youtube.com"},
		},
		Commands: []CommandEntry{
			{Name: "Create new PR", Page: "pull-request"},
			{Name: "Create new story", URL: defaultStoryURL},
		},
		Repos: []Repo{
			{Slug: "checkly/checkly-webapp"},
			{Slug: "checkly/checkly-backend"},
			{Slug: "checkly/checkly-lambda-runners"},
		},
		Teams: []Member{
			{Name: "Team 1"},
			{Name: "Team 2"},
		},
	}
	cfg.applyDefaults()
	return cfg
}
