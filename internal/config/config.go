package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xolan/ponto/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "ponto"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// PortalURL is the login page of the time-tracking portal
	PortalURL string `toml:"portal_url"`
	// PasswordFieldID is the id of the password input on the login page
	PasswordFieldID string `toml:"password_field_id"`
	// TableSelector is the CSS selector of the attendance table
	TableSelector string `toml:"table_selector"`
	// WaitTimeout bounds each wait on the portal (Go duration, e.g. "30s")
	WaitTimeout string `toml:"wait_timeout"`
	// SettleDelay is waited after login before collecting (Go duration)
	SettleDelay string `toml:"settle_delay"`
	// BrowserPath is the Chrome/Chromium binary; empty means look it up
	BrowserPath string `toml:"browser_path"`
	// Headless hides the browser window (only useful with a saved session)
	Headless bool `toml:"headless"`
	// OutputDir is where reports are written; empty means the desktop
	OutputDir string `toml:"output_dir"`
	// OpenReport opens the report in the system viewer after writing it
	OpenReport bool `toml:"open_report"`
	// Holidays are recurring non-working days as RRULE strings
	Holidays []string `toml:"holidays"`
}

// DefaultConfig returns a Config matching the portal's current layout.
func DefaultConfig() Config {
	return Config{
		PortalURL:       "https://ponto.dev.educacao.al.gov.br/login",
		PasswordFieldID: "senha",
		TableSelector:   "table.table.table-bordered.table-striped.table-hover",
		WaitTimeout:     "30s",
		SettleDelay:     "5s",
		OpenReport:      true,
	}
}

// Load reads the config file at path. Keys absent from the file keep their
// default values. The result is normalized and validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, or returns defaults when it does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize trims whitespace and fills empty required fields with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	c.PortalURL = strings.TrimSpace(c.PortalURL)
	c.PasswordFieldID = strings.TrimPrefix(strings.TrimSpace(c.PasswordFieldID), "#")
	c.TableSelector = strings.TrimSpace(c.TableSelector)
	c.WaitTimeout = strings.TrimSpace(c.WaitTimeout)
	c.SettleDelay = strings.TrimSpace(c.SettleDelay)
	c.BrowserPath = strings.TrimSpace(c.BrowserPath)
	c.OutputDir = strings.TrimSpace(c.OutputDir)

	if c.PortalURL == "" {
		c.PortalURL = def.PortalURL
	}
	if c.PasswordFieldID == "" {
		c.PasswordFieldID = def.PasswordFieldID
	}
	if c.TableSelector == "" {
		c.TableSelector = def.TableSelector
	}
	if c.WaitTimeout == "" {
		c.WaitTimeout = def.WaitTimeout
	}
	if c.SettleDelay == "" {
		c.SettleDelay = def.SettleDelay
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.PortalURL, "http://") && !strings.HasPrefix(c.PortalURL, "https://") {
		return fmt.Errorf("invalid portal_url '%s': must start with http:// or https://", c.PortalURL)
	}
	timeout, err := time.ParseDuration(c.WaitTimeout)
	if err != nil {
		return fmt.Errorf("invalid wait_timeout '%s': %w", c.WaitTimeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("invalid wait_timeout '%s': must be positive", c.WaitTimeout)
	}
	delay, err := time.ParseDuration(c.SettleDelay)
	if err != nil {
		return fmt.Errorf("invalid settle_delay '%s': %w", c.SettleDelay, err)
	}
	if delay < 0 {
		return fmt.Errorf("invalid settle_delay '%s': must not be negative", c.SettleDelay)
	}
	return nil
}

// Timeout returns WaitTimeout as a duration. Call Validate first.
func (c Config) Timeout() time.Duration {
	d, _ := time.ParseDuration(c.WaitTimeout)
	return d
}

// Delay returns SettleDelay as a duration. Call Validate first.
func (c Config) Delay() time.Duration {
	d, _ := time.ParseDuration(c.SettleDelay)
	return d
}

// GetConfigPath returns the path to the config file inside the application
// data directory, creating the directory if needed.
func GetConfigPath() (string, error) {
	appDir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// AppDir returns the application data directory (e.g. ~/.config/ponto).
func AppDir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// ReportDir returns where reports go: OutputDir when set, otherwise the
// user's desktop.
func (c Config) ReportDir() (string, error) {
	if c.OutputDir != "" {
		return c.OutputDir, nil
	}
	return osutil.DesktopDir()
}
