package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration settings for ponto.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

Example config.toml:

  wait_timeout = "60s"
  output_dir   = "/home/maria/Documentos/ponto"
  holidays = [
    "FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1",
    "FREQ=YEARLY;BYMONTH=9;BYMONTHDAY=7",
  ]

Configuration file location:
  ~/.config/ponto/config.toml        Linux
  ~/Library/Application Support/ponto/config.toml   macOS
  %APPDATA%\ponto\config.toml        Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	cfg, configPath, ok := loadConfig()
	if !ok {
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for ponto")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Portal URL:      %s\n", cfg.PortalURL)
	_, _ = fmt.Fprintf(deps.Stdout, "Password field:  #%s\n", cfg.PasswordFieldID)
	_, _ = fmt.Fprintf(deps.Stdout, "Table selector:  %s\n", cfg.TableSelector)
	_, _ = fmt.Fprintf(deps.Stdout, "Wait timeout:    %s\n", cfg.WaitTimeout)
	_, _ = fmt.Fprintf(deps.Stdout, "Settle delay:    %s\n", cfg.SettleDelay)
	if cfg.BrowserPath == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Browser:         (auto-detect)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Browser:         %s\n", cfg.BrowserPath)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Headless:        %t\n", cfg.Headless)
	if cfg.OutputDir == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Output dir:      (desktop)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Output dir:      %s\n", cfg.OutputDir)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Open report:     %t\n", cfg.OpenReport)
	if len(cfg.Holidays) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Holidays:        (none)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Holidays:")
		for _, rule := range cfg.Holidays {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", rule)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Create a config.toml file at the above location to customize settings.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}
