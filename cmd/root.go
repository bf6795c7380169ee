package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/ponto/internal/config"
	"github.com/xolan/ponto/internal/record"
)

var rootCmd = &cobra.Command{
	Use:   "ponto",
	Short: "Monthly work-hours balance from the time-tracking portal",
	Long: `ponto opens the time-tracking portal in Chrome, waits for you to log in,
collects the attendance table of the month and writes a work-hours balance
report to your desktop.

Usage:
  ponto                              Log in and build this month's report
  ponto --holidays 3,4,5             Same, without asking for days off
  ponto --from-html ponto.html       Build the report from a saved page
  ponto parse ponto.html             Show what a saved page contains
  ponto config                       Show the configuration

The daily target is 8h when any day has a second exit, 6h otherwise.
Missing days are business days before today without a record.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(readReportOptions(cmd))
	},
}

func init() {
	addReportFlags(rootCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"ponto version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves and loads the configuration file, reporting failures.
// ok is false when the command must stop.
func loadConfig() (cfg config.Config, path string, ok bool) {
	path, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return config.Config{}, "", false
	}

	cfg, err = config.LoadOrDefault(path)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", path)
		deps.Exit(1)
		return config.Config{}, "", false
	}
	return cfg, path, true
}

// formatRowWarning formats a skipped table row into a human-readable string
func formatRowWarning(warning record.ParseWarning) string {
	// Truncate content if too long (max 50 chars)
	content := []rune(warning.Content)
	if len(content) > 50 {
		content = append(content[:47], []rune("...")...)
	}
	return fmt.Sprintf("  Row %d: %s (error: %s)", warning.Row, string(content), warning.Error)
}

func printRowWarnings(warnings []record.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Skipped %d invalid %s in the attendance table:\n", len(warnings), pluralize("row", len(warnings)))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, formatRowWarning(w))
	}
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
