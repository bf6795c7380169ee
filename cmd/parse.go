package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/ponto/internal/ledger"
	"github.com/xolan/ponto/internal/portal"
	"github.com/xolan/ponto/internal/record"
	"github.com/xolan/ponto/internal/report"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file.html>",
	Short: "Show the records found in a saved portal page",
	Long: `Read a page saved from the portal (File > Save Page As) and list the
attendance records and skipped rows, without computing a report.

Useful to check table_selector after the portal layout changes.

Examples:
  ponto parse ~/Downloads/ponto.html
  ponto parse ponto.html --selector "table#registros"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		selector, _ := cmd.Flags().GetString("selector")
		parsePage(args[0], selector)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("selector", "", "CSS selector of the attendance table (default: config table_selector)")
}

// parsePage lists what a saved page contains
func parsePage(path, selector string) {
	cfg, _, ok := loadConfig()
	if !ok {
		return
	}
	if selector == "" {
		selector = cfg.TableSelector
	}

	result, err := portal.NewFileSource(path, selector).Records(context.Background())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		if errors.Is(err, portal.ErrTableNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: No element matches '%s'; pass --selector\n", selector)
		}
		deps.Exit(1)
		return
	}

	record.SortByDate(result.Records)

	_, _ = fmt.Fprintf(deps.Stdout, "Page:      %s\n", path)
	_, _ = fmt.Fprintf(deps.Stdout, "Selector:  %s\n", selector)
	_, _ = fmt.Fprintf(deps.Stdout, "Records:   %d\n", len(result.Records))
	if len(result.Records) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Target:    %dh/day\n", ledger.DailyTarget(result.Records))
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if len(result.Records) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Date         Entry  Exit   Entry  Exit   Worked")
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		for _, r := range result.Records {
			_, _ = fmt.Fprintf(deps.Stdout, "%s   %s  %s  %s  %s  %s\n",
				r.Date.Format(record.DateLayout),
				report.FormatClock(r.Entry1), report.FormatClock(r.Exit1),
				report.FormatClock(r.Entry2), report.FormatClock(r.Exit2),
				report.FormatMinutes(r.WorkedMinutes()))
		}
		_, _ = fmt.Fprintln(deps.Stdout)
	}

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Skipped %d %s:\n", len(result.Warnings), pluralize("row", len(result.Warnings)))
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, formatRowWarning(w))
		}
	}
}
