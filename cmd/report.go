package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xolan/ponto/internal/config"
	"github.com/xolan/ponto/internal/holiday"
	"github.com/xolan/ponto/internal/ledger"
	"github.com/xolan/ponto/internal/portal"
	"github.com/xolan/ponto/internal/report"
	"github.com/xolan/ponto/internal/service"
	"github.com/xolan/ponto/internal/timeutil"
	"github.com/xolan/ponto/internal/tui/ui"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the monthly balance report (default command)",
	Long: `Log into the portal, collect the attendance table and write the balance report.

You are asked for the month's days without work (holidays, days off) unless
--holidays is given or the terminal is not interactive. Recurring holidays
from the config file are always applied.

Examples:
  ponto report
  ponto report --holidays 1,29 --no-open
  ponto report --from-html ~/Downloads/ponto.html --today 2024-03-15
  ponto report --view --pdf`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(readReportOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addReportFlags(reportCmd)
}

func addReportFlags(c *cobra.Command) {
	c.Flags().String("holidays", "", "Days without work this month, comma separated (e.g. 3,4,5)")
	c.Flags().String("today", "", "Date used as today (YYYY-MM-DD or DD/MM/YYYY)")
	c.Flags().String("from-html", "", "Read a saved portal page instead of opening the browser")
	c.Flags().String("output-dir", "", "Directory for the report (default: config output_dir or the desktop)")
	c.Flags().Bool("no-open", false, "Do not open the report after writing it")
	c.Flags().Bool("view", false, "Show the report in the terminal instead of the system viewer")
	c.Flags().Bool("pdf", false, "Also write a PDF version of the report")
}

// reportOptions are the flags of a report run.
type reportOptions struct {
	Holidays    string
	HolidaysSet bool
	Today       string
	FromHTML    string
	OutputDir   string
	NoOpen      bool
	View        bool
	PDF         bool
}

func readReportOptions(cmd *cobra.Command) reportOptions {
	flags := cmd.Flags()
	opts := reportOptions{HolidaysSet: flags.Changed("holidays")}
	opts.Holidays, _ = flags.GetString("holidays")
	opts.Today, _ = flags.GetString("today")
	opts.FromHTML, _ = flags.GetString("from-html")
	opts.OutputDir, _ = flags.GetString("output-dir")
	opts.NoOpen, _ = flags.GetBool("no-open")
	opts.View, _ = flags.GetBool("view")
	opts.PDF, _ = flags.GetBool("pdf")
	return opts
}

// runReport runs the whole flow: collect, compute, write, open.
func runReport(opts reportOptions) {
	cfg, _, ok := loadConfig()
	if !ok {
		return
	}

	today := timeutil.Date(deps.Now())
	if opts.Today != "" {
		parsed, err := timeutil.ParseDate(opts.Today)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --today value '%s'\n", opts.Today)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or DD/MM/YYYY")
			deps.Exit(1)
			return
		}
		today = parsed
	}

	services, err := service.NewServices(cfg, deps.NewRecordSource(cfg, opts.FromHTML, deps.Stdout), holidaySource(opts))
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid recurring holidays in configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use RRULE strings such as \"FREQ=YEARLY;BYMONTH=9;BYMONTHDAY=7\"")
		deps.Exit(1)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := services.Balance.Build(ctx, today)
	if rep != nil {
		printRowWarnings(rep.Warnings)
	}
	if errors.Is(err, ledger.ErrNoRecords) {
		_, _ = fmt.Fprintln(deps.Stdout, "Nenhum horário válido encontrado.")
		return
	}
	if err != nil {
		reportBuildError(err, cfg, opts)
		deps.Exit(1)
		return
	}

	dir := opts.OutputDir
	if dir == "" {
		dir, err = cfg.ReportDir()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine the report directory")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set output_dir in the config file or pass --output-dir")
			deps.Exit(1)
			return
		}
	}

	path, err := report.WriteText(dir, rep.Text, deps.Now())
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write the report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that %s is writable\n", dir)
		deps.Exit(1)
		return
	}

	printSummary(rep.Ledger.Summary, isTerminal(deps.Stdout))
	_, _ = fmt.Fprintf(deps.Stdout, "Relatório salvo em: %s\n", path)

	if opts.PDF {
		pdfPath := report.PDFPath(path)
		if err := report.WritePDF(rep.Ledger, pdfPath); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Warning: Failed to write the PDF report")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "PDF salvo em: %s\n", pdfPath)
		}
	}

	switch {
	case opts.View:
		if err := deps.View(filepath.Base(path), rep.Text); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Warning: Failed to show the report")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
	case !opts.NoOpen && cfg.OpenReport:
		if err := deps.Open(path); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Warning: Failed to open the report")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
	}
}

// holidaySource picks where the month's days off come from. The recurring
// holidays of the config are merged in by the service.
func holidaySource(opts reportOptions) holiday.Source {
	switch {
	case opts.HolidaysSet:
		return holiday.StaticSource(opts.Holidays)
	case deps.Interactive():
		return holiday.NewPromptSource(deps.Ask, deps.Stderr)
	default:
		return nil
	}
}

// reportBuildError prints the Error/Details/Hint lines of a failed run.
func reportBuildError(err error, cfg config.Config, opts reportOptions) {
	switch {
	case errors.Is(err, portal.ErrBrowserNotFound):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Chrome or Chromium could not be started")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Install Google Chrome or set browser_path in the config file")
	case errors.Is(err, portal.ErrLoginTimeout):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Login was not completed in time")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Log in within %s or raise wait_timeout in the config file\n", cfg.WaitTimeout)
	case errors.Is(err, portal.ErrTableNotFound):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Attendance table not found")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check table_selector (%s) or inspect a saved page with 'ponto parse'\n", cfg.TableSelector)
	case errors.Is(err, context.Canceled):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Interrupted")
	case errors.Is(err, service.ErrHolidays) && opts.HolidaysSet:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --holidays value '%s'\n", opts.Holidays)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use day numbers of the month separated by commas, e.g. 3,4,5")
	case errors.Is(err, service.ErrHolidays):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to get the days without work")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to build the report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
}

// printSummary prints the headline numbers of the report.
func printSummary(s ledger.Summary, color bool) {
	styles := ui.DefaultStyles()
	render := func(style lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return style.Render(text)
	}

	period := fmt.Sprintf("%s a %s", s.PeriodStart.Format("02/01/2006"), s.PeriodEnd.Format("02/01/2006"))
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, render(styles.Heading, "Período: "+period))
	_, _ = fmt.Fprintf(deps.Stdout, "Dias trabalhados: %d  Dias faltantes: %d  Jornada: %dh\n", s.WorkedDays, s.MissingDays, s.TargetHours)
	balance := fmt.Sprintf("Saldo geral: %s %s (%+.2fh)",
		report.FormatMinutes(s.BalanceMinutes), report.OverallLabel(s.BalanceMinutes), s.BalanceHours())
	_, _ = fmt.Fprintln(deps.Stdout, render(styles.Balance(s.BalanceMinutes), balance))
	_, _ = fmt.Fprintln(deps.Stdout)
}
