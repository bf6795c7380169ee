package cmd

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/xolan/ponto/internal/config"
	"github.com/xolan/ponto/internal/holiday"
	"github.com/xolan/ponto/internal/osutil"
	"github.com/xolan/ponto/internal/portal"
	"github.com/xolan/ponto/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	ConfigPath func() (string, error)
	Now        func() time.Time

	// NewRecordSource builds the attendance source: the browser session,
	// or a saved page when fromHTML is set.
	NewRecordSource func(cfg config.Config, fromHTML string, progress io.Writer) portal.Source
	// Ask shows the holiday prompt
	Ask holiday.AskFunc
	// Interactive reports whether the user can answer prompts
	Interactive func() bool
	// Open opens a written report in the system viewer
	Open func(path string) error
	// View shows a report in the terminal pager
	View func(title, content string) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Stdin:           os.Stdin,
		Exit:            os.Exit,
		ConfigPath:      config.GetConfigPath,
		Now:             time.Now,
		NewRecordSource: newRecordSource,
		Ask:             holiday.NewAskFunc(),
		Interactive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
		Open: osutil.OpenFile,
		View: tui.Show,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

func newRecordSource(cfg config.Config, fromHTML string, progress io.Writer) portal.Source {
	if fromHTML != "" {
		return portal.NewFileSource(fromHTML, cfg.TableSelector)
	}
	return portal.NewBrowserSource(portal.BrowserConfig{
		LoginURL:        cfg.PortalURL,
		PasswordFieldID: cfg.PasswordFieldID,
		TableSelector:   cfg.TableSelector,
		WaitTimeout:     cfg.Timeout(),
		SettleDelay:     cfg.Delay(),
		ExecPath:        cfg.BrowserPath,
		Headless:        cfg.Headless,
	}, progress)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
