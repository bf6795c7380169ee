package portal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/xolan/ponto/internal/record"
)

// DefaultLoginURL is the login page of the portal
const DefaultLoginURL = "https://ponto.dev.educacao.al.gov.br/login"

// BrowserConfig configures a BrowserSource.
type BrowserConfig struct {
	LoginURL        string
	PasswordFieldID string
	TableSelector   string
	// WaitTimeout bounds each wait on the page
	WaitTimeout time.Duration
	// SettleDelay is slept after login before looking for the table
	SettleDelay time.Duration
	// ExecPath is the browser binary; empty lets chromedp look it up
	ExecPath string
	Headless bool
}

// BrowserSource drives a visible Chrome window: it opens the login page,
// waits for the user to sign in, then captures the attendance table.
type BrowserSource struct {
	cfg  BrowserConfig
	out  io.Writer
	poll time.Duration
}

// NewBrowserSource creates a BrowserSource writing progress messages to out.
func NewBrowserSource(cfg BrowserConfig, out io.Writer) *BrowserSource {
	if cfg.TableSelector == "" {
		cfg.TableSelector = DefaultTableSelector
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = DefaultLoginURL
	}
	if cfg.PasswordFieldID == "" {
		cfg.PasswordFieldID = "senha"
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = 30 * time.Second
	}
	if out == nil {
		out = io.Discard
	}
	return &BrowserSource{cfg: cfg, out: out, poll: 500 * time.Millisecond}
}

// resolveExecPath checks a configured browser binary.
func (s *BrowserSource) resolveExecPath() (string, error) {
	if s.cfg.ExecPath == "" {
		return "", nil
	}
	info, err := os.Stat(s.cfg.ExecPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBrowserNotFound, s.cfg.ExecPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrBrowserNotFound, s.cfg.ExecPath)
	}
	return s.cfg.ExecPath, nil
}

func (s *BrowserSource) allocatorOptions(execPath string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.NoSandbox,
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}

// Records implements Source. The browser is closed on every return path.
func (s *BrowserSource) Records(ctx context.Context) (record.ParseResult, error) {
	execPath, err := s.resolveExecPath()
	if err != nil {
		return record.ParseResult{}, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, s.allocatorOptions(execPath)...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer func() {
		_ = chromedp.Cancel(browserCtx)
		cancelBrowser()
	}()

	// The first Run starts the browser; it must not carry a timeout or the
	// browser would die with it.
	if err := chromedp.Run(browserCtx); err != nil {
		return record.ParseResult{}, fmt.Errorf("%w: %v", ErrBrowserNotFound, err)
	}

	if err := s.login(browserCtx); err != nil {
		return record.ParseResult{}, err
	}

	markup, err := s.captureTable(browserCtx)
	if err != nil {
		return record.ParseResult{}, err
	}
	return parseMarkup(markup, s.cfg.TableSelector)
}

func (s *BrowserSource) login(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.WaitTimeout)
	defer cancel()

	err := chromedp.Run(waitCtx,
		chromedp.Navigate(s.cfg.LoginURL),
		chromedp.WaitReady("#"+s.cfg.PasswordFieldID, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("%w: login page: %v", ErrLoginTimeout, err)
	}
	_, _ = fmt.Fprintln(s.out, "Digite seu CPF e senha no site e pressione ENTER no campo de senha para continuar...")

	if err := s.waitForURLChange(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(s.out, "Login realizado com sucesso!")
	return nil
}

// waitForURLChange polls until the browser leaves the login page.
func (s *BrowserSource) waitForURLChange(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.WaitTimeout)
	defer cancel()

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		var location string
		if err := chromedp.Run(waitCtx, chromedp.Location(&location)); err != nil {
			return fmt.Errorf("%w: %v", ErrLoginTimeout, err)
		}
		if location != s.cfg.LoginURL {
			return nil
		}
		select {
		case <-waitCtx.Done():
			return fmt.Errorf("%w: still on %s after %s", ErrLoginTimeout, s.cfg.LoginURL, s.cfg.WaitTimeout)
		case <-ticker.C:
		}
	}
}

func (s *BrowserSource) captureTable(ctx context.Context) (string, error) {
	if s.cfg.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.cfg.SettleDelay):
		}
	}
	_, _ = fmt.Fprintln(s.out, "Coletando horários...")

	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.WaitTimeout)
	defer cancel()

	var markup string
	err := chromedp.Run(waitCtx,
		chromedp.WaitReady(s.cfg.TableSelector+" tbody tr", chromedp.ByQuery),
		chromedp.OuterHTML(s.cfg.TableSelector, &markup, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTableNotFound, err)
	}
	return markup, nil
}
