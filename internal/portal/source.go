// Package portal collects attendance rows from the time-tracking portal,
// either live through a browser session or from a saved copy of the page.
package portal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xolan/ponto/internal/record"
)

var (
	// ErrBrowserNotFound is returned when no usable browser can be started
	ErrBrowserNotFound = errors.New("browser not found")
	// ErrLoginTimeout is returned when the login is not completed in time
	ErrLoginTimeout = errors.New("login not completed in time")
	// ErrTableNotFound is returned when the attendance table is missing
	ErrTableNotFound = errors.New("attendance table not found")
)

// Source produces the parsed attendance records of the portal.
type Source interface {
	Records(ctx context.Context) (record.ParseResult, error)
}

// FileSource reads a page saved from the portal.
type FileSource struct {
	Path          string
	TableSelector string
}

// NewFileSource creates a FileSource. An empty selector uses DefaultTableSelector.
func NewFileSource(path, selector string) *FileSource {
	if selector == "" {
		selector = DefaultTableSelector
	}
	return &FileSource{Path: path, TableSelector: selector}
}

// Records implements Source.
func (s *FileSource) Records(_ context.Context) (record.ParseResult, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return record.ParseResult{}, fmt.Errorf("opening saved page: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := ExtractRows(f, s.TableSelector)
	if err != nil {
		return record.ParseResult{}, err
	}
	return record.ParseRows(rows), nil
}

// parseMarkup is shared by the browser source once the table HTML is captured.
func parseMarkup(markup, selector string) (record.ParseResult, error) {
	rows, err := ExtractRows(strings.NewReader(markup), selector)
	if err != nil {
		return record.ParseResult{}, err
	}
	return record.ParseRows(rows), nil
}
