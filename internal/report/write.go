package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName returns the report file name for the given moment,
// e.g. "resumo_15-03-2024_18-30-00.txt".
func FileName(now time.Time) string {
	return "resumo_" + now.Format("02-01-2006_15-04-05") + ".txt"
}

// WriteText writes the report into dir and returns the file path.
func WriteText(dir, text string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// PDFPath returns the PDF path that sits next to a text report.
func PDFPath(textPath string) string {
	return strings.TrimSuffix(textPath, filepath.Ext(textPath)) + ".pdf"
}
