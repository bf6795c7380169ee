package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/ponto/internal/config"
	"github.com/xolan/ponto/internal/portal"
	"github.com/xolan/ponto/internal/record"
	"github.com/xolan/ponto/internal/report"
)

type fakeSource struct {
	result record.ParseResult
	err    error
}

func (f fakeSource) Records(context.Context) (record.ParseResult, error) {
	return f.result, f.err
}

// marchRows are full days of March 2024; the 11th is missing.
func marchRows() [][]string {
	var rows [][]string
	for _, d := range []string{"01", "04", "05", "06", "07", "08", "12", "13", "14", "15"} {
		rows = append(rows, []string{d + "/03/2024", "08:00:00", "12:00:00", "13:00:00", "17:00:00"})
	}
	return rows
}

type testEnv struct {
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode int
	opened   []string
	viewed   []string
	asked    int
	fromHTML string
	dir      string
	now      time.Time
}

// testDeps creates test dependencies with captured output, a missing config
// file and the given attendance source.
func testDeps(t *testing.T, src portal.Source) (*Deps, *testEnv) {
	t.Helper()
	env := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		exitCode: -1,
		dir:      t.TempDir(),
		now:      time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC),
	}
	d := &Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(""),
		Exit:   func(code int) { env.exitCode = code },
		ConfigPath: func() (string, error) {
			return filepath.Join(env.dir, "config.toml"), nil
		},
		Now: func() time.Time { return env.now },
		NewRecordSource: func(_ config.Config, fromHTML string, _ io.Writer) portal.Source {
			env.fromHTML = fromHTML
			return src
		},
		Ask: func(_ context.Context, _, _ string, _ func(string) error) (string, error) {
			env.asked++
			return "8", nil
		},
		Interactive: func() bool { return false },
		Open: func(path string) error {
			env.opened = append(env.opened, path)
			return nil
		},
		View: func(title, _ string) error {
			env.viewed = append(env.viewed, title)
			return nil
		},
	}
	SetDeps(d)
	t.Cleanup(ResetDeps)
	return d, env
}

func marchOptions(env *testEnv) reportOptions {
	return reportOptions{
		Holidays:    "8",
		HolidaysSet: true,
		OutputDir:   filepath.Join(env.dir, "out"),
	}
}

func TestRunReport_WritesAndOpens(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})

	runReport(marchOptions(env))

	assert.Equal(t, -1, env.exitCode, env.stderr.String())
	path := filepath.Join(env.dir, "out", report.FileName(env.now))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "RESUMO DA JORNADA DE TRABALHO")
	assert.Contains(t, string(content), "→ 11/03/2024")

	out := env.stdout.String()
	assert.Contains(t, out, "Saldo geral: 08:00 em débito (-8.00h)")
	assert.Contains(t, out, "Relatório salvo em: "+path)
	assert.Equal(t, []string{path}, env.opened)
	assert.Empty(t, env.viewed)
	assert.Zero(t, env.asked)
}

func TestRunReport_NoOpen(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.NoOpen = true

	runReport(opts)

	assert.Equal(t, -1, env.exitCode)
	assert.Empty(t, env.opened)
}

func TestRunReport_OpenDisabledInConfig(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "config.toml"), []byte("open_report = false\n"), 0644))

	runReport(marchOptions(env))

	assert.Equal(t, -1, env.exitCode)
	assert.Empty(t, env.opened)
}

func TestRunReport_ViewInTerminal(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.View = true

	runReport(opts)

	assert.Equal(t, []string{report.FileName(env.now)}, env.viewed)
	assert.Empty(t, env.opened)
}

func TestRunReport_PDF(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.PDF = true
	opts.NoOpen = true

	runReport(opts)

	pdfPath := report.PDFPath(filepath.Join(env.dir, "out", report.FileName(env.now)))
	assert.FileExists(t, pdfPath)
	assert.Contains(t, env.stdout.String(), "PDF salvo em: "+pdfPath)
}

func TestRunReport_TodayFlag(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.Today = "2024-03-12"
	opts.NoOpen = true

	runReport(opts)

	content, err := os.ReadFile(filepath.Join(env.dir, "out", report.FileName(env.now)))
	require.NoError(t, err)
	assert.Contains(t, string(content), "→ 11/03/2024")

	opts.Today = "15-03"
	runReport(opts)
	assert.Equal(t, 1, env.exitCode)
	assert.Contains(t, env.stderr.String(), "Error: Invalid --today value '15-03'")
}

func TestRunReport_PromptsWhenInteractive(t *testing.T) {
	d, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	d.Interactive = func() bool { return true }
	opts := marchOptions(env)
	opts.Holidays, opts.HolidaysSet = "", false

	runReport(opts)

	assert.Equal(t, 1, env.asked)
	assert.Contains(t, env.stdout.String(), "Saldo geral: 08:00 em débito (-8.00h)")
}

func TestRunReport_NoPromptWhenNotInteractive(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.Holidays, opts.HolidaysSet = "", false

	runReport(opts)

	assert.Zero(t, env.asked)
	assert.Equal(t, -1, env.exitCode)
	// Without the holiday the 8th is an ordinary business day.
	assert.Contains(t, env.stdout.String(), "Dias trabalhados: 10  Dias faltantes: 1")
}

func TestRunReport_InvalidHolidays(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.Holidays = "8,40"

	runReport(opts)

	assert.Equal(t, 1, env.exitCode)
	assert.Contains(t, env.stderr.String(), "Error: Invalid --holidays value '8,40'")
	assert.NoFileExists(t, filepath.Join(env.dir, "out", report.FileName(env.now)))
}

func TestRunReport_NoRecords(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows([][]string{{"Nenhum registro"}})})

	runReport(marchOptions(env))

	assert.Equal(t, -1, env.exitCode)
	assert.Contains(t, env.stdout.String(), "Nenhum horário válido encontrado.")
	assert.Contains(t, env.stderr.String(), "Warning: Skipped 1 invalid row in the attendance table:")
	assert.Empty(t, env.opened)
}

func TestRunReport_PhaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"browser", portal.ErrBrowserNotFound, "Error: Chrome or Chromium could not be started"},
		{"login", portal.ErrLoginTimeout, "Error: Login was not completed in time"},
		{"table", portal.ErrTableNotFound, "Error: Attendance table not found"},
		{"other", errors.New("connection reset"), "Error: Failed to build the report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := testDeps(t, fakeSource{err: tt.err})

			runReport(marchOptions(env))

			assert.Equal(t, 1, env.exitCode)
			assert.Contains(t, env.stderr.String(), tt.want)
			assert.Contains(t, env.stderr.String(), "Details:")
			assert.NoDirExists(t, filepath.Join(env.dir, "out"))
		})
	}
}

func TestRunReport_PassesSavedPage(t *testing.T) {
	_, env := testDeps(t, fakeSource{result: record.ParseRows(marchRows())})
	opts := marchOptions(env)
	opts.FromHTML = "ponto.html"

	runReport(opts)

	assert.Equal(t, "ponto.html", env.fromHTML)
}

func TestRunReport_ConfigPathError(t *testing.T) {
	d, env := testDeps(t, fakeSource{})
	d.ConfigPath = func() (string, error) { return "", errors.New("permission denied") }

	runReport(marchOptions(env))

	assert.Equal(t, 1, env.exitCode)
	assert.Contains(t, env.stderr.String(), "Error: Failed to determine config file location")
}

func TestRunReport_InvalidConfig(t *testing.T) {
	_, env := testDeps(t, fakeSource{})
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "config.toml"), []byte("wait_timeout = \"soon\"\n"), 0644))

	runReport(marchOptions(env))

	assert.Equal(t, 1, env.exitCode)
	assert.Contains(t, env.stderr.String(), "Error: Failed to load configuration")
}

func TestRunReport_InvalidHolidayRule(t *testing.T) {
	_, env := testDeps(t, fakeSource{})
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "config.toml"), []byte("holidays = [\"FREQ=SOMETIMES\"]\n"), 0644))

	runReport(marchOptions(env))

	assert.Equal(t, 1, env.exitCode)
	assert.Contains(t, env.stderr.String(), "Error: Invalid recurring holidays in configuration")
}

func TestFormatRowWarning(t *testing.T) {
	tests := []struct {
		name     string
		warning  record.ParseWarning
		expected string
	}{
		{
			name:     "short content",
			warning:  record.ParseWarning{Row: 3, Content: "Total", Error: "row has fewer than 5 cells (got 1)"},
			expected: "  Row 3: Total (error: row has fewer than 5 cells (got 1))",
		},
		{
			name:     "long content truncated",
			warning:  record.ParseWarning{Row: 7, Content: strings.Repeat("á", 60), Error: "x"},
			expected: "  Row 7: " + strings.Repeat("á", 47) + "... (error: x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRowWarning(tt.warning))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "row", pluralize("row", 1))
	assert.Equal(t, "rows", pluralize("row", 0))
	assert.Equal(t, "rows", pluralize("row", 2))
}
