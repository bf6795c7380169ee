package holiday

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/xolan/ponto/internal/calendar"
)

// AskFunc shows a modal text prompt and returns what the user typed.
// validate is checked while typing; implementations return ErrCanceled
// when the user dismisses the prompt.
type AskFunc func(ctx context.Context, title, description string, validate func(string) error) (string, error)

// NewAskFunc creates an AskFunc using huh's interactive input component.
func NewAskFunc() AskFunc {
	return func(ctx context.Context, title, description string, validate func(string) error) (string, error) {
		var result string
		input := huh.NewInput().
			Title(title).
			Description(description).
			Placeholder("3,4,5").
			Value(&result)
		if validate != nil {
			input = input.Validate(validate)
		}
		err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx)
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCanceled
		}
		return result, err
	}
}

// PromptSource asks the user for the days without work of the month.
// Invalid input is reported on Errors and asked again; canceling the
// prompt yields an empty set.
type PromptSource struct {
	Ask    AskFunc
	Errors io.Writer
}

// NewPromptSource creates a PromptSource.
func NewPromptSource(ask AskFunc, errs io.Writer) *PromptSource {
	return &PromptSource{Ask: ask, Errors: errs}
}

const promptTitle = "Dias sem expediente"

func promptDescription(year int, month time.Month) string {
	return "Informe os dias do mês (apenas números) sem expediente (feriados, recessos, etc.)\n" +
		"Separados por vírgula. Exemplo: 3,4,5\n\n" +
		fmt.Sprintf("Mês/Ano referência: %d/%d", int(month), year)
}

// Holidays implements Source.
func (p *PromptSource) Holidays(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	validate := func(s string) error {
		_, err := calendar.ParseDayList(s, year, month)
		return err
	}

	for {
		input, err := p.Ask(ctx, promptTitle, promptDescription(year, month), validate)
		if errors.Is(err, ErrCanceled) {
			return calendar.HolidaySet{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("asking for holidays: %w", err)
		}

		days, err := calendar.ParseDayList(input, year, month)
		if err != nil {
			if p.Errors != nil {
				_, _ = fmt.Fprintf(p.Errors, "Entrada inválida: %v\nPor favor, tente novamente.\n", err)
			}
			continue
		}
		return calendar.FromDays(year, month, days), nil
	}
}
