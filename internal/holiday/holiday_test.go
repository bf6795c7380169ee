package holiday

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/ponto/internal/calendar"
	"github.com/xolan/ponto/internal/timeutil"
)

// scriptedAsk returns the given answers in order, ignoring validation,
// so the re-prompt loop of PromptSource is exercised.
func scriptedAsk(answers ...any) (AskFunc, *int) {
	calls := 0
	return func(_ context.Context, title, description string, validate func(string) error) (string, error) {
		a := answers[calls]
		calls++
		if err, ok := a.(error); ok {
			return "", err
		}
		return a.(string), nil
	}, &calls
}

func TestPromptSource_ValidInput(t *testing.T) {
	ask, calls := scriptedAsk("8, 29")
	src := NewPromptSource(ask, nil)

	set, err := src.Holidays(context.Background(), 2024, time.March)

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, []time.Time{
		timeutil.MakeDate(2024, time.March, 8),
		timeutil.MakeDate(2024, time.March, 29),
	}, set.Dates())
}

func TestPromptSource_RepromptsOnInvalidInput(t *testing.T) {
	ask, calls := scriptedAsk("32", "abc", "1")
	errs := &bytes.Buffer{}
	src := NewPromptSource(ask, errs)

	set, err := src.Holidays(context.Background(), 2024, time.March)

	require.NoError(t, err)
	assert.Equal(t, 3, *calls)
	assert.True(t, set.Contains(timeutil.MakeDate(2024, time.March, 1)))
	assert.Contains(t, errs.String(), "Entrada inválida: dia 32 inválido para o mês 3")
	assert.Contains(t, errs.String(), "'abc' não é um número")
	assert.Contains(t, errs.String(), "Por favor, tente novamente.")
}

func TestPromptSource_CancelYieldsEmptySet(t *testing.T) {
	ask, _ := scriptedAsk("99", ErrCanceled)
	src := NewPromptSource(ask, &bytes.Buffer{})

	set, err := src.Holidays(context.Background(), 2024, time.March)

	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Empty(t, set)
}

func TestPromptSource_EmptyAnswer(t *testing.T) {
	ask, _ := scriptedAsk("")
	src := NewPromptSource(ask, nil)

	set, err := src.Holidays(context.Background(), 2024, time.March)

	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestPromptSource_PropagatesOtherErrors(t *testing.T) {
	boom := errors.New("no tty")
	ask, _ := scriptedAsk(boom)
	src := NewPromptSource(ask, nil)

	_, err := src.Holidays(context.Background(), 2024, time.March)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPromptSource_PassesValidatorAndDescription(t *testing.T) {
	var gotTitle, gotDesc string
	var validate func(string) error
	ask := func(_ context.Context, title, description string, v func(string) error) (string, error) {
		gotTitle, gotDesc, validate = title, description, v
		return "", nil
	}
	src := NewPromptSource(ask, nil)

	_, err := src.Holidays(context.Background(), 2024, time.February)

	require.NoError(t, err)
	assert.Equal(t, "Dias sem expediente", gotTitle)
	assert.Contains(t, gotDesc, "Mês/Ano referência: 2/2024")
	require.NotNil(t, validate)
	assert.NoError(t, validate("29"))
	assert.Error(t, validate("30"))
}

func TestStaticSource(t *testing.T) {
	set, err := StaticSource("1,15").Holidays(context.Background(), 2024, time.May)

	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(timeutil.MakeDate(2024, time.May, 15)))

	_, err = StaticSource("31").Holidays(context.Background(), 2024, time.April)
	assert.Error(t, err)
}

func TestRuleSource(t *testing.T) {
	src, err := ParseRules([]string{
		"FREQ=YEARLY;BYMONTH=5;BYMONTHDAY=1",
		"RRULE:FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25",
		"",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, src.Len())

	may, err := src.Holidays(context.Background(), 2026, time.May)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{timeutil.MakeDate(2026, time.May, 1)}, may.Dates())

	dec, err := src.Holidays(context.Background(), 2024, time.December)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{timeutil.MakeDate(2024, time.December, 25)}, dec.Dates())

	march, err := src.Holidays(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Empty(t, march)
}

func TestParseRules_Invalid(t *testing.T) {
	_, err := ParseRules([]string{"FREQ=SOMETIMES"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid holiday rule")
}

func TestMerge(t *testing.T) {
	rules, err := ParseRules([]string{"FREQ=YEARLY;BYMONTH=3;BYMONTHDAY=29"})
	require.NoError(t, err)

	set, err := Merge(StaticSource("8"), rules, nil).Holidays(context.Background(), 2024, time.March)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		timeutil.MakeDate(2024, time.March, 8),
		timeutil.MakeDate(2024, time.March, 29),
	}, set.Dates())
}

func TestMerge_StopsOnError(t *testing.T) {
	failing := SourceFunc(func(context.Context, int, time.Month) (calendar.HolidaySet, error) {
		return nil, errors.New("broken")
	})

	_, err := Merge(StaticSource("8"), failing).Holidays(context.Background(), 2024, time.March)

	assert.EqualError(t, err, "broken")
}
