package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Credit.GetForeground(), s.Balance(0).GetForeground())
	assert.Equal(t, s.Debit.GetForeground(), s.Balance(-1).GetForeground())
}

func TestHighlightReport_KeepsLines(t *testing.T) {
	text := "RESUMO DA JORNADA DE TRABALHO\n──────\n• Saldo geral: 08:00 em débito (-8.00h)\n\n→ 11/03/2024"

	out := DefaultStyles().HighlightReport(text)

	assert.Equal(t, 5, len(strings.Split(out, "\n")))
	assert.Contains(t, out, "em débito")
	assert.Contains(t, out, "11/03/2024")
}

func TestDefaultKeyMap_ShortHelp(t *testing.T) {
	help := DefaultKeyMap().ShortHelp()

	assert.Len(t, help, 5)
	assert.Equal(t, "quit", help[len(help)-1].Help().Desc)
}
