// Package report renders a ledger as the Portuguese text report, writes it
// to disk and exports it as PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/xolan/ponto/internal/ledger"
	"github.com/xolan/ponto/internal/record"
)

const (
	rule        = "──────────────────────────────"
	detailArrow = "▶"
)

// Render formats the ledger as the text report.
func Render(l ledger.Ledger) string {
	s := l.Summary
	var b strings.Builder

	b.WriteString("\nRESUMO DA JORNADA DE TRABALHO\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "• Período analisado: %s a %s\n",
		s.PeriodStart.Format(record.DateLayout), s.PeriodEnd.Format(record.DateLayout))
	fmt.Fprintf(&b, "• Tipo de Jornada: %dh/dia\n", s.TargetHours)

	b.WriteString("\nDETALHAMENTO DOS DIAS\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "• Dias úteis no período: %d\n", s.BusinessDays)
	fmt.Fprintf(&b, "  ✓ Dias trabalhados: %d\n", s.WorkedDays)
	fmt.Fprintf(&b, "  ✗ Dias com falta: %d\n", s.MissingDays)

	b.WriteString("\nCÁLCULO DE HORAS\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "• Carga horária prevista: %s (%.2fh)\n",
		FormatDecimalHours(s.ExpectedHours()), s.ExpectedHours())
	fmt.Fprintf(&b, "• Total de horas trabalhadas: %s (%.2fh)\n",
		FormatDecimalHours(s.WorkedHours()), s.WorkedHours())
	fmt.Fprintf(&b, "• Saldo geral: %s %s (%+.2fh)\n",
		FormatDecimalHours(s.BalanceHours()), OverallLabel(s.BalanceMinutes), s.BalanceHours())

	b.WriteString("\nPROJEÇÃO MENSAL\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "• Dias úteis no mês: %d\n", s.MonthBusinessDays)
	fmt.Fprintf(&b, "• Carga horária mensal prevista: %dh\n", s.MonthProjectionHours())

	b.WriteString("\nREGISTROS DETALHADOS:\n")
	b.WriteString(rule + "\n")
	for i, r := range l.Records {
		b.WriteString(DetailLine(r, l.Balances[i].Minutes))
		b.WriteString("\n")
	}

	b.WriteString("\nRESUMO DE SALDOS DIÁRIOS:\n")
	for _, bal := range l.Balances {
		fmt.Fprintf(&b, "• %s: %s (%s)\n",
			bal.Date.Format(record.DateLayout), FormatMinutes(bal.Minutes), DailyLabel(bal.Minutes))
	}

	if len(l.Missing) > 0 {
		b.WriteString("\nDIAS FALTANTES:\n")
		for _, d := range l.Missing {
			fmt.Fprintf(&b, "→ %s\n", d.Format(record.DateLayout))
		}
	}

	return b.String()
}

// DetailLine formats one record with its day balance, e.g.
// "04/03/2024: 08:00 ▶ 12:00 | 13:00 ▶ 17:00 | Saldo: 00:00 (excedente)".
func DetailLine(r record.DailyRecord, balanceMinutes int) string {
	return fmt.Sprintf("%s: %s %s %s | %s %s %s | Saldo: %s (%s)",
		r.Date.Format(record.DateLayout),
		FormatClock(r.Entry1), detailArrow, FormatClock(r.Exit1),
		FormatClock(r.Entry2), detailArrow, FormatClock(r.Exit2),
		FormatMinutes(balanceMinutes), DailyLabel(balanceMinutes))
}
