package report

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/xolan/ponto/internal/ledger"
	"github.com/xolan/ponto/internal/record"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfCreditColor = props.Color{Red: 30, Green: 130, Blue: 60}
	pdfDebitColor  = props.Color{Red: 180, Green: 40, Blue: 40}
)

func balanceColor(minutes int) *props.Color {
	if minutes >= 0 {
		return &pdfCreditColor
	}
	return &pdfDebitColor
}

// WritePDF renders the ledger as a one-table PDF timesheet at path.
func WritePDF(l ledger.Ledger, path string) error {
	s := l.Summary
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Resumo da jornada de trabalho", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s a %s - jornada de %dh/dia",
			s.PeriodStart.Format(record.DateLayout), s.PeriodEnd.Format(record.DateLayout), s.TargetHours),
			props.Text{Size: 11, Color: &pdfMutedColor}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	summaryRow := func(label, value string, color *props.Color) {
		m.AddRow(6,
			text.NewCol(8, label, props.Text{Size: 10}),
			text.NewCol(4, value, props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold, Color: color}),
		)
	}
	summaryRow("Dias úteis no período", fmt.Sprintf("%d", s.BusinessDays), &pdfHeaderColor)
	summaryRow("Dias trabalhados", fmt.Sprintf("%d", s.WorkedDays), &pdfHeaderColor)
	summaryRow("Dias com falta", fmt.Sprintf("%d", s.MissingDays), &pdfHeaderColor)
	summaryRow("Carga horária prevista", FormatMinutes(s.ExpectedMinutes), &pdfHeaderColor)
	summaryRow("Total de horas trabalhadas", FormatMinutes(s.WorkedMinutes), &pdfHeaderColor)
	summaryRow("Saldo geral ("+OverallLabel(s.BalanceMinutes)+")",
		FormatMinutes(s.BalanceMinutes), balanceColor(s.BalanceMinutes))
	summaryRow("Carga horária mensal prevista", fmt.Sprintf("%dh", s.MonthProjectionHours()), &pdfMutedColor)

	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}
	m.AddRow(7,
		text.NewCol(3, "Data", header),
		text.NewCol(2, "Entrada 1", header),
		text.NewCol(2, "Saída 1", header),
		text.NewCol(2, "Entrada 2", header),
		text.NewCol(1, "Saída 2", header),
		text.NewCol(2, "Saldo", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &pdfHeaderColor}),
	)
	for i, r := range l.Records {
		bal := l.Balances[i].Minutes
		cell := props.Text{Size: 9}
		sign := "+"
		if bal < 0 {
			sign = "-"
		}
		m.AddRow(6,
			text.NewCol(3, r.Date.Format(record.DateLayout), cell),
			text.NewCol(2, FormatClock(r.Entry1), cell),
			text.NewCol(2, FormatClock(r.Exit1), cell),
			text.NewCol(2, FormatClock(r.Entry2), cell),
			text.NewCol(1, FormatClock(r.Exit2), cell),
			text.NewCol(2, sign+FormatMinutes(bal), props.Text{Size: 9, Align: align.Right, Color: balanceColor(bal)}),
		)
	}

	if len(l.Missing) > 0 {
		m.AddRow(4)
		m.AddRow(7, text.NewCol(12, "Dias faltantes", header))
		for _, d := range l.Missing {
			m.AddRow(5, text.NewCol(12, d.Format(record.DateLayout), props.Text{Size: 9, Color: &pdfDebitColor}))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(path)
}
