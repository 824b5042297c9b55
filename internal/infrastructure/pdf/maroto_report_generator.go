// Package pdf implementa a geração dos relatórios em PDF com Maroto v2.
//
// Layout da página A4 do relatório financeiro:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da igreja  │  Período do relatório            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA ENTRADAS: Data | Tipo | Membro | Valor              │
//	│  TABELA SAÍDAS:   Data | Categoria | Descrição | Valor      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Entradas / Saídas / SALDO                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/reports"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 124}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 160, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// FinanceReport gera o PDF do relatório financeiro e devolve seus bytes.
func (g *MarotoReportGenerator) FinanceReport(
	_ context.Context,
	profile *entity.Profile,
	period reports.FinancePeriod,
	entradas []*entity.Entrada,
	saidas []*entity.Saida,
	totals reports.FinanceTotals,
) ([]byte, error) {
	m := maroto.New(reportConfig(profile, "Relatório Financeiro"))

	m.AddRows(headerRow(profile, fmt.Sprintf("Período: %s a %s",
		period.From.Format("02/01/2006"), period.To.Format("02/01/2006")), "RELATÓRIO FINANCEIRO"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Entradas
	m.AddRows(sectionTitleRow("ENTRADAS (DÍZIMOS E OFERTAS)"))
	m.AddRows(entradaHeaderRow())
	for _, r := range entradaRows(entradas) {
		m.AddRows(r)
	}

	// Saídas
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("SAÍDAS (DESPESAS)"))
	m.AddRows(saidaHeaderRow())
	for _, r := range saidaRows(saidas) {
		m.AddRows(r)
	}

	// Totais
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// MemberReport gera o PDF com a lista de membros.
func (g *MarotoReportGenerator) MemberReport(
	_ context.Context,
	profile *entity.Profile,
	members []*entity.Member,
) ([]byte, error) {
	m := maroto.New(reportConfig(profile, "Relatório de Membros"))

	m.AddRows(headerRow(profile,
		fmt.Sprintf("Total de membros: %d", len(members)), "RELATÓRIO DE MEMBROS"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(memberHeaderRow())
	for _, r := range memberRows(members) {
		m.AddRows(r)
	}

	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func reportConfig(profile *entity.Profile, title string) *marotoentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(profile.ChurchName, "Minha Igreja"), true).
		Build()
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da igreja (esq) e título + subtítulo do relatório (dir).
func headerRow(profile *entity.Profile, subtitle, title string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(profile.ChurchName, "Minha Igreja"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// entradaHeaderRow: cabeçalho da tabela de entradas.
func entradaHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Data", 2, align.Left),
		tableHeader("Tipo", 2, align.Left),
		tableHeader("Membro", 5, align.Left),
		tableHeader("Valor", 3, align.Right),
	)
}

func entradaRows(entradas []*entity.Entrada) []core.Row {
	if len(entradas) == 0 {
		return []core.Row{emptyRow("Nenhuma entrada no período.")}
	}
	result := make([]core.Row, 0, len(entradas))
	for _, e := range entradas {
		result = append(result, row.New(6).Add(
			tableCell(e.Date.Format("02/01/2006"), 2, align.Left),
			tableCell(tipoLabel(e.Tipo), 2, align.Left),
			tableCell(nonEmpty(e.MemberName, "—"), 5, align.Left),
			tableCell(formatBRL(e.Valor), 3, align.Right),
		))
	}
	return result
}

// saidaHeaderRow: cabeçalho da tabela de saídas.
func saidaHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Data", 2, align.Left),
		tableHeader("Categoria", 3, align.Left),
		tableHeader("Descrição", 4, align.Left),
		tableHeader("Valor", 3, align.Right),
	)
}

func saidaRows(saidas []*entity.Saida) []core.Row {
	if len(saidas) == 0 {
		return []core.Row{emptyRow("Nenhuma saída no período.")}
	}
	result := make([]core.Row, 0, len(saidas))
	for _, s := range saidas {
		result = append(result, row.New(6).Add(
			tableCell(s.Date.Format("02/01/2006"), 2, align.Left),
			tableCell(nonEmpty(s.Categoria, "—"), 3, align.Left),
			tableCell(s.Descricao, 4, align.Left),
			tableCell(formatBRL(s.Valor), 3, align.Right),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita. Saldo negativo em vermelho.
func totalsRow(totals reports.FinanceTotals) core.Row {
	saldoColor := colorPrimary
	if totals.Saldo.IsNegative() {
		saldoColor = colorDanger
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Total de entradas:"),
			label("Total de saídas:"),
			text.New("SALDO DO PERÍODO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: saldoColor, Right: 2,
			}),
		),
		col.New(4).Add(
			value(formatBRL(totals.Entradas)),
			value(formatBRL(totals.Saidas)),
			text.New(formatBRL(totals.Saldo), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: saldoColor, Right: 1,
			}),
		),
	)
}

// memberHeaderRow: cabeçalho da tabela de membros.
func memberHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Nome", 4, align.Left),
		tableHeader("Telefone", 2, align.Left),
		tableHeader("E-mail", 3, align.Left),
		tableHeader("Batismo", 2, align.Center),
		tableHeader("Status", 1, align.Center),
	)
}

func memberRows(members []*entity.Member) []core.Row {
	if len(members) == 0 {
		return []core.Row{emptyRow("Nenhum membro cadastrado.")}
	}
	result := make([]core.Row, 0, len(members))
	for _, m := range members {
		batismo := "—"
		if m.BaptismDate != nil {
			batismo = m.BaptismDate.Format("02/01/2006")
		}
		result = append(result, row.New(6).Add(
			tableCell(m.Name, 4, align.Left),
			tableCell(nonEmpty(m.Phone, "—"), 2, align.Left),
			tableCell(nonEmpty(m.Email, "—"), 3, align.Left),
			tableCell(batismo, 2, align.Center),
			tableCell(m.Status, 1, align.Center),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Documento gerado automaticamente pelo sistema de gestão da igreja. "+
			"Conserve este relatório para prestação de contas.",
			props.Text{Size: 6.5, Color: colorGray, Top: 4},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func tipoLabel(tipo string) string {
	switch tipo {
	case entity.EntradaTipoDizimo:
		return "Dízimo"
	case entity.EntradaTipoOferta:
		return "Oferta"
	}
	return tipo
}

// formatBRL formata um decimal como moeda brasileira (R$ 1.234,56).
func formatBRL(v decimal.Decimal) string {
	neg := v.IsNegative()
	s := v.Abs().StringFixed(2) // 1234.56
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
