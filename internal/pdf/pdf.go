// Package pdf renders the sales statements. The browser used to build these
// client-side; generating them here keeps one layout for every consumer.
package pdf

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gcamargo/vendas-app/internal/i18n"
	"github.com/gcamargo/vendas-app/internal/services"
)

var (
	headerColor = props.Color{Red: 37, Green: 99, Blue: 235}
	stripeColor = props.Color{Red: 240, Green: 240, Blue: 240}
	white       = props.WhiteColor
)

func newDoc() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(14).
		WithRightMargin(14).
		WithTopMargin(15).
		Build()
	return maroto.New(cfg)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// ClienteStatement renders the per-client report: contact header, striped
// sales table, paid/due totals.
func ClienteStatement(rep services.ClienteReport) ([]byte, error) {
	m := newDoc()

	m.AddRow(12, text.NewCol(12, "Relatório de Vendas - "+rep.Cliente.Nome,
		props.Text{Size: 16, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, "Email: "+orNA(rep.Cliente.Email), props.Text{Size: 10}))
	m.AddRow(8, text.NewCol(12, "Telefone: "+orNA(rep.Cliente.Telefone), props.Text{Size: 10}))

	head := row.New(7).Add(
		text.NewCol(3, "Data", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(4, "Produto", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(1, "Qtd", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(2, "Valor", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(2, "Status", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
	)
	head.WithStyle(&props.Cell{BackgroundColor: &headerColor})
	m.AddRows(head)

	for i, it := range rep.Itens {
		r := row.New(6).Add(
			text.NewCol(3, i18n.FormatDate(it.Data), props.Text{Size: 9}),
			text.NewCol(4, it.Produto, props.Text{Size: 9}),
			text.NewCol(1, i18n.FormatInt(it.Quantidade), props.Text{Size: 9}),
			text.NewCol(2, i18n.FormatBRL(it.Valor), props.Text{Size: 9}),
			text.NewCol(2, it.Status, props.Text{Size: 9}),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: &stripeColor})
		}
		m.AddRows(r)
	}

	m.AddRow(10, text.NewCol(12, "Total Pago: "+i18n.FormatBRL(rep.TotalPago),
		props.Text{Size: 11, Style: fontstyle.Bold, Top: 4}))
	m.AddRow(7, text.NewCol(12, "Total a Pagar: "+i18n.FormatBRL(rep.TotalAPagar),
		props.Text{Size: 11, Style: fontstyle.Bold}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// ResumoGeral renders the all-clients report, one paid/due row per client.
func ResumoGeral(rows []services.ClienteResumo) ([]byte, error) {
	m := newDoc()

	m.AddRow(12, text.NewCol(12, "Relatório Geral de Vendas por Cliente",
		props.Text{Size: 16, Style: fontstyle.Bold}))

	head := row.New(7).Add(
		text.NewCol(6, "Cliente", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(3, "Total Pago", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(3, "Total a Pagar", props.Text{Size: 10, Style: fontstyle.Bold, Color: &white}),
	)
	head.WithStyle(&props.Cell{BackgroundColor: &headerColor})
	m.AddRows(head)

	for i, c := range rows {
		r := row.New(6).Add(
			text.NewCol(6, c.Cliente, props.Text{Size: 9}),
			text.NewCol(3, i18n.FormatBRL(c.TotalPago), props.Text{Size: 9}),
			text.NewCol(3, i18n.FormatBRL(c.TotalAPagar), props.Text{Size: 9}),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: &stripeColor})
		}
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
