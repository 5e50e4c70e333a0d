package services

import (
	"sort"
	"time"

	"github.com/gcamargo/vendas-app/internal/models"
)

// ReportService holds the aggregation logic behind the dashboard and the sales
// reports. All methods are pure over already-loaded rows; DB access stays in
// the handlers.
type ReportService struct{}

func NewReportService() *ReportService { return &ReportService{} }

// ProdutoTotal is one slice of the revenue-by-product chart.
type ProdutoTotal struct {
	Produto string  `json:"produto"`
	Total   float64 `json:"total"`
}

// ClientePendente is a dashboard row for clients flagged "A pagar".
type ClientePendente struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// DashboardSummary feeds the landing view: received/receivable split, sale
// count, doughnut chart data and the pending-clients table.
type DashboardSummary struct {
	TotalRecebido    float64           `json:"totalRecebido"`
	TotalAReceber    float64           `json:"totalAReceber"`
	NumVendas        int               `json:"nVendas"`
	VendasPorProduto []ProdutoTotal    `json:"vendasPorProduto"`
	ClientesAPagar   []ClientePendente `json:"clientesAPagar"`
}

// VendaLinha is one report table row.
type VendaLinha struct {
	Data       time.Time `json:"data"`
	Produto    string    `json:"produto"`
	Quantidade int       `json:"quantidade"`
	Valor      float64   `json:"valor"`
	Status     string    `json:"status"`
}

// ClienteReport is the per-client statement.
type ClienteReport struct {
	Cliente     models.Cliente `json:"cliente"`
	TotalPago   float64        `json:"totalPago"`
	TotalAPagar float64        `json:"totalAPagar"`
	Itens       []VendaLinha   `json:"itens"`
}

// ClienteResumo is one row of the general (all clients) report.
type ClienteResumo struct {
	Cliente     string  `json:"cliente"`
	TotalPago   float64 `json:"totalPago"`
	TotalAPagar float64 `json:"totalAPagar"`
}

// SplitTotals partitions sales revenue by payment status. Only "Pago" and
// "A pagar" exist, so pago+aPagar equals the sum of every valorTotal.
func (s *ReportService) SplitTotals(vendas []models.Venda) (pago, aPagar float64) {
	for _, v := range vendas {
		switch v.Status {
		case models.StatusPago:
			pago += v.ValorTotal
		case models.StatusAPagar:
			aPagar += v.ValorTotal
		}
	}
	return pago, aPagar
}

// Dashboard computes the summary over the full data set. Sales whose product
// no longer exists are left out of the chart (they still count in the totals).
func (s *ReportService) Dashboard(vendas []models.Venda, produtos []models.Produto, clientes []models.Cliente) DashboardSummary {
	recebido, aReceber := s.SplitTotals(vendas)

	nomePorProduto := make(map[uint]string, len(produtos))
	for _, p := range produtos {
		nomePorProduto[p.ID] = p.Nome
	}
	porProduto := map[string]float64{}
	for _, v := range vendas {
		if nome, ok := nomePorProduto[v.ProdutoID]; ok {
			porProduto[nome] += v.ValorTotal
		}
	}
	chart := make([]ProdutoTotal, 0, len(porProduto))
	for nome, total := range porProduto {
		chart = append(chart, ProdutoTotal{Produto: nome, Total: total})
	}
	sort.Slice(chart, func(i, j int) bool {
		if chart[i].Total != chart[j].Total {
			return chart[i].Total > chart[j].Total
		}
		return chart[i].Produto < chart[j].Produto
	})

	var pendentes []ClientePendente
	for _, c := range clientes {
		if c.Status == models.StatusAPagar {
			pendentes = append(pendentes, ClientePendente{Nome: c.Nome, Telefone: c.Telefone})
		}
	}

	return DashboardSummary{
		TotalRecebido:    recebido,
		TotalAReceber:    aReceber,
		NumVendas:        len(vendas),
		VendasPorProduto: chart,
		ClientesAPagar:   pendentes,
	}
}

// ClienteReport builds the per-client statement from that client's sales.
// vendas may contain all sales; filtering happens here.
func (s *ReportService) ClienteReport(cliente models.Cliente, vendas []models.Venda, produtos []models.Produto) ClienteReport {
	nomePorProduto := make(map[uint]string, len(produtos))
	for _, p := range produtos {
		nomePorProduto[p.ID] = p.Nome
	}
	rep := ClienteReport{Cliente: cliente, Itens: []VendaLinha{}}
	for _, v := range vendas {
		if v.ClienteID != cliente.ID {
			continue
		}
		switch v.Status {
		case models.StatusPago:
			rep.TotalPago += v.ValorTotal
		case models.StatusAPagar:
			rep.TotalAPagar += v.ValorTotal
		}
		nome, ok := nomePorProduto[v.ProdutoID]
		if !ok {
			nome = "Produto não encontrado"
		}
		rep.Itens = append(rep.Itens, VendaLinha{
			Data:       v.Data,
			Produto:    nome,
			Quantidade: v.Quantidade,
			Valor:      v.ValorTotal,
			Status:     v.Status,
		})
	}
	return rep
}

// ResumoGeral tabulates the paid/due split for every client, in the order the
// clientes slice was given (callers pass it sorted by nome).
func (s *ReportService) ResumoGeral(clientes []models.Cliente, vendas []models.Venda) []ClienteResumo {
	porCliente := make(map[uint]*ClienteResumo, len(clientes))
	resumo := make([]ClienteResumo, len(clientes))
	for i, c := range clientes {
		resumo[i] = ClienteResumo{Cliente: c.Nome}
		porCliente[c.ID] = &resumo[i]
	}
	for _, v := range vendas {
		row, ok := porCliente[v.ClienteID]
		if !ok {
			continue
		}
		switch v.Status {
		case models.StatusPago:
			row.TotalPago += v.ValorTotal
		case models.StatusAPagar:
			row.TotalAPagar += v.ValorTotal
		}
	}
	return resumo
}
