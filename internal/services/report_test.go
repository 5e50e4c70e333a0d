package services

import (
	"testing"
	"time"

	"github.com/gcamargo/vendas-app/internal/models"
)

func sampleData() ([]models.Venda, []models.Produto, []models.Cliente) {
	produtos := []models.Produto{
		{ID: 1, Nome: "Mouse", Codigo: "MSE-1", Preco: 50, Estoque: 10},
		{ID: 2, Nome: "Notebook", Codigo: "NTK-1", Preco: 7500, Estoque: 5},
	}
	clientes := []models.Cliente{
		{ID: 1, Nome: "Ana", Telefone: "111", Status: models.StatusAPagar},
		{ID: 2, Nome: "Bruno", Telefone: "222", Status: models.StatusPago},
	}
	vendas := []models.Venda{
		{ID: 1, ClienteID: 1, ProdutoID: 1, Quantidade: 2, ValorTotal: 100, Status: models.StatusPago, Data: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 2, ClienteID: 1, ProdutoID: 2, Quantidade: 1, ValorTotal: 7500, Status: models.StatusAPagar, Data: time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)},
		{ID: 3, ClienteID: 2, ProdutoID: 1, Quantidade: 1, ValorTotal: 50, Status: models.StatusPago, Data: time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)},
	}
	return vendas, produtos, clientes
}

func TestSplitTotalsCoversEverySale(t *testing.T) {
	svc := NewReportService()
	vendas, _, _ := sampleData()
	pago, aPagar := svc.SplitTotals(vendas)
	if pago != 150 {
		t.Fatalf("expected pago 150 got %v", pago)
	}
	if aPagar != 7500 {
		t.Fatalf("expected aPagar 7500 got %v", aPagar)
	}
	var all float64
	for _, v := range vendas {
		all += v.ValorTotal
	}
	if pago+aPagar != all {
		t.Fatalf("received+receivable %v != total %v", pago+aPagar, all)
	}
}

func TestDashboard(t *testing.T) {
	svc := NewReportService()
	vendas, produtos, clientes := sampleData()
	sum := svc.Dashboard(vendas, produtos, clientes)

	if sum.TotalRecebido != 150 || sum.TotalAReceber != 7500 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.NumVendas != 3 {
		t.Fatalf("expected 3 vendas got %d", sum.NumVendas)
	}
	if len(sum.VendasPorProduto) != 2 {
		t.Fatalf("expected 2 chart slices got %d", len(sum.VendasPorProduto))
	}
	// Largest slice first
	if sum.VendasPorProduto[0].Produto != "Notebook" || sum.VendasPorProduto[0].Total != 7500 {
		t.Fatalf("unexpected first slice: %+v", sum.VendasPorProduto[0])
	}
	if sum.VendasPorProduto[1].Produto != "Mouse" || sum.VendasPorProduto[1].Total != 150 {
		t.Fatalf("unexpected second slice: %+v", sum.VendasPorProduto[1])
	}
	if len(sum.ClientesAPagar) != 1 || sum.ClientesAPagar[0].Nome != "Ana" {
		t.Fatalf("unexpected pending clients: %+v", sum.ClientesAPagar)
	}
}

func TestDashboardSkipsOrphanSalesInChart(t *testing.T) {
	svc := NewReportService()
	vendas, produtos, clientes := sampleData()
	vendas = append(vendas, models.Venda{ID: 9, ClienteID: 1, ProdutoID: 99, Quantidade: 1, ValorTotal: 10, Status: models.StatusPago})
	sum := svc.Dashboard(vendas, produtos, clientes)
	// Orphan sale counts in totals but not in the chart.
	if sum.TotalRecebido != 160 {
		t.Fatalf("expected recebido 160 got %v", sum.TotalRecebido)
	}
	var chartTotal float64
	for _, s := range sum.VendasPorProduto {
		chartTotal += s.Total
	}
	if chartTotal != 7650 {
		t.Fatalf("expected chart total 7650 got %v", chartTotal)
	}
}

func TestClienteReport(t *testing.T) {
	svc := NewReportService()
	vendas, produtos, clientes := sampleData()
	rep := svc.ClienteReport(clientes[0], vendas, produtos)

	if rep.TotalPago != 100 || rep.TotalAPagar != 7500 {
		t.Fatalf("unexpected totals: %+v", rep)
	}
	if len(rep.Itens) != 2 {
		t.Fatalf("expected 2 items got %d", len(rep.Itens))
	}
	var sum float64
	for _, it := range rep.Itens {
		sum += it.Valor
	}
	if rep.TotalPago+rep.TotalAPagar != sum {
		t.Fatalf("paid+due %v != item sum %v", rep.TotalPago+rep.TotalAPagar, sum)
	}
	if rep.Itens[0].Produto != "Mouse" {
		t.Fatalf("unexpected item product: %+v", rep.Itens[0])
	}
}

func TestClienteReportUnknownProductLabel(t *testing.T) {
	svc := NewReportService()
	vendas, _, clientes := sampleData()
	rep := svc.ClienteReport(clientes[0], vendas, nil)
	if rep.Itens[0].Produto != "Produto não encontrado" {
		t.Fatalf("expected placeholder label, got %q", rep.Itens[0].Produto)
	}
}

func TestResumoGeral(t *testing.T) {
	svc := NewReportService()
	vendas, _, clientes := sampleData()
	rows := svc.ResumoGeral(clientes, vendas)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(rows))
	}
	if rows[0].Cliente != "Ana" || rows[0].TotalPago != 100 || rows[0].TotalAPagar != 7500 {
		t.Fatalf("unexpected Ana row: %+v", rows[0])
	}
	if rows[1].Cliente != "Bruno" || rows[1].TotalPago != 50 || rows[1].TotalAPagar != 0 {
		t.Fatalf("unexpected Bruno row: %+v", rows[1])
	}
}
