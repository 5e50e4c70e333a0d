package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/models"
	"github.com/gcamargo/vendas-app/internal/services"
	"github.com/gcamargo/vendas-app/internal/store"
)

func seedReportData(t *testing.T, conn *gorm.DB) models.Cliente {
	t.Helper()
	c := models.Cliente{Nome: "João", Email: "joao@email.com", Telefone: "119", Status: models.StatusAPagar}
	if err := conn.Create(&c).Error; err != nil {
		t.Fatalf("cliente: %v", err)
	}
	p := models.Produto{Nome: "Teclado", Codigo: "TCD-1", Preco: 450, Estoque: 5}
	if err := conn.Create(&p).Error; err != nil {
		t.Fatalf("produto: %v", err)
	}
	vendas := []models.Venda{
		{ClienteID: c.ID, ProdutoID: p.ID, Quantidade: 1, ValorTotal: 450, Status: models.StatusPago, Data: time.Now()},
		{ClienteID: c.ID, ProdutoID: p.ID, Quantidade: 2, ValorTotal: 900, Status: models.StatusAPagar, Data: time.Now()},
	}
	if err := conn.Create(&vendas).Error; err != nil {
		t.Fatalf("vendas: %v", err)
	}
	return c
}

func TestClienteReportTotalsMatchSaleSum(t *testing.T) {
	conn := setupTestDB(t)
	h := NewReportHandler(conn, services.NewReportService(), store.New())
	c := seedReportData(t, conn)
	idStr := strconv.Itoa(int(c.ID))

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/clientes/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	h.ClienteReport(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var rep services.ClienteReport
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.TotalPago != 450 || rep.TotalAPagar != 900 {
		t.Fatalf("unexpected totals: %+v", rep)
	}
	var sum float64
	for _, it := range rep.Itens {
		sum += it.Valor
	}
	if rep.TotalPago+rep.TotalAPagar != sum {
		t.Fatalf("paid+due %v != item sum %v", rep.TotalPago+rep.TotalAPagar, sum)
	}
}

func TestClienteReportNotFound(t *testing.T) {
	conn := setupTestDB(t)
	h := NewReportHandler(conn, services.NewReportService(), store.New())
	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/clientes/999", nil)
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()
	h.ClienteReport(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestClientePDFDownload(t *testing.T) {
	conn := setupTestDB(t)
	h := NewReportHandler(conn, services.NewReportService(), store.New())
	c := seedReportData(t, conn)
	idStr := strconv.Itoa(int(c.ID))

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/clientes/"+idStr+"/pdf", nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	h.ClientePDF(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestResumoGeralPDFDownload(t *testing.T) {
	conn := setupTestDB(t)
	h := NewReportHandler(conn, services.NewReportService(), store.New())
	seedReportData(t, conn)

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/vendas/pdf", nil)
	w := httptest.NewRecorder()
	h.ResumoGeralPDF(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF")
	}
}
