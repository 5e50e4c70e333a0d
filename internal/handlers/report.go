package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/httpx"
	"github.com/gcamargo/vendas-app/internal/models"
	"github.com/gcamargo/vendas-app/internal/pdf"
	"github.com/gcamargo/vendas-app/internal/services"
	"github.com/gcamargo/vendas-app/internal/store"
)

type ReportHandler struct {
	DB    *gorm.DB
	Svc   *services.ReportService
	Store *store.Store
}

func NewReportHandler(db *gorm.DB, svc *services.ReportService, st *store.Store) *ReportHandler {
	return &ReportHandler{DB: db, Svc: svc, Store: st}
}

// loadAll fetches the three collections the reports aggregate over, each
// through its snapshot cache (stale view beats an empty dashboard).
func (h *ReportHandler) loadAll() ([]models.Venda, []models.Produto, []models.Cliente, error) {
	vendas, err := h.Store.Vendas.Load(func() ([]models.Venda, error) {
		vs := []models.Venda{}
		return vs, h.DB.Preload("Cliente").Preload("Produto").Order("data desc").Find(&vs).Error
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load vendas: %w", err)
	}
	produtos, err := h.Store.Produtos.Load(func() ([]models.Produto, error) {
		ps := []models.Produto{}
		return ps, h.DB.Order("nome asc").Find(&ps).Error
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load produtos: %w", err)
	}
	clientes, err := h.Store.Clientes.Load(func() ([]models.Cliente, error) {
		cs := []models.Cliente{}
		return cs, h.DB.Order("nome asc").Find(&cs).Error
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load clientes: %w", err)
	}
	return vendas, produtos, clientes, nil
}

// Dashboard: GET /api/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	vendas, produtos, clientes, err := h.loadAll()
	if err != nil {
		log.Printf("dashboard: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "dashboard_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, h.Svc.Dashboard(vendas, produtos, clientes))
}

// ResumoGeral: GET /api/relatorios/vendas
func (h *ReportHandler) ResumoGeral(w http.ResponseWriter, r *http.Request) {
	vendas, _, clientes, err := h.loadAll()
	if err != nil {
		log.Printf("relatorio geral: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "report_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, h.Svc.ResumoGeral(clientes, vendas))
}

// ClienteReport: GET /api/relatorios/clientes/{id}
func (h *ReportHandler) ClienteReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.buildClienteReport(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

// ClientePDF: GET /api/relatorios/clientes/{id}/pdf
func (h *ReportHandler) ClientePDF(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.buildClienteReport(w, r)
	if !ok {
		return
	}
	data, err := pdf.ClienteStatement(rep)
	if err != nil {
		log.Printf("relatorio cliente %d: pdf failed: %v", rep.Cliente.ID, err)
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	filename := "relatorio_" + strings.ReplaceAll(rep.Cliente.Nome, " ", "_") + ".pdf"
	servePDF(w, filename, data)
}

// ResumoGeralPDF: GET /api/relatorios/vendas/pdf
func (h *ReportHandler) ResumoGeralPDF(w http.ResponseWriter, r *http.Request) {
	vendas, _, clientes, err := h.loadAll()
	if err != nil {
		log.Printf("relatorio geral pdf: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "report_failed", nil)
		return
	}
	data, err := pdf.ResumoGeral(h.Svc.ResumoGeral(clientes, vendas))
	if err != nil {
		log.Printf("relatorio geral pdf: generation failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	servePDF(w, "relatorio_geral_vendas.pdf", data)
}

func (h *ReportHandler) buildClienteReport(w http.ResponseWriter, r *http.Request) (services.ClienteReport, bool) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return services.ClienteReport{}, false
	}
	var cliente models.Cliente
	if err := h.DB.First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return services.ClienteReport{}, false
		}
		log.Printf("relatorio cliente %d: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return services.ClienteReport{}, false
	}
	vendas, produtos, _, err := h.loadAll()
	if err != nil {
		log.Printf("relatorio cliente %d: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "report_failed", nil)
		return services.ClienteReport{}, false
	}
	return h.Svc.ClienteReport(cliente, vendas, produtos), true
}

func servePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		_ = err
	}
}
