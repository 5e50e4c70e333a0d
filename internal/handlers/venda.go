package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/httpx"
	"github.com/gcamargo/vendas-app/internal/models"
	"github.com/gcamargo/vendas-app/internal/store"
	"github.com/gcamargo/vendas-app/internal/validation"
)

type VendaHandler struct {
	DB    *gorm.DB
	Store *store.Store
}

func NewVendaHandler(db *gorm.DB, st *store.Store) *VendaHandler {
	return &VendaHandler{DB: db, Store: st}
}

// valorTotal comes from the caller (preco * quantidade computed at the form),
// stored verbatim. The FK columns are only checked by the database constraint.
type vendaInput struct {
	ClienteID      uint      `json:"clienteId"`
	ProdutoID      uint      `json:"produtoId"`
	Quantidade     int       `json:"quantidade"`
	ValorTotal     float64   `json:"valorTotal"`
	FormaPagamento string    `json:"formaPagamento"`
	Status         string    `json:"status"`
	Data           time.Time `json:"data"`
}

func (in *vendaInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.PositiveUint("clienteId", in.ClienteID, v)
	validation.PositiveUint("produtoId", in.ProdutoID, v)
	validation.PositiveInt("quantidade", in.Quantidade, v)
	validation.NonNegativeFloat("valorTotal", in.ValorTotal, v)
	if in.Status != "" && in.Status != models.StatusPago && in.Status != models.StatusAPagar {
		v["status"] = "invalid_status"
	}
	return v
}

// List: GET /api/vendas - reverse chronological, cliente/produto embedded.
func (h *VendaHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.Vendas.Load(func() ([]models.Venda, error) {
		vs := []models.Venda{}
		return vs, h.DB.Preload("Cliente").Preload("Produto").Order("data desc").Find(&vs).Error
	})
	if err != nil {
		log.Printf("vendas: list failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_vendas", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

// Get: GET /api/vendas/{id}
func (h *VendaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var v models.Venda
	if err := h.DB.Preload("Cliente").Preload("Produto").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("vendas: get %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, v)
}

// Create: POST /api/vendas
func (h *VendaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input vendaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	venda := models.Venda{
		ClienteID:      input.ClienteID,
		ProdutoID:      input.ProdutoID,
		Quantidade:     input.Quantidade,
		ValorTotal:     input.ValorTotal,
		FormaPagamento: input.FormaPagamento,
		Status:         input.Status,
	}
	if venda.Status == "" {
		venda.Status = models.StatusAPagar
	}
	venda.Data = input.Data
	if venda.Data.IsZero() {
		venda.Data = time.Now()
	}
	if err := h.DB.Create(&venda).Error; err != nil {
		log.Printf("vendas: create failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "venda_create_failed", nil)
		return
	}
	// Reload with associations so the response matches GET /api/vendas/{id}.
	if err := h.DB.Preload("Cliente").Preload("Produto").First(&venda, venda.ID).Error; err != nil {
		log.Printf("vendas: reload %d failed: %v", venda.ID, err)
	}
	h.Store.Vendas.Invalidate()
	httpx.JSON(w, http.StatusCreated, venda)
}

// Update: PUT /api/vendas/{id}
func (h *VendaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var venda models.Venda
	if err := h.DB.First(&venda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("vendas: update lookup %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	var input vendaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	venda.ClienteID = input.ClienteID
	venda.ProdutoID = input.ProdutoID
	venda.Quantidade = input.Quantidade
	venda.ValorTotal = input.ValorTotal
	venda.FormaPagamento = input.FormaPagamento
	if input.Status != "" {
		venda.Status = input.Status
	}
	if !input.Data.IsZero() {
		venda.Data = input.Data
	}
	if err := h.DB.Save(&venda).Error; err != nil {
		log.Printf("vendas: update %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "venda_update_failed", nil)
		return
	}
	if err := h.DB.Preload("Cliente").Preload("Produto").First(&venda, venda.ID).Error; err != nil {
		log.Printf("vendas: reload %d failed: %v", venda.ID, err)
	}
	h.Store.Vendas.Invalidate()
	httpx.JSON(w, http.StatusOK, venda)
}

// Delete: DELETE /api/vendas/{id}
func (h *VendaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	res := h.DB.Delete(&models.Venda{}, id)
	if res.Error != nil {
		log.Printf("vendas: delete %d failed: %v", id, res.Error)
		httpx.JSONError(w, http.StatusInternalServerError, "venda_delete_failed", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	h.Store.Vendas.Invalidate()
	httpx.NoContent(w)
}

// DeleteAll: DELETE /api/vendas - clears the table. The confirmation dialog
// lives in the UI; here a valid token is the only gate.
func (h *VendaHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	res := h.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Venda{})
	if res.Error != nil {
		log.Printf("vendas: clear all failed: %v", res.Error)
		httpx.JSONError(w, http.StatusInternalServerError, "venda_clear_failed", nil)
		return
	}
	h.Store.Vendas.Invalidate()
	httpx.NoContent(w)
}
