package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/httpx"
	"github.com/gcamargo/vendas-app/internal/models"
	"github.com/gcamargo/vendas-app/internal/store"
	"github.com/gcamargo/vendas-app/internal/validation"
)

type ClienteHandler struct {
	DB    *gorm.DB
	Store *store.Store
}

func NewClienteHandler(db *gorm.DB, st *store.Store) *ClienteHandler {
	return &ClienteHandler{DB: db, Store: st}
}

type clienteInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Status   string `json:"status"`
}

func (in *clienteInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("nome", in.Nome, v)
	if in.Status != "" && in.Status != models.StatusPago && in.Status != models.StatusAPagar {
		v["status"] = "invalid_status"
	}
	return v
}

// List: GET /api/clientes - alphabetical, served through the snapshot cache so
// a transient read failure falls back to the last good set.
func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.Clientes.Load(func() ([]models.Cliente, error) {
		cs := []models.Cliente{}
		return cs, h.DB.Order("nome asc").Find(&cs).Error
	})
	if err != nil {
		log.Printf("clientes: list failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clientes", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

// Get: GET /api/clientes/{id}
func (h *ClienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var c models.Cliente
	if err := h.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("clientes: get %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Create: POST /api/clientes
func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input clienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	c := models.Cliente{
		Nome:     strings.TrimSpace(input.Nome),
		Email:    strings.TrimSpace(input.Email),
		Telefone: strings.TrimSpace(input.Telefone),
		Status:   input.Status,
	}
	if c.Status == "" {
		c.Status = models.StatusPago
	}
	if err := h.DB.Create(&c).Error; err != nil {
		log.Printf("clientes: create failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "cliente_create_failed", nil)
		return
	}
	h.Store.Clientes.Invalidate()
	httpx.JSON(w, http.StatusCreated, c)
}

// Update: PUT /api/clientes/{id} - whole-record replace of the input fields.
func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var c models.Cliente
	if err := h.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("clientes: update lookup %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	var input clienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	c.Nome = strings.TrimSpace(input.Nome)
	c.Email = strings.TrimSpace(input.Email)
	c.Telefone = strings.TrimSpace(input.Telefone)
	if input.Status != "" {
		c.Status = input.Status
	}
	if err := h.DB.Save(&c).Error; err != nil {
		log.Printf("clientes: update %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "cliente_update_failed", nil)
		return
	}
	h.Store.Clientes.Invalidate()
	httpx.JSON(w, http.StatusOK, c)
}

// Delete: DELETE /api/clientes/{id} - permanent, 404 when the row is already gone.
func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	res := h.DB.Delete(&models.Cliente{}, id)
	if res.Error != nil {
		log.Printf("clientes: delete %d failed: %v", id, res.Error)
		httpx.JSONError(w, http.StatusInternalServerError, "cliente_delete_failed", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	h.Store.Clientes.Invalidate()
	httpx.NoContent(w)
}
