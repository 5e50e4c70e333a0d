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

type FornecedorHandler struct {
	DB    *gorm.DB
	Store *store.Store
}

func NewFornecedorHandler(db *gorm.DB, st *store.Store) *FornecedorHandler {
	return &FornecedorHandler{DB: db, Store: st}
}

type fornecedorInput struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Contato  string `json:"contato"`
	Produtos string `json:"produtos"`
}

func (in *fornecedorInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("nome", in.Nome, v)
	validation.Required("cnpj", in.CNPJ, v)
	return v
}

// List: GET /api/fornecedores
func (h *FornecedorHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.Fornecedores.Load(func() ([]models.Fornecedor, error) {
		fs := []models.Fornecedor{}
		return fs, h.DB.Order("nome asc").Find(&fs).Error
	})
	if err != nil {
		log.Printf("fornecedores: list failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_fornecedores", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

// Get: GET /api/fornecedores/{id}
func (h *FornecedorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f models.Fornecedor
	if err := h.DB.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("fornecedores: get %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, f)
}

// Create: POST /api/fornecedores
func (h *FornecedorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input fornecedorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	f := models.Fornecedor{
		Nome:     strings.TrimSpace(input.Nome),
		CNPJ:     strings.TrimSpace(input.CNPJ),
		Contato:  strings.TrimSpace(input.Contato),
		Produtos: input.Produtos,
	}
	if err := h.DB.Create(&f).Error; err != nil {
		log.Printf("fornecedores: create failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "fornecedor_create_failed", nil)
		return
	}
	h.Store.Fornecedores.Invalidate()
	httpx.JSON(w, http.StatusCreated, f)
}

// Update: PUT /api/fornecedores/{id}
func (h *FornecedorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f models.Fornecedor
	if err := h.DB.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("fornecedores: update lookup %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	var input fornecedorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	f.Nome = strings.TrimSpace(input.Nome)
	f.CNPJ = strings.TrimSpace(input.CNPJ)
	f.Contato = strings.TrimSpace(input.Contato)
	f.Produtos = input.Produtos
	if err := h.DB.Save(&f).Error; err != nil {
		log.Printf("fornecedores: update %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "fornecedor_update_failed", nil)
		return
	}
	h.Store.Fornecedores.Invalidate()
	httpx.JSON(w, http.StatusOK, f)
}

// Delete: DELETE /api/fornecedores/{id}
func (h *FornecedorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	res := h.DB.Delete(&models.Fornecedor{}, id)
	if res.Error != nil {
		log.Printf("fornecedores: delete %d failed: %v", id, res.Error)
		httpx.JSONError(w, http.StatusInternalServerError, "fornecedor_delete_failed", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	h.Store.Fornecedores.Invalidate()
	httpx.NoContent(w)
}
