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

type ProdutoHandler struct {
	DB    *gorm.DB
	Store *store.Store
}

func NewProdutoHandler(db *gorm.DB, st *store.Store) *ProdutoHandler {
	return &ProdutoHandler{DB: db, Store: st}
}

type produtoInput struct {
	Nome      string  `json:"nome"`
	Codigo    string  `json:"codigo"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Estoque   int     `json:"estoque"`
}

func (in *produtoInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("nome", in.Nome, v)
	validation.Required("codigo", in.Codigo, v)
	validation.NonNegativeFloat("preco", in.Preco, v)
	validation.NonNegativeInt("estoque", in.Estoque, v)
	return v
}

// List: GET /api/produtos
func (h *ProdutoHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.Produtos.Load(func() ([]models.Produto, error) {
		ps := []models.Produto{}
		return ps, h.DB.Order("nome asc").Find(&ps).Error
	})
	if err != nil {
		log.Printf("produtos: list failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_produtos", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

// Get: GET /api/produtos/{id}
func (h *ProdutoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var p models.Produto
	if err := h.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("produtos: get %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

// Create: POST /api/produtos
func (h *ProdutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input produtoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	p := models.Produto{
		Nome:      strings.TrimSpace(input.Nome),
		Codigo:    strings.ToUpper(strings.TrimSpace(input.Codigo)),
		Descricao: input.Descricao,
		Preco:     input.Preco,
		Estoque:   input.Estoque,
	}
	if err := h.DB.Create(&p).Error; err != nil {
		log.Printf("produtos: create failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "produto_create_failed", nil)
		return
	}
	h.Store.Produtos.Invalidate()
	httpx.JSON(w, http.StatusCreated, p)
}

// Update: PUT /api/produtos/{id}
func (h *ProdutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var p models.Produto
	if err := h.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		log.Printf("produtos: update lookup %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	var input produtoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := input.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	p.Nome = strings.TrimSpace(input.Nome)
	p.Codigo = strings.ToUpper(strings.TrimSpace(input.Codigo))
	p.Descricao = input.Descricao
	p.Preco = input.Preco
	p.Estoque = input.Estoque
	if err := h.DB.Save(&p).Error; err != nil {
		log.Printf("produtos: update %d failed: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "produto_update_failed", nil)
		return
	}
	h.Store.Produtos.Invalidate()
	httpx.JSON(w, http.StatusOK, p)
}

// Delete: DELETE /api/produtos/{id}
func (h *ProdutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	res := h.DB.Delete(&models.Produto{}, id)
	if res.Error != nil {
		log.Printf("produtos: delete %d failed: %v", id, res.Error)
		httpx.JSONError(w, http.StatusInternalServerError, "produto_delete_failed", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	h.Store.Produtos.Invalidate()
	httpx.NoContent(w)
}
