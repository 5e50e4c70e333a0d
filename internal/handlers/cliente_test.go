package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gcamargo/vendas-app/internal/models"
	"github.com/gcamargo/vendas-app/internal/store"
)

func TestClienteLifecycle(t *testing.T) {
	conn := setupTestDB(t)
	h := NewClienteHandler(conn, store.New())

	// Create
	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader(`{"nome":"João da Silva","email":"joao@email.com","telefone":"11987654321","status":"A pagar"}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created models.Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	idStr := strconv.Itoa(int(created.ID))

	// Get returns the input fields plus the assigned id
	req = httptest.NewRequest(http.MethodGet, "/api/clientes/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", w.Code)
	}
	var got models.Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if got.Nome != "João da Silva" || got.Email != "joao@email.com" || got.Status != models.StatusAPagar {
		t.Fatalf("unexpected cliente: %+v", got)
	}

	// Update replaces the fields
	req = httptest.NewRequest(http.MethodPut, "/api/clientes/"+idStr, strings.NewReader(`{"nome":"João Souza","email":"","telefone":"","status":"Pago"}`))
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	req = httptest.NewRequest(http.MethodGet, "/api/clientes/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	h.Get(w, req)
	var updated models.Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Nome != "João Souza" || updated.Email != "" || updated.Status != models.StatusPago {
		t.Fatalf("update not reflected: %+v", updated)
	}

	// Delete, then get -> 404, delete again -> 404
	req = httptest.NewRequest(http.MethodDelete, "/api/clientes/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204 got %d", w.Code)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/clientes/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404 got %d", w.Code)
	}
	req = httptest.NewRequest(http.MethodDelete, "/api/clientes/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404 got %d", w.Code)
	}
}

func TestClienteListOrderedByName(t *testing.T) {
	conn := setupTestDB(t)
	h := NewClienteHandler(conn, store.New())
	conn.Create(&models.Cliente{Nome: "Zeca", Status: models.StatusPago})
	conn.Create(&models.Cliente{Nome: "Ana", Status: models.StatusPago})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var rows []models.Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[0].Nome != "Ana" || rows[1].Nome != "Zeca" {
		t.Fatalf("unexpected order: %+v", rows)
	}
}

func TestClienteUpdateNotFound(t *testing.T) {
	conn := setupTestDB(t)
	h := NewClienteHandler(conn, store.New())
	req := httptest.NewRequest(http.MethodPut, "/api/clientes/999", strings.NewReader(`{"nome":"X"}`))
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestClienteCreateValidation(t *testing.T) {
	conn := setupTestDB(t)
	h := NewClienteHandler(conn, store.New())
	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader(`{"nome":"","status":"Atrasado"}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_failed") {
		t.Fatalf("expected validation_failed body, got %s", w.Body.String())
	}
}
