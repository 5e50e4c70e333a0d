package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/auth"
	"github.com/gcamargo/vendas-app/internal/config"
	"github.com/gcamargo/vendas-app/internal/handlers"
	"github.com/gcamargo/vendas-app/internal/httpx"
	"github.com/gcamargo/vendas-app/internal/services"
	"github.com/gcamargo/vendas-app/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
// Everything but login and health sits behind RequireAuth.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()
	st := store.New()

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Servidor funcionando"})
	})
	//revive:enable:unused-parameter

	ah := handlers.NewAuthHandler(db, cfg.TokenTTL)
	mux.HandleFunc("POST /api/auth/login", ah.Login)

	protect := func(h http.HandlerFunc) http.Handler {
		return auth.RequireAuth(h)
	}

	ch := handlers.NewClienteHandler(db, st)
	mux.Handle("GET /api/clientes", protect(ch.List))
	mux.Handle("POST /api/clientes", protect(ch.Create))
	mux.Handle("GET /api/clientes/{id}", protect(ch.Get))
	mux.Handle("PUT /api/clientes/{id}", protect(ch.Update))
	mux.Handle("DELETE /api/clientes/{id}", protect(ch.Delete))

	ph := handlers.NewProdutoHandler(db, st)
	mux.Handle("GET /api/produtos", protect(ph.List))
	mux.Handle("POST /api/produtos", protect(ph.Create))
	mux.Handle("GET /api/produtos/{id}", protect(ph.Get))
	mux.Handle("PUT /api/produtos/{id}", protect(ph.Update))
	mux.Handle("DELETE /api/produtos/{id}", protect(ph.Delete))

	fh := handlers.NewFornecedorHandler(db, st)
	mux.Handle("GET /api/fornecedores", protect(fh.List))
	mux.Handle("POST /api/fornecedores", protect(fh.Create))
	mux.Handle("GET /api/fornecedores/{id}", protect(fh.Get))
	mux.Handle("PUT /api/fornecedores/{id}", protect(fh.Update))
	mux.Handle("DELETE /api/fornecedores/{id}", protect(fh.Delete))

	vh := handlers.NewVendaHandler(db, st)
	mux.Handle("GET /api/vendas", protect(vh.List))
	mux.Handle("POST /api/vendas", protect(vh.Create))
	mux.Handle("DELETE /api/vendas", protect(vh.DeleteAll))
	mux.Handle("GET /api/vendas/{id}", protect(vh.Get))
	mux.Handle("PUT /api/vendas/{id}", protect(vh.Update))
	mux.Handle("DELETE /api/vendas/{id}", protect(vh.Delete))

	rh := handlers.NewReportHandler(db, services.NewReportService(), st)
	mux.Handle("GET /api/dashboard", protect(rh.Dashboard))
	mux.Handle("GET /api/relatorios/vendas", protect(rh.ResumoGeral))
	mux.Handle("GET /api/relatorios/vendas/pdf", protect(rh.ResumoGeralPDF))
	mux.Handle("GET /api/relatorios/clientes/{id}", protect(rh.ClienteReport))
	mux.Handle("GET /api/relatorios/clientes/{id}/pdf", protect(rh.ClientePDF))

	return withRecover(withLogging(mux))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
