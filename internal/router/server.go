package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/viviapp/pedidos/internal/handlers"
)

const (
	compressLevel = 5
)

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(address string, h *handlers.HandlerSet) *Router {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(compressLevel))
	// the consumer is a browser app served from elsewhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/pedidos", h.HandleGetOrders)
	r.Post("/api/pedidos", h.HandleCreateOrder)
	r.Put("/api/pedidos/{id}", h.HandleUpdateOrder)
	r.Delete("/api/pedidos/{id}", h.HandleDeleteOrder)

	r.Post("/api/pedidos/{id}/pagar", h.HandleMarkPaid)
	r.Post("/api/pedidos/{id}/pagar/reintentar", h.HandleRetryRemoval)

	r.Get("/api/pagados/exportar", h.HandleExport)

	return &Router{router: r, address: address}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}
