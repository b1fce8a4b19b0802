package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) SetupRoutes(gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(gate)

	r.Get("/", h.DashboardHandler)

	return r
}
