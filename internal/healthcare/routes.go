package healthcare

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) SetupRoutes(gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(gate)

	r.Post("/", h.CreateHandler)
	r.Get("/", h.ListHandler)
	r.Put("/{id}", h.UpdateHandler)
	r.Delete("/{id}", h.DeleteHandler)

	return r
}
