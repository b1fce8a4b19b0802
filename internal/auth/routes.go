package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes wires the credential endpoints onto the parent router so
// they live at the top level (/signup, /login, /logout). The rate limiter
// fronts signup and login; logout sits behind the access gate like every
// other protected route.
func (h *Handler) RegisterRoutes(r chi.Router, limiter, gate func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(limiter)
		r.Post("/signup", h.SignupHandler)
		r.Post("/login", h.LoginHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(gate)
		r.Post("/logout", h.LogoutHandler)
	})
}
