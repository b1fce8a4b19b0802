package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CareVault/CV-Backend/internal/apperr"
	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/auth"
	"github.com/CareVault/CV-Backend/internal/utils"
)

type Handler struct {
	Store auth.UserStore
	Audit *audit.Logger
}

func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusInternalServerError)
		return
	}

	user, err := h.Store.FindByID(userID)
	if errors.Is(err, apperr.ErrNotFound) {
		// A live session pointing at a vanished user is worth its own trail.
		h.Audit.Record(audit.UserNotFound(userID))
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		h.Audit.Record(audit.DashboardError(err.Error(), userID))
		http.Error(w, "Error accessing dashboard", http.StatusInternalServerError)
		return
	}

	h.Audit.Record(audit.DashboardAccess(user.ID))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
	})
}
