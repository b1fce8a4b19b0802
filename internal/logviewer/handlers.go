package logviewer

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/utils"
)

type Handler struct {
	Audit *audit.Logger
}

// LogsHandler serves the full audit history to an authenticated viewer.
// Corrupt entries are skipped by Replay; the surviving history is still
// served and the anomaly raised in the process log.
func (h *Handler) LogsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusInternalServerError)
		return
	}

	entries, err := h.Audit.Replay()
	var corrupt *audit.CorruptionError
	if err != nil && !errors.As(err, &corrupt) {
		h.Audit.Record(audit.LogViewError(err.Error(), userID))
		http.Error(w, "Error viewing logs", http.StatusInternalServerError)
		return
	}
	if corrupt != nil {
		log.Printf("ALERT: %v", corrupt)
	}

	h.Audit.Record(audit.LogViewAccess(userID))

	if entries == nil {
		entries = []audit.Entry{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
