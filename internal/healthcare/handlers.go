package healthcare

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/db"
	"github.com/CareVault/CV-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Handler struct {
	Audit *audit.Logger
}

type recordInput struct {
	PatientName string   `json:"patient_name"`
	Diagnosis   string   `json:"diagnosis"`
	Treatment   string   `json:"treatment"`
	Medications []string `json:"medications"`
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusInternalServerError)
		return
	}

	var input recordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.PatientName == "" || input.Diagnosis == "" || input.Treatment == "" {
		http.Error(w, "Patient name, diagnosis and treatment are required", http.StatusBadRequest)
		return
	}

	info := HealthcareInfo{
		PatientName: input.PatientName,
		Diagnosis:   input.Diagnosis,
		Treatment:   input.Treatment,
		Medications: pq.StringArray(input.Medications),
		UserID:      userID,
	}
	if err := db.DB.Create(&info).Error; err != nil {
		h.Audit.Record(audit.HealthcareInfoCreateError(err.Error(), userID))
		http.Error(w, "Error creating healthcare info", http.StatusInternalServerError)
		return
	}

	h.Audit.Record(audit.HealthcareInfoCreated(userID, info.ID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(info)
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusInternalServerError)
		return
	}

	var infos []HealthcareInfo
	if err := db.DB.Find(&infos, "user_id = ?", userID).Error; err != nil {
		h.Audit.Record(audit.HealthcareInfoReadError(err.Error(), userID))
		http.Error(w, "Error fetching healthcare info", http.StatusInternalServerError)
		return
	}

	h.Audit.Record(audit.HealthcareInfoRead(userID))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusInternalServerError)
		return
	}
	id := chi.URLParam(r, "id")

	// Scoped by owner: a record belonging to someone else looks identical to
	// a record that does not exist.
	var info HealthcareInfo
	err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.Audit.Record(audit.HealthcareInfoUpdateUnauthorized(userID, id))
		http.Error(w, "Healthcare info not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Audit.Record(audit.HealthcareInfoUpdateError(err.Error(), userID))
		http.Error(w, "Error updating healthcare info", http.StatusInternalServerError)
		return
	}

	var input recordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updates := map[string]any{
		"patient_name": input.PatientName,
		"diagnosis":    input.Diagnosis,
		"treatment":    input.Treatment,
	}
	if input.Medications != nil {
		updates["medications"] = pq.StringArray(input.Medications)
	}
	if err := db.DB.Model(&info).Updates(updates).Error; err != nil {
		h.Audit.Record(audit.HealthcareInfoUpdateError(err.Error(), userID))
		http.Error(w, "Error updating healthcare info", http.StatusInternalServerError)
		return
	}
	info.PatientName = input.PatientName
	info.Diagnosis = input.Diagnosis
	info.Treatment = input.Treatment
	if input.Medications != nil {
		info.Medications = pq.StringArray(input.Medications)
	}

	h.Audit.Record(audit.HealthcareInfoUpdated(userID, id))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusInternalServerError)
		return
	}
	id := chi.URLParam(r, "id")

	var info HealthcareInfo
	err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.Audit.Record(audit.HealthcareInfoDeleteUnauthorized(userID, id))
		http.Error(w, "Healthcare info not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Audit.Record(audit.HealthcareInfoDeleteError(err.Error(), userID))
		http.Error(w, "Error deleting healthcare info", http.StatusInternalServerError)
		return
	}

	if err := db.DB.Delete(&info).Error; err != nil {
		h.Audit.Record(audit.HealthcareInfoDeleteError(err.Error(), userID))
		http.Error(w, "Error deleting healthcare info", http.StatusInternalServerError)
		return
	}

	h.Audit.Record(audit.HealthcareInfoDeleted(userID, id))

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Healthcare info deleted")
}
