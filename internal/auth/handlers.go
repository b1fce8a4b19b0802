package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/CareVault/CV-Backend/internal/apperr"
	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/session"
	"github.com/CareVault/CV-Backend/internal/utils"
)

type Handler struct {
	Store    UserStore
	Sessions *session.Registry
	Audit    *audit.Logger
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Audit.Record(audit.SignupValidationError("Malformed request body"))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// Field checks mirror the signup form; each miss is its own audit entry.
	if input.Email == "" {
		h.Audit.Record(audit.SignupValidationError("Missing email"))
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	if input.Name == "" {
		h.Audit.Record(audit.SignupValidationError("Missing name"))
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if input.Password == "" {
		h.Audit.Record(audit.SignupValidationError("Missing password"))
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}
	if len(input.Password) < MinPasswordLength {
		h.Audit.Record(audit.SignupValidationError("Password too short"))
		http.Error(w, fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength), http.StatusBadRequest)
		return
	}

	user, err := h.Store.Create(input.Email, input.Name, input.Password)
	if err != nil {
		// A taken email surfaces as the same generic failure as any other
		// creation error; the audit entry keeps the real reason.
		h.Audit.Record(audit.UserSignupError(err.Error(), input.Email))
		http.Error(w, "Error during signup", http.StatusInternalServerError)
		return
	}

	h.Audit.Record(audit.UserSignupSuccess(user.ID, user.Email))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	user, err := h.Store.Verify(input.Email, input.Password)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		h.Audit.Record(audit.LoginAttemptUnknownUser(input.Email))
		// Same public message as the wrong-password case.
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	case errors.Is(err, apperr.ErrInvalidPassword):
		h.Audit.Record(audit.LoginAttemptInvalidPassword(user.ID, input.Email))
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	case err != nil:
		h.Audit.Record(audit.LoginError(err.Error(), input.Email))
		http.Error(w, "Error during login", http.StatusInternalServerError)
		return
	}

	token := h.Sessions.Start(user.ID)
	http.SetCookie(w, sessionCookie(token, 0))

	h.Audit.Record(audit.UserLoginSuccess(user.ID, user.Email))

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Login successful")
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	// The gate already resolved the cookie; losing the race to a concurrent
	// logout is recorded but still answered as success.
	if cookie, err := r.Cookie("session_id"); err == nil {
		if err := h.Sessions.End(cookie.Value); err != nil {
			h.Audit.Record(audit.LogoutError(err.Error(), userID))
		} else {
			h.Audit.Record(audit.UserLogoutSuccess(userID))
		}
	} else {
		h.Audit.Record(audit.LogoutError("missing session cookie", userID))
	}

	http.SetCookie(w, sessionCookie("", -1))

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Logout successful")
}
