package middleware

import (
	"context"
	"net/http"

	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/utils"
)

// TokenResolver maps a session token to its user ID. The session registry
// implements it; tests substitute a stub.
type TokenResolver interface {
	Lookup(token string) (uint, bool)
}

// AccessGate guards every protected route. A request without a resolvable
// session token is denied: the denial is recorded as a single
// UNAUTHORIZED_ACCESS_ATTEMPT entry and the client is redirected to /login.
// Denial is routine control flow here, not a fault.
//
// On success the authenticated user ID is placed in the request context. The
// gate vouches for the session at the moment of the check only; it does not
// re-check mid-operation.
func AccessGate(resolver TokenResolver, logger *audit.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_id")
			if err != nil {
				logger.Record(audit.UnauthorizedAccessAttempt(r.URL.Path, r.Method))
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			userID, ok := resolver.Lookup(cookie.Value)
			if !ok {
				logger.Record(audit.UnauthorizedAccessAttempt(r.URL.Path, r.Method))
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextUserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Echo the origin back only if it's on our allow-list
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
