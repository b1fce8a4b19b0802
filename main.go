package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/auth"
	"github.com/CareVault/CV-Backend/internal/config"
	"github.com/CareVault/CV-Backend/internal/dashboard"
	"github.com/CareVault/CV-Backend/internal/db"
	"github.com/CareVault/CV-Backend/internal/healthcare"
	"github.com/CareVault/CV-Backend/internal/logviewer"
	"github.com/CareVault/CV-Backend/internal/middleware"
	"github.com/CareVault/CV-Backend/internal/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)
	if cfg.ResetOnStart {
		log.Println("reset_on_start is set: dropping application schemas")
		for _, schema := range []string{"app_auth", "app_records"} {
			if err := db.DropSchema(db.DB, schema); err != nil {
				log.Fatal("Failed to drop schema ", schema, ": ", err)
			}
		}
	}
	auth.Init()
	healthcare.Init()

	auditLog, err := audit.Open(cfg.AuditLogPath)
	if err != nil {
		log.Fatal("Failed to open audit log: ", err)
	}
	defer auditLog.Close()

	registry := session.NewRegistry()
	gate := middleware.AccessGate(registry, auditLog)
	limiter := middleware.RateLimit(cfg.LoginRatePerMinute)

	authHandler := &auth.Handler{
		Store:    &auth.GormStore{DB: db.DB},
		Sessions: registry,
		Audit:    auditLog,
	}
	dashboardHandler := &dashboard.Handler{Store: authHandler.Store, Audit: auditLog}
	healthcareHandler := &healthcare.Handler{Audit: auditLog}
	logviewerHandler := &logviewer.Handler{Audit: auditLog}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	authHandler.RegisterRoutes(r, limiter, gate)
	r.Mount("/dashboard", dashboardHandler.SetupRoutes(gate))
	r.Mount("/healthcare", healthcareHandler.SetupRoutes(gate))
	r.Mount("/logs", logviewerHandler.SetupRoutes(gate))

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
