package healthcare_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/CareVault/CV-Backend/internal/audit"
	"github.com/CareVault/CV-Backend/internal/auth"
	"github.com/CareVault/CV-Backend/internal/db"
	"github.com/CareVault/CV-Backend/internal/healthcare"
	"github.com/CareVault/CV-Backend/internal/middleware"
	"github.com/CareVault/CV-Backend/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// dbAvailable tracks whether the database connection was established.
var dbAvailable bool

// testServer is the shared httptest server for all integration tests.
var testServer *httptest.Server

func TestMain(m *testing.M) {
	// Load .env.local relative to the backend root (two directories up).
	_ = godotenv.Load("../../.env.local")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// No database available — skip all integration tests gracefully.
		os.Exit(m.Run())
	}

	db.Connect(databaseURL)
	dbAvailable = true

	// Set up tables (idempotent).
	auth.Init()
	healthcare.Init()

	tmpDir, err := os.MkdirTemp("", "carevault-audit")
	if err != nil {
		fmt.Fprintln(os.Stderr, "temp dir error:", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmpDir)

	auditLog, err := audit.Open(filepath.Join(tmpDir, "security.log"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "audit open error:", err)
		os.Exit(1)
	}
	defer auditLog.Close()

	registry := session.NewRegistry()
	gate := middleware.AccessGate(registry, auditLog)
	limiter := middleware.RateLimit(0)

	authHandler := &auth.Handler{
		Store:    &auth.GormStore{DB: db.DB},
		Sessions: registry,
		Audit:    auditLog,
	}
	healthcareHandler := &healthcare.Handler{Audit: auditLog}

	// Mount routes on a chi router, matching production setup in main.go.
	r := chi.NewRouter()
	authHandler.RegisterRoutes(r, limiter, gate)
	r.Mount("/healthcare", healthcareHandler.SetupRoutes(gate))

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// signupAndLogin creates a unique user through the real endpoints, logs it in
// and returns a cookie-carrying client. Cleanup removes the user and any
// records it created.
func signupAndLogin(t *testing.T) (*http.Client, string) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	email := fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8])
	password := "TestPass123!"

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar error: %v", err)
	}
	client := &http.Client{Jar: jar}

	signup, err := json.Marshal(map[string]string{"email": email, "name": "Integration Test", "password": password})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	resp, err := client.Post(testServer.URL+"/signup", "application/json", bytes.NewReader(signup))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", resp.StatusCode)
	}

	t.Cleanup(func() {
		var user auth.User
		if err := db.DB.First(&user, "email = ?", email).Error; err == nil {
			db.DB.Where("user_id = ?", user.ID).Delete(&healthcare.HealthcareInfo{})
			db.DB.Delete(&user)
		}
	})

	login, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	resp, err = client.Post(testServer.URL+"/login", "application/json", bytes.NewReader(login))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}

	return client, email
}

func createRecord(t *testing.T, client *http.Client, patient string) healthcare.HealthcareInfo {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"patient_name": patient,
		"diagnosis":    "Seasonal allergies",
		"treatment":    "Antihistamines as needed",
		"medications":  []string{"cetirizine"},
	})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	resp, err := client.Post(testServer.URL+"/healthcare", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}

	var info healthcare.HealthcareInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode created record: %v", err)
	}
	return info
}

func listRecords(t *testing.T, client *http.Client) []healthcare.HealthcareInfo {
	t.Helper()

	resp, err := client.Get(testServer.URL + "/healthcare")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}

	var infos []healthcare.HealthcareInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	return infos
}

// TestHealthcareCRUD_Lifecycle exercises create, list, update and delete for
// a single owner end to end.
func TestHealthcareCRUD_Lifecycle(t *testing.T) {
	client, _ := signupAndLogin(t)

	created := createRecord(t, client, "Jane Roe")
	if created.ID == 0 {
		t.Fatal("expected a record ID")
	}

	infos := listRecords(t, client)
	if len(infos) != 1 || infos[0].PatientName != "Jane Roe" {
		t.Fatalf("unexpected list after create: %+v", infos)
	}

	update, err := json.Marshal(map[string]any{
		"patient_name": "Jane Roe",
		"diagnosis":    "Allergic rhinitis",
		"treatment":    "Daily antihistamine",
		"medications":  []string{"loratadine"},
	})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/healthcare/%d", testServer.URL, created.ID), bytes.NewReader(update))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}

	infos = listRecords(t, client)
	if len(infos) != 1 || infos[0].Diagnosis != "Allergic rhinitis" {
		t.Fatalf("unexpected list after update: %+v", infos)
	}

	req, err = http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/healthcare/%d", testServer.URL, created.ID), nil)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}

	if infos = listRecords(t, client); len(infos) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", infos)
	}
}

// TestHealthcareOwnership verifies that another user's record is
// indistinguishable from a missing one.
func TestHealthcareOwnership(t *testing.T) {
	owner, _ := signupAndLogin(t)
	created := createRecord(t, owner, "Jane Roe")

	intruder, _ := signupAndLogin(t)

	update, err := json.Marshal(map[string]any{
		"patient_name": "Hijacked", "diagnosis": "x", "treatment": "y",
	})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/healthcare/%d", testServer.URL, created.ID), bytes.NewReader(update))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := intruder.Do(req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("cross-user update: expected 404, got %d", resp.StatusCode)
	}

	req, err = http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/healthcare/%d", testServer.URL, created.ID), nil)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp, err = intruder.Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("cross-user delete: expected 404, got %d", resp.StatusCode)
	}

	// The record is untouched for its owner.
	infos := listRecords(t, owner)
	if len(infos) != 1 || infos[0].PatientName != "Jane Roe" {
		t.Fatalf("expected owner's record intact, got %+v", infos)
	}
}

// TestHealthcare_RequiresSession verifies the gate fronts the CRUD routes.
func TestHealthcare_RequiresSession(t *testing.T) {
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(testServer.URL + "/healthcare")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected 302 without a session, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}
