package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account plus a couple of sample healthcare records so a fresh
// environment has something to log in with. Re-running is a no-op for the
// user row and skipped entirely if the account already has records.

var (
	dsn      = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	email    = flag.String("email", "demo@carevault.local", "Demo account email")
	name     = flag.String("name", "Demo User", "Demo account display name")
	password = flag.String("password", "demo-password-1", "Demo account password (min 8 chars)")
	dryRun   = flag.Bool("dry-run", false, "Validate inputs only; no DB writes")
	confirm  = flag.Bool("confirm", false, "Required to perform DB writes")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}
	if len(*password) < 8 {
		fatalf("--password must be at least 8 characters")
	}

	if *dryRun {
		fmt.Printf("Dry run OK: would seed %s (%s)\n", *email, *name)
		return
	}
	if !*confirm {
		fatalf("refusing to write without --confirm")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("DB open error: %v", err)
	}
	defer db.Close()

	if err := seed(ctx, db); err != nil {
		fatalf("Seeding failed: %v", err)
	}
	fmt.Println("Seeding complete")
}

func seed(ctx context.Context, db *sql.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID uint
	err = tx.QueryRowContext(ctx,
		`INSERT INTO app_auth.users (email, name, hashed_password)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id`,
		*email, *name, string(hashed),
	).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		// Account already exists; reuse it but leave its password alone.
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM app_auth.users WHERE email = $1`, *email,
		).Scan(&userID); err != nil {
			return err
		}
		fmt.Printf("User %s already present (id=%d)\n", *email, userID)
	} else if err != nil {
		return err
	} else {
		fmt.Printf("Created user %s (id=%d)\n", *email, userID)
	}

	var existing int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM app_records.healthcare_infos WHERE user_id = $1`, userID,
	).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		fmt.Printf("User already has %d records; skipping sample data\n", existing)
		return tx.Commit()
	}

	samples := []struct {
		patient, diagnosis, treatment string
		medications                   []string
	}{
		{"Jane Roe", "Seasonal allergies", "Antihistamines as needed", []string{"cetirizine"}},
		{"John Roe", "Hypertension, stage 1", "Lifestyle changes, monitor monthly", []string{"lisinopril", "amlodipine"}},
	}
	for _, s := range samples {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO app_records.healthcare_infos (patient_name, diagnosis, treatment, medications, user_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			s.patient, s.diagnosis, s.treatment, pq.Array(s.medications), userID,
		); err != nil {
			return err
		}
	}
	fmt.Printf("Inserted %d sample records\n", len(samples))

	return tx.Commit()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
