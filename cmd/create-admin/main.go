// create-admin, birim yetkilisi hesabı oluşturan komut satırı aracı.
//
// Yetkili hesapları HTTP üzerinden açılamaz; tek yol bu araç ve sunucunun
// ADMIN_SEED_PASSWORD ile yaptığı başlangıç seed'idir.
//
//	go run ./cmd/create-admin -email yol@malatya.gov.tr -password '...' -department 'Yol ve Altyapı'
//	go run ./cmd/create-admin -seed -password '...'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/repository"
	"github.com/akinalp/parkapp/services"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// errUsage, eksik veya hatalı flag; usage zaten yazılmıştır.
var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()
	logger.Init("create-admin", "development")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("create-admin failed")
	}
}

// run, flag'leri args'tan okur ve seed veya tek yetkili oluşturma yolunu
// çalıştırır. Sonuç out'a yazılır.
func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		dbPath     = fs.String("db", envOr("DATABASE_PATH", "./data/parkapp.db"), "SQLite database path")
		email      = fs.String("email", "", "Admin email")
		password   = fs.String("password", "", "Admin password")
		name       = fs.String("name", "", "Display name (defaults to the department name)")
		department = fs.String("department", "", "Department, one of the six municipal units")
		seed       = fs.Bool("seed", false, "Create one admin per department mailbox with the given password")
		minLength  = fs.Int("min-password-length", 6, "Minimum password length")
		bcryptCost = fs.Int("bcrypt-cost", 0, "bcrypt cost (0 uses the service default)")
	)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *password == "" || (!*seed && (*email == "" || *department == "")) {
		fs.Usage()
		return fmt.Errorf("%w: -password and either -seed or -email with -department are required", errUsage)
	}

	db, err := database.New(*dbPath, database.Migrations())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	auth := services.NewAuthService(db.Conn,
		repository.NewSQLiteAccountRepo(db.Conn),
		repository.NewSQLiteSessionRepo(db.Conn),
		services.AuthOptions{MinPasswordLength: *minLength, BcryptCost: *bcryptCost},
	)

	if *seed {
		created, err := auth.SeedAdmins(ctx, *password)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d department admin(s) created\n", created)
		return nil
	}

	dept := models.Department(*department)
	if *name == "" {
		*name = dept.String()
	}

	account, err := auth.RegisterAdmin(ctx, &models.RegisterAdminRequest{
		RegisterRequest: models.RegisterRequest{Email: *email, Password: *password, Name: *name},
		Department:      dept,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin (valid departments: %s): %w",
			strings.Join(departmentNames(), ", "), err)
	}

	fmt.Fprintf(out, "admin created\n  id:         %s\n  email:      %s\n  department: %s\n",
		account.ID, account.Email, *account.Department)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func departmentNames() []string {
	depts := models.Departments()
	out := make([]string, len(depts))
	for i, d := range depts {
		out[i] = string(d)
	}
	return out
}
