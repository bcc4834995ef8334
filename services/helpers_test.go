package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akinalp/parkapp/config"
	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "gizli-sifre"

// testEnv, gerçek (geçici dizinde) SQLite üzerine kurulu servis grafiği.
type testEnv struct {
	db         *database.DB
	accounts   repository.AccountRepository
	sessions   repository.SessionRepository
	complaints repository.ComplaintRepository
	auth       AuthService
	stats      StatsService
	policy     AccessPolicy
	complaint  ComplaintService
	parks      ParkService
}

func newTestEnv(t *testing.T, userScope string) *testEnv {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "services.db"), database.Migrations())
	require.NoError(t, err)

	env := &testEnv{
		db:         db,
		accounts:   repository.NewSQLiteAccountRepo(db.Conn),
		sessions:   repository.NewSQLiteSessionRepo(db.Conn),
		complaints: repository.NewSQLiteComplaintRepo(db.Conn),
	}

	env.auth = NewAuthService(db.Conn, env.accounts, env.sessions, AuthOptions{
		JWTSecret:         "test-secret",
		AccessExpiry:      15 * time.Minute,
		RefreshExpiry:     24 * time.Hour,
		MinPasswordLength: 6,
		BcryptCost:        bcrypt.MinCost,
	})
	env.stats = NewStatsService(env.accounts, 64, time.Minute)
	env.policy = NewAccessPolicy(env.complaints, userScope)
	env.complaint = NewComplaintService(env.complaints, env.policy, env.stats, nil)
	env.parks = NewParkService(repository.NewStaticParkRepo(nil), env.stats)

	t.Cleanup(func() {
		env.stats.Close()
		db.Close()
	})
	return env
}

func newScopedEnv(t *testing.T) *testEnv {
	return newTestEnv(t, config.UserScopeAll)
}

func (e *testEnv) registerUser(t *testing.T, email string) *models.Account {
	t.Helper()

	tokens, err := e.auth.Register(context.Background(), &models.RegisterRequest{
		Email:    email,
		Password: testPassword,
		Name:     "Vatandaş",
	})
	require.NoError(t, err)
	return &tokens.Account
}

func (e *testEnv) registerAdmin(t *testing.T, email string, dept models.Department) *models.Account {
	t.Helper()

	account, err := e.auth.RegisterAdmin(context.Background(), &models.RegisterAdminRequest{
		RegisterRequest: models.RegisterRequest{
			Email:    email,
			Password: testPassword,
			Name:     dept.String(),
		},
		Department: dept,
	})
	require.NoError(t, err)
	return account
}

func (e *testEnv) file(t *testing.T, reporter *models.Account, issueType string) *models.Complaint {
	t.Helper()

	c, err := e.complaint.Create(context.Background(), reporter, &models.CreateComplaintRequest{
		ParkName:    "Kernek Parkı",
		IssueType:   issueType,
		Description: "Lütfen ilgilenin",
	})
	require.NoError(t, err)
	return c
}
