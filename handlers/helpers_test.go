package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/akinalp/parkapp/config"
	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/email"
	"github.com/akinalp/parkapp/repository"
	"github.com/akinalp/parkapp/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "gizli-sifre"

type testApp struct {
	db        *database.DB
	accounts  repository.AccountRepository
	auth      services.AuthService
	stats     services.StatsService
	complaint services.ComplaintService
	parks     services.ParkService
	passwords services.PasswordService
	mail      *mailbox
}

// mailbox, gönderilen sıfırlama maillerini alıcıya göre saklar.
type mailbox struct {
	mu     sync.Mutex
	resets map[string]email.PasswordReset
}

func (m *mailbox) SendComplaintNotice(context.Context, string, email.ComplaintNotice) error {
	return nil
}

func (m *mailbox) SendPasswordReset(_ context.Context, to string, reset email.PasswordReset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resets == nil {
		m.resets = make(map[string]email.PasswordReset)
	}
	m.resets[to] = reset
	return nil
}

// resetToken, alıcıya giden son linkteki token.
func (m *mailbox) resetToken(t *testing.T, to string) string {
	t.Helper()

	m.mu.Lock()
	reset, ok := m.resets[to]
	m.mu.Unlock()
	require.True(t, ok, "no reset mail sent to %s", to)

	u, err := url.Parse(reset.Link)
	require.NoError(t, err)
	return u.Query().Get("token")
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "handlers.db"), database.Migrations())
	require.NoError(t, err)

	accounts := repository.NewSQLiteAccountRepo(db.Conn)
	sessions := repository.NewSQLiteSessionRepo(db.Conn)
	complaints := repository.NewSQLiteComplaintRepo(db.Conn)

	app := &testApp{db: db, accounts: accounts}
	app.auth = services.NewAuthService(db.Conn, accounts, sessions, services.AuthOptions{
		JWTSecret:         "handler-secret",
		AccessExpiry:      time.Minute,
		RefreshExpiry:     time.Hour,
		MinPasswordLength: 6,
		BcryptCost:        bcrypt.MinCost,
	})
	app.stats = services.NewStatsService(accounts, 32, time.Minute)
	policy := services.NewAccessPolicy(complaints, config.UserScopeAll)
	app.complaint = services.NewComplaintService(complaints, policy, app.stats, nil)
	app.parks = services.NewParkService(repository.NewStaticParkRepo(nil), app.stats)
	app.mail = &mailbox{}
	app.passwords = services.NewPasswordService(db.Conn, accounts, sessions, repository.NewSQLiteResetTokenRepo(db.Conn), app.mail, services.PasswordOptions{
		MinPasswordLength: 6,
		BcryptCost:        bcrypt.MinCost,
		ResetTokenTTL:     20 * time.Minute,
		ResetCooldown:     time.Minute,
		PublicURL:         "http://localhost:3000",
	})

	t.Cleanup(func() {
		app.stats.Close()
		db.Close()
	})
	return app
}

func (a *testApp) user(t *testing.T, email string) *models.Account {
	t.Helper()

	tokens, err := a.auth.Register(context.Background(), &models.RegisterRequest{Email: email, Password: testPassword})
	require.NoError(t, err)
	return &tokens.Account
}

func (a *testApp) admin(t *testing.T, email string, dept models.Department) *models.Account {
	t.Helper()

	account, err := a.auth.RegisterAdmin(context.Background(), &models.RegisterAdminRequest{
		RegisterRequest: models.RegisterRequest{Email: email, Password: testPassword},
		Department:      dept,
	})
	require.NoError(t, err)
	return account
}

// newRequest, JSON body ve (varsa) hesabı context'e eklenmiş request üretir.
func newRequest(t *testing.T, method, target string, body any, account *models.Account) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if account != nil {
		req = req.WithContext(WithAccount(req.Context(), account))
	}
	return req
}

// decode, APIResponse zarfını açar ve data alanını out'a yazar.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) pkg.APIResponse {
	t.Helper()

	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))

	if out != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}
	return pkg.APIResponse{Success: raw.Success, Error: raw.Error}
}
