package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/handlers"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/repository"
	"github.com/akinalp/parkapp/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) services.AuthService {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "mw.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return services.NewAuthService(db.Conn,
		repository.NewSQLiteAccountRepo(db.Conn),
		repository.NewSQLiteSessionRepo(db.Conn),
		services.AuthOptions{
			JWTSecret:         "mw-secret",
			AccessExpiry:      time.Minute,
			RefreshExpiry:     time.Hour,
			MinPasswordLength: 6,
			BcryptCost:        bcrypt.MinCost,
		})
}

// echoAccount, context'teki hesabın id'sini (yoksa "anonymous") yazar.
var echoAccount = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if account, ok := handlers.AccountFromContext(r.Context()); ok {
		w.Write([]byte(account.ID))
		return
	}
	w.Write([]byte("anonymous"))
})

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_Require(t *testing.T) {
	auth := newAuthService(t)
	mw := NewAuthMiddleware(auth)

	tokens, err := auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "mw@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)

	h := mw.Require(echoAccount)

	rec := serve(h, "Bearer "+tokens.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, tokens.Account.ID, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer not-a-jwt").Code)
}

func TestAuthMiddleware_Optional(t *testing.T) {
	auth := newAuthService(t)
	mw := NewAuthMiddleware(auth)

	tokens, err := auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "opt@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)

	h := mw.Optional(echoAccount)

	rec := serve(h, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())

	rec = serve(h, "Bearer "+tokens.AccessToken)
	assert.Equal(t, tokens.Account.ID, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer broken").Code)
}

func TestAdminMiddleware(t *testing.T) {
	mw := NewAdminMiddleware()
	h := mw.Require(echoAccount)

	dept := models.DeptRoads
	cases := []struct {
		name    string
		account *models.Account
		want    int
	}{
		{"no account", nil, http.StatusUnauthorized},
		{"citizen", &models.Account{ID: "u1", Role: models.RoleUser}, http.StatusForbidden},
		{"admin", &models.Account{ID: "a1", Role: models.RoleAdmin, Department: &dept}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/", nil)
			if tc.account != nil {
				req = req.WithContext(handlers.WithAccount(req.Context(), tc.account))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequestLogger_CapturesStatus(t *testing.T) {
	var captured int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		if rw, ok := w.(*responseWriter); ok {
			captured = rw.statusCode
		}
	})

	rec := httptest.NewRecorder()
	RequestLogger(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, http.StatusTeapot, captured)
}
