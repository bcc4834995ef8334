package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg/ratelimit"
	"github.com/akinalp/parkapp/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	h := NewAuthHandler(app.auth, app.stats, nil, nil)

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/api/accounts", map[string]string{
		"email":    "yeni@example.com",
		"password": testPassword,
		"name":     "Yeni",
	}, nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var tokens services.AuthTokens
	resp := decode(t, rec, &tokens)
	assert.True(t, resp.Success)
	assert.Equal(t, models.RoleUser, tokens.Account.Role)
	assert.NotEmpty(t, tokens.AccessToken)

	rec = httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/api/accounts", map[string]string{
		"email":    "yeni@example.com",
		"password": testPassword,
	}, nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/api/accounts", map[string]string{
		"email":    "zayif@example.com",
		"password": "123",
	}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	h.Login(rec, newRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "yeni@example.com",
		"password": "yanlis",
	}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp = decode(t, rec, nil)
	assert.Contains(t, resp.Error, "invalid email or password")

	rec = httptest.NewRecorder()
	h.Login(rec, newRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "yeni@example.com",
		"password": testPassword,
	}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_InvalidBody(t *testing.T) {
	app := newTestApp(t)
	h := NewAuthHandler(app.auth, app.stats, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", nil)
	h.Register(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Refresh(rec, newRequest(t, http.MethodPost, "/api/auth/refresh", map[string]string{}, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginRateLimited(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "brute@example.com")

	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	defer limiter.Close()
	h := NewAuthHandler(app.auth, app.stats, limiter, nil)

	attempt := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "brute@example.com",
			"password": "yanlis",
		}, nil)
		req.RemoteAddr = "10.0.0.1:5555"
		h.Login(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, attempt().Code)
	assert.Equal(t, http.StatusUnauthorized, attempt().Code)

	rec := attempt()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestAuthHandler_LoginRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "brute@example.com")

	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	defer limiter.Close()
	h := NewAuthHandler(app.auth, app.stats, limiter, nil)

	// Her denemede farklı X-Forwarded-For; güvenilir proxy tanımlı değil.
	codes := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "brute@example.com",
			"password": "yanlis",
		}, nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("5.6.7.%d", i))
		h.Login(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusUnauthorized, codes[0])
	assert.Equal(t, http.StatusUnauthorized, codes[1])
	for i := 2; i < len(codes); i++ {
		assert.Equal(t, http.StatusTooManyRequests, codes[i], "attempt %d", i+1)
	}
}

func TestAuthHandler_LoginRateLimitBehindTrustedProxy(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "brute@example.com")

	ips, err := ratelimit.NewIPResolver([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	defer limiter.Close()
	h := NewAuthHandler(app.auth, app.stats, limiter, ips)

	attempt := func(forwardedFor string) int {
		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "brute@example.com",
			"password": "yanlis",
		}, nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		h.Login(rec, req)
		return rec.Code
	}

	// Proxy arkasındaki gerçek istemci sayılır; sola eklenen sahte hop etkisizdir.
	assert.Equal(t, http.StatusUnauthorized, attempt("9.9.9.1, 203.0.113.7"))
	assert.Equal(t, http.StatusUnauthorized, attempt("9.9.9.2, 203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, attempt("9.9.9.3, 203.0.113.7"))

	// Farklı istemci kendi penceresini alır.
	assert.Equal(t, http.StatusUnauthorized, attempt("198.51.100.4"))
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	app := newTestApp(t)
	h := NewAuthHandler(app.auth, app.stats, nil, nil)

	rec := httptest.NewRecorder()
	h.Register(rec, newRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "r@example.com",
		"password": testPassword,
	}, nil))
	var tokens services.AuthTokens
	decode(t, rec, &tokens)

	rec = httptest.NewRecorder()
	h.Refresh(rec, newRequest(t, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refresh_token": tokens.RefreshToken,
	}, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var rotated services.AuthTokens
	decode(t, rec, &rotated)

	rec = httptest.NewRecorder()
	h.Logout(rec, newRequest(t, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": rotated.RefreshToken,
	}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Refresh(rec, newRequest(t, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refresh_token": rotated.RefreshToken,
	}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_MeAndStats(t *testing.T) {
	app := newTestApp(t)
	h := NewAuthHandler(app.auth, app.stats, nil, nil)
	user := app.user(t, "me@example.com")

	rec := httptest.NewRecorder()
	h.Me(rec, newRequest(t, http.MethodGet, "/api/users/me", nil, user))
	require.Equal(t, http.StatusOK, rec.Code)
	var me models.Account
	decode(t, rec, &me)
	assert.Equal(t, user.ID, me.ID)

	rec = httptest.NewRecorder()
	h.MyStats(rec, newRequest(t, http.MethodGet, "/api/users/me/stats", nil, user))
	require.Equal(t, http.StatusOK, rec.Code)
	var snap services.StatsSnapshot
	decode(t, rec, &snap)
	assert.False(t, snap.Stale)
	assert.Equal(t, 0, snap.ComplaintsFiled)

	rec = httptest.NewRecorder()
	h.Me(rec, newRequest(t, http.MethodGet, "/api/users/me", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
