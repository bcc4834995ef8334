// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler ince olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu pkg.JSON / pkg.Error ile döndür
//
// İş mantığı ve yetki kararları service katmanındadır.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/ratelimit"
	"github.com/akinalp/parkapp/services"
)

// AuthHandler, hesap ve oturum endpoint'leri.
type AuthHandler struct {
	authService  services.AuthService
	statsService services.StatsService
	loginLimiter *ratelimit.LoginRateLimiter
	ips          *ratelimit.IPResolver
}

// NewAuthHandler, constructor.
// loginLimiter nil ise login rate limiting kapalıdır. ips nil ise limiter
// anahtarı her zaman bağlantının RemoteAddr'ıdır.
func NewAuthHandler(
	authService services.AuthService,
	statsService services.StatsService,
	loginLimiter *ratelimit.LoginRateLimiter,
	ips *ratelimit.IPResolver,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		statsService: statsService,
		loginLimiter: loginLimiter,
		ips:          ips,
	}
}

// Register godoc
// POST /api/accounts
// POST /api/auth/register
// Her zaman role=user hesap açar; yetkili hesapları sadece CLI oluşturur.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, tokens)
}

// Login godoc
// POST /api/auth/login
//
// IP bazlı deneme sınırı vardır; aşılınca 429 + Retry-After döner.
// Başarılı login sayacı sıfırlar.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := h.ips.ClientIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.Error(w, fmt.Errorf("%w: too many login attempts, please try again in %s",
			pkg.ErrTooManyAttempts, ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	pkg.JSON(w, http.StatusOK, tokens)
}

// refreshTokenRequest, refresh ve logout body'si.
type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh godoc
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.RefreshToken == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "refresh_token is required")
		return
	}

	tokens, err := h.authService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tokens)
}

// Logout godoc
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me godoc
// GET /api/users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, account)
}

// MyStats godoc
// GET /api/users/me/stats
// DB erişilemezse son bilinen değerler "stale": true ile döner.
func (h *AuthHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, h.statsService.Load(r.Context(), account.ID))
}

// contextKey, context.Value çakışmalarını önlemek için özel key tipi.
type contextKey string

// AccountContextKey, auth middleware'ın doğruladığı hesabı taşır.
const AccountContextKey contextKey = "account"

// WithAccount, hesabı context'e ekler.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, AccountContextKey, account)
}

// AccountFromContext, middleware'ın eklediği hesabı döner.
// Optional auth ile gelen anonim request'te ok=false.
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountContextKey).(*models.Account)
	return account, ok && account != nil
}
