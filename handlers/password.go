package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/ratelimit"
	"github.com/akinalp/parkapp/services"
)

// PasswordHandler, şifremi unuttum, sıfırlama ve şifre değişikliği endpoint'leri.
type PasswordHandler struct {
	passwordService services.PasswordService
	limiter         *ratelimit.LoginRateLimiter
	ips             *ratelimit.IPResolver
}

// NewPasswordHandler, constructor. limiter, forgot/reset isteklerini IP
// bazında sınırlar; nil ise sınır yoktur.
func NewPasswordHandler(
	passwordService services.PasswordService,
	limiter *ratelimit.LoginRateLimiter,
	ips *ratelimit.IPResolver,
) *PasswordHandler {
	return &PasswordHandler{
		passwordService: passwordService,
		limiter:         limiter,
		ips:             ips,
	}
}

// ForgotPassword godoc
// POST /api/auth/forgot-password
//
// Hesap olsun olmasın aynı yanıt döner.
func (h *PasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.passwordService.ForgotPassword(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{
		"message": "if an account exists for this email, a reset link has been sent",
	})
}

// ResetPassword godoc
// POST /api/auth/reset-password
// Body: { "token": "...", "new_password": "..." }
func (h *PasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.passwordService.ResetPassword(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "password reset"})
}

// ChangePassword godoc
// POST /api/users/me/password
// Body: { "current_password": "...", "new_password": "..." }
// Başarılı olursa hesabın tüm refresh oturumları kapanır.
func (h *PasswordHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.passwordService.ChangePassword(r.Context(), account.ID, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}

// allow, IP penceresi dolmuşsa 429 yazar ve false döner.
func (h *PasswordHandler) allow(w http.ResponseWriter, r *http.Request) bool {
	if h.limiter == nil {
		return true
	}

	key := "password:" + h.ips.ClientIP(r)
	if h.limiter.Allow(key) {
		return true
	}

	retryAfter := h.limiter.RetryAfterSeconds(key)
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	pkg.Error(w, fmt.Errorf("%w: too many password requests, please try again in %s",
		pkg.ErrTooManyAttempts, ratelimit.FormatRetryMessage(retryAfter)))
	return false
}
