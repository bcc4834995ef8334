package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHandler_ForgotAndReset(t *testing.T) {
	app := newTestApp(t)
	h := NewPasswordHandler(app.passwords, nil, nil)
	app.user(t, "unuttum@example.com")

	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, newRequest(t, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "unuttum@example.com",
	}, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	known := rec.Body.String()

	// Bilinmeyen adres aynı yanıtı alır.
	rec = httptest.NewRecorder()
	h.ForgotPassword(rec, newRequest(t, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "yok@example.com",
	}, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, known, rec.Body.String())

	token := app.mail.resetToken(t, "unuttum@example.com")

	reset := func(newPassword string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ResetPassword(rec, newRequest(t, http.MethodPost, "/api/auth/reset-password", map[string]string{
			"token":        token,
			"new_password": newPassword,
		}, nil))
		return rec
	}

	assert.Equal(t, http.StatusUnprocessableEntity, reset("123").Code)
	assert.Equal(t, http.StatusOK, reset("yeni-sifre").Code)
	assert.Equal(t, http.StatusBadRequest, reset("baska-sifre").Code)

	_, err := app.auth.Login(context.Background(), &models.LoginRequest{Email: "unuttum@example.com", Password: "yeni-sifre"})
	assert.NoError(t, err)
}

func TestPasswordHandler_ChangePassword(t *testing.T) {
	app := newTestApp(t)
	h := NewPasswordHandler(app.passwords, nil, nil)
	user := app.user(t, "degis@example.com")

	change := func(account *models.Account, current, next string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ChangePassword(rec, newRequest(t, http.MethodPost, "/api/users/me/password", map[string]string{
			"current_password": current,
			"new_password":     next,
		}, account))
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, change(nil, testPassword, "yeni-sifre").Code)
	assert.Equal(t, http.StatusUnauthorized, change(user, "yanlis-sifre", "yeni-sifre").Code)
	assert.Equal(t, http.StatusBadRequest, change(user, testPassword, "").Code)
	assert.Equal(t, http.StatusOK, change(user, testPassword, "yeni-sifre").Code)

	_, err := app.auth.Login(context.Background(), &models.LoginRequest{Email: "degis@example.com", Password: "yeni-sifre"})
	assert.NoError(t, err)
}

func TestPasswordHandler_RateLimited(t *testing.T) {
	app := newTestApp(t)
	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	defer limiter.Close()
	h := NewPasswordHandler(app.passwords, limiter, nil)

	forgot := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodPost, "/api/auth/forgot-password", map[string]string{
			"email": "kimse@example.com",
		}, nil)
		req.RemoteAddr = "10.0.0.9:4444"
		h.ForgotPassword(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, forgot().Code)
	assert.Equal(t, http.StatusOK, forgot().Code)

	rec := forgot()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
