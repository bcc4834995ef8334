// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Hata varsa next çağrılmaz ve request burada biter.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akinalp/parkapp/handlers"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/services"
)

// AuthMiddleware, Bearer JWT doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// errNoToken, Authorization header'ı hiç yoksa döner; Optional bunu anonim sayar.
var errNoToken = errors.New("authorization header required")

// Require, geçerli token zorunlu kılar. Token yok veya geçersizse 401.
//
// Hesap her request'te DB'den yüklenir; token'daki role/department
// bilgisine güvenilmez, silinmiş hesap da reddedilir.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := m.authenticate(r)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithAccount(r.Context(), account)))
	})
}

// Optional, token varsa doğrular ve hesabı context'e ekler; yoksa request
// anonim olarak devam eder. Header verilmiş ama geçersizse yine 401 döner.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := m.authenticate(r)
		if errors.Is(err, errNoToken) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithAccount(r.Context(), account)))
	})
}

func (m *AuthMiddleware) authenticate(r *http.Request) (*models.Account, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("%w: %w", pkg.ErrUnauthorized, errNoToken)
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return nil, fmt.Errorf("%w: invalid authorization format, use: Bearer <token>", pkg.ErrUnauthorized)
	}

	claims, err := m.authService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	account, err := m.authService.GetAccount(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: account not found", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	return account, nil
}
