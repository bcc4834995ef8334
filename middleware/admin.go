package middleware

import (
	"net/http"

	"github.com/akinalp/parkapp/handlers"
	"github.com/akinalp/parkapp/pkg"
)

// AdminMiddleware, birim yetkilisi (role=admin) zorunlu kılar.
// AuthMiddleware.Require'dan SONRA çalışır:
//
//	authMw.Require(adminMw.Require(http.HandlerFunc(h.Complaint.UpdateStatus)))
//
// Birim eşleşmesi burada değil, AccessPolicy'de kontrol edilir.
type AdminMiddleware struct{}

// NewAdminMiddleware, constructor.
func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// Require, context'teki hesap admin değilse 403 döner.
func (m *AdminMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := handlers.AccountFromContext(r.Context())
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "account not found in context")
			return
		}

		if !account.IsAdmin() {
			pkg.ErrorWithMessage(w, http.StatusForbidden, "department admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
