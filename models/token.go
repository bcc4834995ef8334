package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, access token payload'ı.
// Role ve Department token'da taşınır ama yetki kararları her request'te
// DB'den yüklenen hesaba göre verilir.
type TokenClaims struct {
	AccountID  string `json:"account_id"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	jwt.RegisteredClaims
}
