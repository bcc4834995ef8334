package models

import "time"

// Session, refresh token oturumu.
// Access token kısa ömürlüdür; refresh token DB'de tutulduğu için
// logout'ta iptal edilebilir.
type Session struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
