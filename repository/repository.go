// Package repository, veritabanı erişim katmanını tanımlar.
//
// Service katmanı doğrudan SQL yazmaz; bu paketteki interface'ler üzerinden
// çalışır. SQLite implementasyonları sqlite_*.go dosyalarındadır, park
// kataloğu ise sabit olduğu için bellekte tutulur.
//
// Hata sözleşmesi:
//   - kayıt yok → pkg.ErrNotFound
//   - UNIQUE ihlali → pkg.ErrAlreadyExists
//   - diğer tüm SQL hataları → pkg.ErrStoreUnavailable ile sarılır
package repository

import (
	"context"
	"time"

	"github.com/akinalp/parkapp/models"
)

// AccountRepository, hesap veritabanı işlemleri.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Count(ctx context.Context) (int, error)
	// IncrementStat, sayaç kolonunu atomik olarak bir artırır.
	IncrementStat(ctx context.Context, id string, stat models.Stat) error
	GetStats(ctx context.Context, id string) (*models.AccountStats, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// ComplaintRepository, şikayet veritabanı işlemleri.
// Listeler reported_at (eşitlikte id) artan sırada döner.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]models.Complaint, error)
	ListByDepartment(ctx context.Context, dept models.Department) ([]models.Complaint, error)
	ListByReporter(ctx context.Context, reporterID string) ([]models.Complaint, error)
	// CountByStatus, birimin şikayetlerini durum bazında sayar. Hiç kaydı
	// olmayan durumlar map'te yer almaz.
	CountByStatus(ctx context.Context, dept models.Department) (map[models.ComplaintStatus]int, error)
	// UpdateStatus, durumu yazar ve güncel kaydı döner.
	// Çözüldü'ye geçişte mevcut resolved_at korunur; diğer durumlarda temizlenir.
	UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus, by string, at time.Time) (*models.Complaint, error)
}

// SessionRepository, refresh token oturumları.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByRefreshToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByAccountID(ctx context.Context, accountID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PasswordResetRepository, şifre sıfırlama token'ları. Token'lar hash
// olarak aranır; plaintext hiçbir zaman bu katmana inmez.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByAccountID(ctx context.Context, accountID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	// GetLatestByAccountID, cooldown kontrolü için hesabın en yeni token'ı.
	GetLatestByAccountID(ctx context.Context, accountID string) (*models.PasswordResetToken, error)
}

// ParkRepository, salt okunur park kataloğu.
type ParkRepository interface {
	GetAll() []models.Park
	GetByID(id string) (*models.Park, error)
	// Search, isim, adres ve açıklamada büyük/küçük harf duyarsız arar.
	Search(query string) []models.Park
	Count() int
}
