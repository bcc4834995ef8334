package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/akinalp/parkapp/pkg/email"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/akinalp/parkapp/repository"
	"github.com/rs/zerolog"
)

// PasswordService, şifremi unuttum, token ile sıfırlama ve şifre değişikliği.
//
// Şifre değiştiğinde hesabın tüm refresh oturumları ve bekleyen sıfırlama
// token'ları silinir. Yayınlanmış access token'lar süreleri dolana kadar
// geçerli kalır.
type PasswordService interface {
	// ForgotPassword, hesap varsa sıfırlama linkini mailler. Hesabın var olup
	// olmadığı dışarı sızmaz: bilinmeyen adres de, cooldown da nil döner.
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
	// ResetPassword, token'ı tek kullanımlık olarak tüketip şifreyi yazar.
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, accountID string, req *models.ChangePasswordRequest) error
}

// PasswordOptions, PasswordService ayarları.
type PasswordOptions struct {
	MinPasswordLength int
	BcryptCost        int
	ResetTokenTTL     time.Duration
	// ResetCooldown, aynı hesaba iki sıfırlama maili arasındaki en kısa süre.
	ResetCooldown time.Duration
	// PublicURL, mail'deki linkin kökü ("https://park.malatya.gov.tr").
	PublicURL string
}

type passwordService struct {
	db          *sql.DB
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	resetRepo   repository.PasswordResetRepository
	sender      email.Sender
	opts        PasswordOptions
	passwords   passwordPolicy
	log         zerolog.Logger
	now         func() time.Time
}

// NewPasswordService, constructor. sender nil ise sıfırlama maili gönderilmez
// ve ForgotPassword sadece log yazar. db verilirse şifre yazımı, token ve
// oturum temizliği tek transaction'da yapılır.
func NewPasswordService(
	db *sql.DB,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	resetRepo repository.PasswordResetRepository,
	sender email.Sender,
	opts PasswordOptions,
) PasswordService {
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = 20 * time.Minute
	}
	return &passwordService{
		db:          db,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		resetRepo:   resetRepo,
		sender:      sender,
		opts:        opts,
		passwords:   newPasswordPolicy(opts.MinPasswordLength, opts.BcryptCost),
		log:         logger.For("password"),
		now:         time.Now,
	}
}

func (s *passwordService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if s.sender == nil {
		s.log.Warn().Msg("password reset requested but email is disabled")
		return nil
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			s.log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	now := s.now().UTC()

	latest, err := s.resetRepo.GetLatestByAccountID(ctx, account.ID)
	switch {
	case err == nil:
		if now.Sub(latest.CreatedAt) < s.opts.ResetCooldown {
			s.log.Info().Str("account_id", account.ID).Msg("password reset throttled")
			return nil
		}
	case !errors.Is(err, pkg.ErrNotFound):
		return err
	}

	// Fırsat temizliği; ayrı bir sweeper'a gerek yok.
	if n, err := s.resetRepo.DeleteExpired(ctx, now); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete expired reset tokens")
	} else if n > 0 {
		s.log.Debug().Int64("deleted", n).Msg("expired reset tokens removed")
	}

	if err := s.resetRepo.DeleteByAccountID(ctx, account.ID); err != nil {
		return err
	}

	plain, err := newResetToken()
	if err != nil {
		return err
	}

	token := &models.PasswordResetToken{
		AccountID: account.ID,
		TokenHash: hashResetToken(plain),
		ExpiresAt: now.Add(s.opts.ResetTokenTTL),
		CreatedAt: now,
	}
	if err := s.resetRepo.Create(ctx, token); err != nil {
		return err
	}

	reset := email.PasswordReset{
		Link:      fmt.Sprintf("%s/reset-password?token=%s", s.opts.PublicURL, plain),
		ExpiresIn: s.opts.ResetTokenTTL,
	}
	if err := s.sender.SendPasswordReset(ctx, account.Email, reset); err != nil {
		// Kullanılamayacak token bırakılmaz; cooldown da sıfırlanmış olur.
		if delErr := s.resetRepo.DeleteByID(ctx, token.ID); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to delete unsent reset token")
		}
		s.log.Error().Err(err).Str("account_id", account.ID).Msg("failed to send password reset email")
		return nil
	}

	s.log.Info().Str("account_id", account.ID).Msg("password reset email sent")
	return nil
}

func (s *passwordService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := s.passwords.hash(req.NewPassword)
	if err != nil {
		return err
	}

	var accountID string
	err = s.inTx(ctx, func(accounts repository.AccountRepository, sessions repository.SessionRepository, resets repository.PasswordResetRepository) error {
		token, err := resets.GetByTokenHash(ctx, hashResetToken(req.Token))
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return fmt.Errorf("%w: invalid or expired reset token", pkg.ErrBadRequest)
			}
			return err
		}
		if !s.now().Before(token.ExpiresAt) {
			return fmt.Errorf("%w: invalid or expired reset token", pkg.ErrBadRequest)
		}

		accountID = token.AccountID
		return s.replacePassword(ctx, accounts, sessions, resets, accountID, hash)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("account_id", accountID).Msg("password reset completed")
	return nil
}

func (s *passwordService) ChangePassword(ctx context.Context, accountID string, req *models.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !s.passwords.matches(account.PasswordHash, req.CurrentPassword) {
		return fmt.Errorf("%w: current password is incorrect", pkg.ErrUnauthorized)
	}
	if req.CurrentPassword == req.NewPassword {
		return fmt.Errorf("%w: new password must be different from current password", pkg.ErrBadRequest)
	}

	hash, err := s.passwords.hash(req.NewPassword)
	if err != nil {
		return err
	}

	err = s.inTx(ctx, func(accounts repository.AccountRepository, sessions repository.SessionRepository, resets repository.PasswordResetRepository) error {
		return s.replacePassword(ctx, accounts, sessions, resets, accountID, hash)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("account_id", accountID).Msg("password changed")
	return nil
}

// ─── Private Helpers ───

// replacePassword, hash'i yazar ve hesabın oturumlarını ve sıfırlama token'larını siler.
func (s *passwordService) replacePassword(
	ctx context.Context,
	accounts repository.AccountRepository,
	sessions repository.SessionRepository,
	resets repository.PasswordResetRepository,
	accountID, hash string,
) error {
	if err := accounts.UpdatePassword(ctx, accountID, hash); err != nil {
		return err
	}
	if err := resets.DeleteByAccountID(ctx, accountID); err != nil {
		return err
	}
	return sessions.DeleteByAccountID(ctx, accountID)
}

// inTx, fn'i db varsa transaction'a bağlı repository'lerle çalıştırır.
func (s *passwordService) inTx(
	ctx context.Context,
	fn func(repository.AccountRepository, repository.SessionRepository, repository.PasswordResetRepository) error,
) error {
	if s.db == nil {
		return fn(s.accountRepo, s.sessionRepo, s.resetRepo)
	}
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(
			repository.NewSQLiteAccountRepo(tx),
			repository.NewSQLiteSessionRepo(tx),
			repository.NewSQLiteResetTokenRepo(tx),
		)
	})
}

// newResetToken, 32 byte rastgele değerin hex karşılığı.
func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
