package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
)

// sqliteResetTokenRepo, PasswordResetRepository'nin SQLite implementasyonu.
type sqliteResetTokenRepo struct {
	db database.TxQuerier
}

// NewSQLiteResetTokenRepo, constructor.
func NewSQLiteResetTokenRepo(db database.TxQuerier) PasswordResetRepository {
	return &sqliteResetTokenRepo{db: db}
}

const resetTokenColumns = `id, account_id, token_hash, expires_at, created_at`

func (r *sqliteResetTokenRepo) Create(ctx context.Context, token *models.PasswordResetToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO password_reset_tokens (id, account_id, token_hash, expires_at, created_at)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		token.AccountID,
		token.TokenHash,
		token.ExpiresAt.UTC(),
		token.CreatedAt.UTC(),
	).Scan(&token.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reset token", pkg.ErrAlreadyExists)
		}
		return storeErr("create reset token", err)
	}
	return nil
}

func (r *sqliteResetTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resetTokenColumns+` FROM password_reset_tokens WHERE token_hash = ?`, tokenHash)
	return r.scan(row, "get reset token")
}

func (r *sqliteResetTokenRepo) GetLatestByAccountID(ctx context.Context, accountID string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resetTokenColumns+` FROM password_reset_tokens
		WHERE account_id = ? ORDER BY created_at DESC LIMIT 1`, accountID)
	return r.scan(row, "get latest reset token")
}

func (r *sqliteResetTokenRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE id = ?`, id); err != nil {
		return storeErr("delete reset token", err)
	}
	return nil
}

func (r *sqliteResetTokenRepo) DeleteByAccountID(ctx context.Context, accountID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE account_id = ?`, accountID); err != nil {
		return storeErr("delete account reset tokens", err)
	}
	return nil
}

func (r *sqliteResetTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, storeErr("delete expired reset tokens", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, storeErr("delete expired reset tokens", err)
	}
	return n, nil
}

func (r *sqliteResetTokenRepo) scan(row *sql.Row, op string) (*models.PasswordResetToken, error) {
	token := &models.PasswordResetToken{}
	err := row.Scan(&token.ID, &token.AccountID, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: reset token", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(op, err)
	}
	return token, nil
}
