package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/google/uuid"
)

// sqliteAccountRepo, AccountRepository interface'inin SQLite implementasyonu.
type sqliteAccountRepo struct {
	db database.TxQuerier
}

// NewSQLiteAccountRepo, constructor. *sql.DB veya *sql.Tx kabul eder.
func NewSQLiteAccountRepo(db database.TxQuerier) AccountRepository {
	return &sqliteAccountRepo{db: db}
}

const accountColumns = `id, email, name, role, department, password_hash,
	complaints_filed, parks_visited, complaints_resolved, created_at`

func (r *sqliteAccountRepo) Create(ctx context.Context, account *models.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("failed to generate account id: %w", err)
	}

	var dept *string
	if d, ok := account.AdminDepartment(); ok {
		s := string(d)
		dept = &s
	}

	createdAt := time.Now().UTC()
	query := `
		INSERT INTO accounts (id, email, name, role, department, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		id.String(),
		strings.ToLower(account.Email),
		account.Name,
		string(account.Role),
		dept,
		account.PasswordHash,
		createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
		}
		return storeErr("create account", err)
	}

	account.ID = id.String()
	account.Email = strings.ToLower(account.Email)
	account.CreatedAt = createdAt
	account.Stats = models.AccountStats{}
	return nil
}

func (r *sqliteAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: account", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get account by id", err)
	}
	return account, nil
}

func (r *sqliteAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)))

	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: account", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get account by email", err)
	}
	return account, nil
}

func (r *sqliteAccountRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, storeErr("count accounts", err)
	}
	return count, nil
}

func (r *sqliteAccountRepo) IncrementStat(ctx context.Context, id string, stat models.Stat) error {
	// Kolon adı parametre olarak bağlanamaz; Valid() whitelist'i SQL injection'ı engeller.
	if !stat.Valid() {
		return fmt.Errorf("%w: unknown stat %q", pkg.ErrBadRequest, stat)
	}

	query := fmt.Sprintf(`UPDATE accounts SET %[1]s = %[1]s + 1 WHERE id = ?`, stat)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storeErr("increment "+string(stat), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("increment "+string(stat), err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account", pkg.ErrNotFound)
	}
	return nil
}

func (r *sqliteAccountRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return storeErr("update password", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("update password", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account", pkg.ErrNotFound)
	}
	return nil
}

func (r *sqliteAccountRepo) GetStats(ctx context.Context, id string) (*models.AccountStats, error) {
	query := `SELECT complaints_filed, parks_visited, complaints_resolved FROM accounts WHERE id = ?`

	var stats models.AccountStats
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&stats.ComplaintsFiled, &stats.ParksVisited, &stats.ComplaintsResolved,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: account", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get account stats", err)
	}
	return &stats, nil
}

// scanAccount, accountColumns sırasındaki tek satırı Account'a okur.
func scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var dept sql.NullString

	err := row.Scan(
		&account.ID, &account.Email, &account.Name, &account.Role, &dept, &account.PasswordHash,
		&account.Stats.ComplaintsFiled, &account.Stats.ParksVisited, &account.Stats.ComplaintsResolved,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dept.Valid {
		d := models.Department(dept.String)
		account.Department = &d
	}
	return account, nil
}
