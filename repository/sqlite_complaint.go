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
	"github.com/google/uuid"
)

// sqliteComplaintRepo, ComplaintRepository interface'inin SQLite implementasyonu.
//
// Aynı şikayete yarışan UpdateStatus çağrıları koordine edilmez; SQLite
// satır yazımlarını serileştirir ve son yazan kazanır.
type sqliteComplaintRepo struct {
	db database.TxQuerier
}

// NewSQLiteComplaintRepo, constructor.
func NewSQLiteComplaintRepo(db database.TxQuerier) ComplaintRepository {
	return &sqliteComplaintRepo{db: db}
}

const complaintColumns = `id, park_name, department, issue_type, description, status,
	reporter_id, reported_at, resolved_at, resolved_by`

// Create, şikayeti kaydeder. ID boşsa UUIDv7 üretilir; v7 zaman sıralı
// olduğu için aynı reported_at'e sahip kayıtlar da oluşturma sırasıyla döner.
func (r *sqliteComplaintRepo) Create(ctx context.Context, c *models.Complaint) error {
	if c.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate complaint id: %w", err)
		}
		c.ID = id.String()
	}

	query := `
		INSERT INTO complaints (id, park_name, department, issue_type, description, status, reporter_id, reported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ParkName,
		string(c.Department),
		c.IssueType,
		c.Description,
		string(c.Status),
		c.ReporterID,
		c.ReportedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: complaint id", pkg.ErrAlreadyExists)
		}
		return storeErr("create complaint", err)
	}
	return nil
}

func (r *sqliteComplaintRepo) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id = ?`, id)

	c, err := scanComplaint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: complaint %s", pkg.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get complaint", err)
	}
	return c, nil
}

func (r *sqliteComplaintRepo) ListAll(ctx context.Context) ([]models.Complaint, error) {
	return r.list(ctx, "list complaints",
		`SELECT `+complaintColumns+` FROM complaints ORDER BY reported_at, id`)
}

func (r *sqliteComplaintRepo) ListByDepartment(ctx context.Context, dept models.Department) ([]models.Complaint, error) {
	return r.list(ctx, "list complaints by department",
		`SELECT `+complaintColumns+` FROM complaints WHERE department = ? ORDER BY reported_at, id`, string(dept))
}

func (r *sqliteComplaintRepo) ListByReporter(ctx context.Context, reporterID string) ([]models.Complaint, error) {
	return r.list(ctx, "list complaints by reporter",
		`SELECT `+complaintColumns+` FROM complaints WHERE reporter_id = ? ORDER BY reported_at, id`, reporterID)
}

func (r *sqliteComplaintRepo) CountByStatus(ctx context.Context, dept models.Department) (map[models.ComplaintStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM complaints WHERE department = ? GROUP BY status`, string(dept))
	if err != nil {
		return nil, storeErr("count complaints by status", err)
	}
	defer rows.Close()

	counts := make(map[models.ComplaintStatus]int)
	for rows.Next() {
		var (
			status models.ComplaintStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, storeErr("count complaints by status", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("count complaints by status", err)
	}
	return counts, nil
}

func (r *sqliteComplaintRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status models.ComplaintStatus,
	by string,
	at time.Time,
) (*models.Complaint, error) {
	// Çözüldü'ye tekrar geçiş veri seviyesinde idempotenttir: COALESCE ilk
	// çözülme zamanını ve çözen yetkiliyi korur.
	query := `
		UPDATE complaints SET
			status = ?1,
			resolved_at = CASE WHEN ?1 = 'Çözüldü' THEN COALESCE(resolved_at, ?2) ELSE NULL END,
			resolved_by = CASE WHEN ?1 = 'Çözüldü' THEN COALESCE(resolved_by, ?3) ELSE NULL END
		WHERE id = ?4`

	var resolver *string
	if by != "" {
		resolver = &by
	}

	result, err := r.db.ExecContext(ctx, query, string(status), at.UTC(), resolver, id)
	if err != nil {
		return nil, storeErr("update complaint status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeErr("update complaint status", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: complaint %s", pkg.ErrNotFound, id)
	}

	return r.GetByID(ctx, id)
}

func (r *sqliteComplaintRepo) list(ctx context.Context, op, query string, args ...any) ([]models.Complaint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		complaints = append(complaints, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}

	return complaints, nil
}

// rowScanner, *sql.Row ve *sql.Rows için ortak Scan imzası.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	c := &models.Complaint{}
	err := row.Scan(
		&c.ID, &c.ParkName, &c.Department, &c.IssueType, &c.Description, &c.Status,
		&c.ReporterID, &c.ReportedAt, &c.ResolvedAt, &c.ResolvedBy,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
