package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/webpulse/webpulse/pkg/domain"
)

// WebsiteRepository handles website-related database operations
type WebsiteRepository struct {
	db *sqlx.DB
}

// websiteSQL represents a website for SQL operations
type websiteSQL struct {
	ID                    string     `db:"id"`
	URL                   string     `db:"url"`
	Name                  string     `db:"name"`
	ScanFrequency         string     `db:"scan_frequency"`
	LastScanAt            *time.Time `db:"last_scan_at"`
	NextScanAt            *time.Time `db:"next_scan_at"`
	Status                string     `db:"status"`
	EmailNotifications    bool       `db:"email_notifications"`
	TelegramNotifications bool       `db:"telegram_notifications"`
	UserID                string     `db:"user_id"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

// NewWebsiteRepository creates a new website repository
func NewWebsiteRepository(database *sqlx.DB) *WebsiteRepository {
	return &WebsiteRepository{db: database}
}

// Create inserts a new website. The next scan time is always computed from
// the frequency at creation.
func (r *WebsiteRepository) Create(ctx context.Context, w *domain.Website) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.ScanFrequency == "" {
		w.ScanFrequency = domain.FrequencyDaily
	}
	if w.Status == "" {
		w.Status = domain.WebsiteStatusPending
	}

	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	next := domain.NextScanTime(w.ScanFrequency, now)
	w.NextScanAt = &next

	query := `
		INSERT INTO websites (
			id, url, name, scan_frequency, next_scan_at, status,
			email_notifications, telegram_notifications, user_id, created_at, updated_at
		) VALUES (
			:id, :url, :name, :scan_frequency, :next_scan_at, :status,
			:email_notifications, :telegram_notifications, :user_id, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, toSQLWebsite(w)); err != nil {
		return fmt.Errorf("create website: %w", err)
	}
	return nil
}

// Get retrieves a website by ID
func (r *WebsiteRepository) Get(ctx context.Context, id string) (*domain.Website, error) {
	var row websiteSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM websites WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("website", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get website: %w", err)
	}
	return toDomainWebsite(&row), nil
}

// List retrieves all websites ordered by creation time
func (r *WebsiteRepository) List(ctx context.Context) ([]*domain.Website, error) {
	var rows []websiteSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM websites ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}

	websites := make([]*domain.Website, len(rows))
	for i, row := range rows {
		websites[i] = toDomainWebsite(&row)
	}
	return websites, nil
}

// ListDue retrieves active websites whose next scan time has passed,
// ordered by id
func (r *WebsiteRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.Website, error) {
	query := `
		SELECT * FROM websites
		WHERE status = ?
		AND next_scan_at IS NOT NULL AND next_scan_at <= ?
		ORDER BY id
	`
	var rows []websiteSQL
	err := r.db.SelectContext(ctx, &rows, query, domain.WebsiteStatusActive, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("list due websites: %w", err)
	}

	websites := make([]*domain.Website, len(rows))
	for i, row := range rows {
		websites[i] = toDomainWebsite(&row)
	}
	return websites, nil
}

// SetStatus updates the website status
func (r *WebsiteRepository) SetStatus(ctx context.Context, id string, status domain.WebsiteStatus) error {
	return withBusyRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE websites SET status = ?, updated_at = ? WHERE id = ?",
			status, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("set website status: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: domain.NotFound("website", id)}
		}
		return nil
	})
}

// UpdateScanTimes records the last scan time and the next due time
func (r *WebsiteRepository) UpdateScanTimes(ctx context.Context, id string, last, next time.Time) error {
	return withBusyRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE websites SET last_scan_at = ?, next_scan_at = ?, updated_at = ? WHERE id = ?",
			last.UTC(), next.UTC(), time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("update website scan times: %w", err)
		}
		return nil
	})
}

// UpdateFrequency changes the scan frequency and recomputes the next due time
func (r *WebsiteRepository) UpdateFrequency(ctx context.Context, id string, freq domain.ScanFrequency) error {
	now := time.Now().UTC()
	next := domain.NextScanTime(freq, now)
	return withBusyRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE websites SET scan_frequency = ?, next_scan_at = ?, updated_at = ? WHERE id = ?",
			freq, next, now, id)
		if err != nil {
			return fmt.Errorf("update website frequency: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: domain.NotFound("website", id)}
		}
		return nil
	})
}

func toSQLWebsite(w *domain.Website) *websiteSQL {
	return &websiteSQL{
		ID:                    w.ID,
		URL:                   w.URL,
		Name:                  w.Name,
		ScanFrequency:         string(w.ScanFrequency),
		LastScanAt:            w.LastScanAt,
		NextScanAt:            w.NextScanAt,
		Status:                string(w.Status),
		EmailNotifications:    w.EmailNotifications,
		TelegramNotifications: w.TelegramNotifications,
		UserID:                w.UserID,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
	}
}

func toDomainWebsite(row *websiteSQL) *domain.Website {
	return &domain.Website{
		ID:                    row.ID,
		URL:                   row.URL,
		Name:                  row.Name,
		ScanFrequency:         domain.ScanFrequency(row.ScanFrequency),
		LastScanAt:            row.LastScanAt,
		NextScanAt:            row.NextScanAt,
		Status:                domain.WebsiteStatus(row.Status),
		EmailNotifications:    row.EmailNotifications,
		TelegramNotifications: row.TelegramNotifications,
		UserID:                row.UserID,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}
