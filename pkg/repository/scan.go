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

// ScanRepository handles scan-related database operations
type ScanRepository struct {
	db *sqlx.DB
}

// scanSQL represents a scan for SQL operations
type scanSQL struct {
	ID        string     `db:"id"`
	WebsiteID string     `db:"website_id"`
	Status    string     `db:"status"`
	StartTime *time.Time `db:"start_time"`
	EndTime   *time.Time `db:"end_time"`

	PerformanceScore   *float64 `db:"performance_score"`
	AccessibilityScore *float64 `db:"accessibility_score"`
	BestPracticesScore *float64 `db:"best_practices_score"`
	SEOScore           *float64 `db:"seo_score"`
	PWAScore           *float64 `db:"pwa_score"`

	FirstContentfulPaint   *float64 `db:"first_contentful_paint"`
	LargestContentfulPaint *float64 `db:"largest_contentful_paint"`
	CumulativeLayoutShift  *float64 `db:"cumulative_layout_shift"`
	TotalBlockingTime      *float64 `db:"total_blocking_time"`
	TimeToInteractive      *float64 `db:"time_to_interactive"`
	SpeedIndex             *float64 `db:"speed_index"`

	ReportPath   string    `db:"report_path"`
	ErrorMessage string    `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// NewScanRepository creates a new scan repository
func NewScanRepository(database *sqlx.DB) *ScanRepository {
	return &ScanRepository{db: database}
}

// Create inserts a new pending scan for a website
func (r *ScanRepository) Create(ctx context.Context, scan *domain.Scan) error {
	if scan.ID == "" {
		scan.ID = uuid.NewString()
	}
	if scan.Status == "" {
		scan.Status = domain.ScanStatusPending
	}
	now := time.Now().UTC()
	scan.CreatedAt = now
	scan.UpdatedAt = now

	query := `
		INSERT INTO scans (id, website_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	return withBusyRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, scan.ID, scan.WebsiteID, scan.Status, scan.CreatedAt, scan.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create scan: %w", err)
		}
		return nil
	})
}

// Get retrieves a scan by ID
func (r *ScanRepository) Get(ctx context.Context, id string) (*domain.Scan, error) {
	var row scanSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM scans WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("scan", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get scan: %w", err)
	}
	return toDomainScan(&row), nil
}

// ListByWebsite retrieves scans for a website, newest first
func (r *ScanRepository) ListByWebsite(ctx context.Context, websiteID string, limit int) ([]*domain.Scan, error) {
	query := `
		SELECT * FROM scans
		WHERE website_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var rows []scanSQL
	err := r.db.SelectContext(ctx, &rows, query, websiteID, limit)
	if err != nil {
		return nil, fmt.Errorf("list scans for website: %w", err)
	}
	return toDomainScans(rows), nil
}

// ListPending retrieves up to limit pending scans, oldest first
func (r *ScanRepository) ListPending(ctx context.Context, limit int) ([]*domain.Scan, error) {
	query := `
		SELECT * FROM scans
		WHERE status = ?
		ORDER BY created_at, id
		LIMIT ?
	`
	var rows []scanSQL
	err := r.db.SelectContext(ctx, &rows, query, domain.ScanStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending scans: %w", err)
	}
	return toDomainScans(rows), nil
}

// HasActive reports whether a website has a pending or running scan
func (r *ScanRepository) HasActive(ctx context.Context, websiteID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM scans WHERE website_id = ? AND status IN (?, ?))",
		websiteID, domain.ScanStatusPending, domain.ScanStatusRunning)
	if err != nil {
		return false, fmt.Errorf("check active scan: %w", err)
	}
	return exists, nil
}

// SetRunning transitions a scan to running and stamps the start time
func (r *ScanRepository) SetRunning(ctx context.Context, id string, start time.Time) error {
	return withBusyRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE scans SET status = ?, start_time = ?, updated_at = ? WHERE id = ?",
			domain.ScanStatusRunning, start.UTC(), time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("set scan running: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: domain.NotFound("scan", id)}
		}
		return nil
	})
}

// Complete transitions a scan to completed with all scores and metrics
func (r *ScanRepository) Complete(ctx context.Context, id string, res domain.ScanResult, reportPath string, end time.Time) error {
	query := `
		UPDATE scans SET
			status = ?,
			end_time = ?,
			performance_score = ?, accessibility_score = ?, best_practices_score = ?,
			seo_score = ?, pwa_score = ?,
			first_contentful_paint = ?, largest_contentful_paint = ?,
			cumulative_layout_shift = ?, total_blocking_time = ?,
			time_to_interactive = ?, speed_index = ?,
			report_path = ?,
			error_message = '',
			updated_at = ?
		WHERE id = ?
	`
	return withBusyRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query,
			domain.ScanStatusCompleted, end.UTC(),
			res.PerformanceScore, res.AccessibilityScore, res.BestPracticesScore,
			res.SEOScore, res.PWAScore,
			res.FirstContentfulPaint, res.LargestContentfulPaint,
			res.CumulativeLayoutShift, res.TotalBlockingTime,
			res.TimeToInteractive, res.SpeedIndex,
			reportPath, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("complete scan: %w", err)
		}
		return nil
	})
}

// Fail transitions a scan to failed with an error message
func (r *ScanRepository) Fail(ctx context.Context, id, errMsg string, end time.Time) error {
	return withBusyRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE scans SET status = ?, end_time = ?, error_message = ?, updated_at = ? WHERE id = ?",
			domain.ScanStatusFailed, end.UTC(), errMsg, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("fail scan: %w", err)
		}
		return nil
	})
}

// LastCompleted retrieves the most recent completed scan for a website,
// excluding the given scan. Returns nil without error when there is none.
func (r *ScanRepository) LastCompleted(ctx context.Context, websiteID, excludeID string) (*domain.Scan, error) {
	query := `
		SELECT * FROM scans
		WHERE website_id = ? AND status = ? AND id != ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var row scanSQL
	err := r.db.GetContext(ctx, &row, query, websiteID, domain.ScanStatusCompleted, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last completed scan: %w", err)
	}
	return toDomainScan(&row), nil
}

func toDomainScans(rows []scanSQL) []*domain.Scan {
	scans := make([]*domain.Scan, len(rows))
	for i, row := range rows {
		scans[i] = toDomainScan(&row)
	}
	return scans
}

func toDomainScan(row *scanSQL) *domain.Scan {
	return &domain.Scan{
		ID:        row.ID,
		WebsiteID: row.WebsiteID,
		Status:    domain.ScanStatus(row.Status),
		StartTime: row.StartTime,
		EndTime:   row.EndTime,

		PerformanceScore:   row.PerformanceScore,
		AccessibilityScore: row.AccessibilityScore,
		BestPracticesScore: row.BestPracticesScore,
		SEOScore:           row.SEOScore,
		PWAScore:           row.PWAScore,

		FirstContentfulPaint:   row.FirstContentfulPaint,
		LargestContentfulPaint: row.LargestContentfulPaint,
		CumulativeLayoutShift:  row.CumulativeLayoutShift,
		TotalBlockingTime:      row.TotalBlockingTime,
		TimeToInteractive:      row.TimeToInteractive,
		SpeedIndex:             row.SpeedIndex,

		ReportPath:   row.ReportPath,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
