package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/webpulse/webpulse/pkg/domain"
)

// RecommendationRepository handles recommendation-related database operations
type RecommendationRepository struct {
	db *sqlx.DB
}

// recommendationSQL represents a recommendation for SQL operations
type recommendationSQL struct {
	ID          string    `db:"id"`
	ScanID      string    `db:"scan_id"`
	Category    string    `db:"category"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Impact      string    `db:"impact"`
	Score       *float64  `db:"score"`
	Details     []byte    `db:"details"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(database *sqlx.DB) *RecommendationRepository {
	return &RecommendationRepository{db: database}
}

// CreateBulk inserts all recommendations for a scan in one transaction
func (r *RecommendationRepository) CreateBulk(ctx context.Context, recs []domain.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}

	query := `
		INSERT INTO recommendations (id, scan_id, category, title, description, impact, score, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	return withBusyRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin bulk create: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		now := time.Now().UTC()
		for i := range recs {
			rec := &recs[i]
			if rec.ID == "" {
				rec.ID = uuid.NewString()
			}
			rec.CreatedAt = now

			var details []byte
			if len(rec.Details) > 0 {
				details = rec.Details
			}
			if _, err := tx.ExecContext(ctx, query, rec.ID, rec.ScanID, rec.Category,
				rec.Title, rec.Description, rec.Impact, rec.Score, details, now); err != nil {
				return fmt.Errorf("insert recommendation: %w", err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit bulk create: %w", err)
		}
		return nil
	})
}

// ListByScan retrieves all recommendations for a scan, high impact first
func (r *RecommendationRepository) ListByScan(ctx context.Context, scanID string) ([]*domain.Recommendation, error) {
	query := `
		SELECT * FROM recommendations
		WHERE scan_id = ?
		ORDER BY CASE impact WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, title
	`
	var rows []recommendationSQL
	err := r.db.SelectContext(ctx, &rows, query, scanID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	recs := make([]*domain.Recommendation, len(rows))
	for i, row := range rows {
		recs[i] = &domain.Recommendation{
			ID:          row.ID,
			ScanID:      row.ScanID,
			Category:    domain.Category(row.Category),
			Title:       row.Title,
			Description: row.Description,
			Impact:      domain.Impact(row.Impact),
			Score:       row.Score,
			Details:     json.RawMessage(row.Details),
			CreatedAt:   row.CreatedAt,
		}
	}
	return recs, nil
}
