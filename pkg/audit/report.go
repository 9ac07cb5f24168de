package audit

import (
	"context"
	"encoding/json"
	"time"
)

// category identifiers used in reports
const (
	CategoryPerformance   = "performance"
	CategoryAccessibility = "accessibility"
	CategoryBestPractices = "best-practices"
	CategorySEO           = "seo"
	CategoryPWA           = "pwa"
)

// timing metric audit identifiers
const (
	AuditFirstContentfulPaint   = "first-contentful-paint"
	AuditLargestContentfulPaint = "largest-contentful-paint"
	AuditCumulativeLayoutShift  = "cumulative-layout-shift"
	AuditTotalBlockingTime      = "total-blocking-time"
	AuditInteractive            = "interactive"
	AuditSpeedIndex             = "speed-index"
)

// Report is the normalized output of one audit engine run. The orchestration
// core consumes category scores, the audits map and the category membership
// lists; everything else is opaque.
type Report struct {
	URL            string                    `json:"url"`
	FetchedAt      time.Time                 `json:"fetchedAt"`
	Categories     map[string]CategoryResult `json:"categories"`
	Audits         map[string]AuditResult    `json:"audits"`
	CategoryAudits map[string][]string       `json:"categoryAudits"`
}

// CategoryResult is a scored audit category
type CategoryResult struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Score *float64 `json:"score"`
}

// AuditResult is a single audit item. Score is 0..1 or nil when the audit is
// informational; NumericValue carries timing metrics in milliseconds.
type AuditResult struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Score        *float64        `json:"score"`
	NumericValue *float64        `json:"numericValue,omitempty"`
	Details      json.RawMessage `json:"details,omitempty"`
}

// CategoryScore returns the score of a category, nil when the category is
// absent or unscored.
func (r *Report) CategoryScore(id string) *float64 {
	cat, ok := r.Categories[id]
	if !ok {
		return nil
	}
	return cat.Score
}

// MetricValue returns the NumericValue of a metric audit, nil when missing
func (r *Report) MetricValue(auditID string) *float64 {
	a, ok := r.Audits[auditID]
	if !ok {
		return nil
	}
	return a.NumericValue
}

// Context is a disposable audit session backed by one browser instance.
// Close must be called on every exit path; it is safe to call more than once.
type Context interface {
	Audit(ctx context.Context, url string) (*Report, error)
	Close() error
}
