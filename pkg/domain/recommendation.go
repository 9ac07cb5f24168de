package domain

import (
	"encoding/json"
	"time"
)

// Category is an audit category a recommendation belongs to
type Category string

// audit categories surfaced as recommendations
const (
	CategoryPerformance   Category = "Performance"
	CategoryAccessibility Category = "Accessibility"
	CategoryBestPractices Category = "Best Practices"
	CategorySEO           Category = "SEO"
)

// Impact classifies how much a failing audit matters
type Impact string

// impact levels
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Recommendation is an actionable finding derived from a completed scan.
// Recommendations are created in bulk right after a scan completes and are
// immutable thereafter.
type Recommendation struct {
	ID          string          `json:"id"`
	ScanID      string          `json:"scan_id"`
	Category    Category        `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Impact      Impact          `json:"impact"`
	Score       *float64        `json:"score,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ImpactForScore maps an audit score to an impact level. A missing score is
// treated as medium.
func ImpactForScore(score *float64) Impact {
	if score == nil {
		return ImpactMedium
	}
	switch {
	case *score < 0.5:
		return ImpactHigh
	case *score < 0.9:
		return ImpactMedium
	default:
		return ImpactLow
	}
}
