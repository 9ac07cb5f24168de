package domain

import "time"

// ScanStatus represents the state of a single audit attempt.
// Transitions: pending -> running -> completed | failed. Both completed and
// failed are terminal; a failed scan is never retried, the scheduler creates
// a fresh one on the next due cycle instead.
type ScanStatus string

// scan statuses
const (
	ScanStatusPending   ScanStatus = "pending"
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// Scan is one audit attempt for a website and its outcome. Score and metric
// fields stay nil until the scan completes; ErrorMessage is set only on
// failure. Scans are kept forever as history.
type Scan struct {
	ID        string     `json:"id"`
	WebsiteID string     `json:"website_id"`
	Status    ScanStatus `json:"status"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// category scores, 0..1
	PerformanceScore   *float64 `json:"performance_score,omitempty"`
	AccessibilityScore *float64 `json:"accessibility_score,omitempty"`
	BestPracticesScore *float64 `json:"best_practices_score,omitempty"`
	SEOScore           *float64 `json:"seo_score,omitempty"`
	PWAScore           *float64 `json:"pwa_score,omitempty"`

	// timing metrics, seconds unless noted
	FirstContentfulPaint   *float64 `json:"first_contentful_paint,omitempty"`
	LargestContentfulPaint *float64 `json:"largest_contentful_paint,omitempty"`
	CumulativeLayoutShift  *float64 `json:"cumulative_layout_shift,omitempty"` // unitless
	TotalBlockingTime      *float64 `json:"total_blocking_time,omitempty"`     // milliseconds
	TimeToInteractive      *float64 `json:"time_to_interactive,omitempty"`
	SpeedIndex             *float64 `json:"speed_index,omitempty"`

	ReportPath   string `json:"report_path,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScanResult carries the normalized outcome of a successful audit,
// applied to a scan on completion.
type ScanResult struct {
	PerformanceScore   *float64
	AccessibilityScore *float64
	BestPracticesScore *float64
	SEOScore           *float64
	PWAScore           *float64

	FirstContentfulPaint   *float64
	LargestContentfulPaint *float64
	CumulativeLayoutShift  *float64
	TotalBlockingTime      *float64
	TimeToInteractive      *float64
	SpeedIndex             *float64
}

// Terminal reports whether the scan reached a final state
func (s *Scan) Terminal() bool {
	return s.Status == ScanStatusCompleted || s.Status == ScanStatusFailed
}
