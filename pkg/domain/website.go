package domain

import "time"

// ScanFrequency defines how often a website is audited
type ScanFrequency string

// supported scan frequencies
const (
	FrequencyHourly  ScanFrequency = "hourly"
	FrequencyDaily   ScanFrequency = "daily"
	FrequencyWeekly  ScanFrequency = "weekly"
	FrequencyMonthly ScanFrequency = "monthly"
)

// WebsiteStatus represents the lifecycle state of a monitored website
type WebsiteStatus string

// website statuses
const (
	WebsiteStatusPending WebsiteStatus = "pending"
	WebsiteStatusActive  WebsiteStatus = "active"
	WebsiteStatusError   WebsiteStatus = "error"
)

// Website represents a monitored site. Scheduling fields (Status, LastScanAt,
// NextScanAt) are owned by the scan orchestration; everything else is owned
// by the registering user.
type Website struct {
	ID                    string        `json:"id"`
	URL                   string        `json:"url"`
	Name                  string        `json:"name,omitempty"`
	ScanFrequency         ScanFrequency `json:"scan_frequency"`
	LastScanAt            *time.Time    `json:"last_scan_at,omitempty"`
	NextScanAt            *time.Time    `json:"next_scan_at,omitempty"`
	Status                WebsiteStatus `json:"status"`
	EmailNotifications    bool          `json:"email_notifications"`
	TelegramNotifications bool          `json:"telegram_notifications"`
	UserID                string        `json:"user_id,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// DisplayName returns the human-facing name, falling back to the URL
func (w *Website) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.URL
}

// NextScanTime computes when the next audit is due for the given frequency,
// counted from the reference time. Unrecognized frequencies fall back to daily.
func NextScanTime(freq ScanFrequency, from time.Time) time.Time {
	switch freq {
	case FrequencyHourly:
		return from.Add(time.Hour)
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, 1)
	}
}
