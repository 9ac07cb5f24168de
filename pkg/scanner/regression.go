package scanner

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/webpulse/webpulse/pkg/domain"
	"github.com/webpulse/webpulse/pkg/notify"
)

// checkRegression compares the fresh performance score against the previous
// completed scan and dispatches an owner alert when the drop reaches the
// threshold. Every problem here is logged and swallowed, regressions never
// fail a completed scan.
func (s *Scanner) checkRegression(ctx context.Context, website *domain.Website, scanID string, current *float64) {
	if current == nil {
		return
	}
	if !website.EmailNotifications && !website.TelegramNotifications {
		return
	}

	prev, err := s.Scans.LastCompleted(ctx, website.ID, scanID)
	if err != nil {
		lgr.Printf("[WARN] can't load previous scan for %s: %v", website.ID, err)
		return
	}
	if prev == nil || prev.PerformanceScore == nil {
		return
	}

	drop := *prev.PerformanceScore - *current
	if drop < regressionThreshold {
		return
	}
	lgr.Printf("[INFO] performance regression on %s: %.2f -> %.2f", website.URL, *prev.PerformanceScore, *current)

	recipient := ""
	if website.UserID != "" {
		user, err := s.Users.Get(ctx, website.UserID)
		if err != nil {
			lgr.Printf("[WARN] can't resolve owner of website %s: %v", website.ID, err)
		} else {
			recipient = user.Email
		}
	}

	alert := notify.PerformanceAlert{
		Website:        website,
		RecipientEmail: recipient,
		PreviousScore:  *prev.PerformanceScore,
		CurrentScore:   *current,
		Drop:           drop,
	}
	if err := s.Notifier.SendPerformanceAlert(ctx, alert); err != nil {
		lgr.Printf("[WARN] regression alert for %s failed: %v", website.ID, err)
		return
	}
	s.Metrics.AlertSent()
}
