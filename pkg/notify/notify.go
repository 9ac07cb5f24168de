// Package notify dispatches regression alerts to website owners over email
// and telegram. Dispatch failures are logged and never affect scan outcomes.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/email"
	"github.com/go-pkgz/lgr"

	"github.com/webpulse/webpulse/pkg/domain"
)

// PerformanceAlert describes a detected performance regression
type PerformanceAlert struct {
	Website        *domain.Website
	RecipientEmail string
	PreviousScore  float64
	CurrentScore   float64
	Drop           float64
}

// EmailConfig holds SMTP settings, zero value disables the channel
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	StartTLS bool
	Timeout  time.Duration
}

// TelegramConfig holds bot API settings, zero value disables the channel
type TelegramConfig struct {
	Token   string
	ChatID  string
	APIBase string // override for tests, defaults to https://api.telegram.org
	Timeout time.Duration
}

// Service routes alerts to the channels a website opted into
type Service struct {
	emailSender *email.Sender
	emailFrom   string
	telegram    *TelegramConfig
	client      *http.Client
}

// NewService creates the dispatcher. Channels without configuration are
// disabled and logged as skipped at dispatch time.
func NewService(emailCfg *EmailConfig, telegramCfg *TelegramConfig) *Service {
	s := &Service{}

	if emailCfg != nil && emailCfg.Host != "" {
		timeout := emailCfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		opts := []email.Option{
			email.Port(emailCfg.Port),
			email.ContentType("text/html"),
			email.TimeOut(timeout),
			email.Log(lgr.Default()),
		}
		if emailCfg.Username != "" {
			opts = append(opts, email.Auth(emailCfg.Username, emailCfg.Password))
		}
		if emailCfg.StartTLS {
			opts = append(opts, email.STARTTLS(true))
		}
		s.emailSender = email.NewSender(emailCfg.Host, opts...)
		s.emailFrom = emailCfg.From
	}

	if telegramCfg != nil && telegramCfg.Token != "" {
		cfg := *telegramCfg
		if cfg.APIBase == "" {
			cfg.APIBase = "https://api.telegram.org"
		}
		if cfg.Timeout == 0 {
			cfg.Timeout = 10 * time.Second
		}
		s.telegram = &cfg
		s.client = &http.Client{Timeout: cfg.Timeout}
	}

	return s
}

// SendPerformanceAlert dispatches the alert to every channel the website has
// enabled. Per-channel failures are collected so callers can log them; a
// partial delivery still counts the delivered channels.
func (s *Service) SendPerformanceAlert(ctx context.Context, alert PerformanceAlert) error {
	var errs []error

	if alert.Website.EmailNotifications {
		if err := s.sendEmail(alert); err != nil {
			lgr.Printf("[WARN] email alert for %s failed: %v", alert.Website.DisplayName(), err)
			errs = append(errs, err)
		}
	}

	if alert.Website.TelegramNotifications {
		if err := s.sendTelegram(ctx, alert); err != nil {
			lgr.Printf("[WARN] telegram alert for %s failed: %v", alert.Website.DisplayName(), err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Service) sendEmail(alert PerformanceAlert) error {
	if s.emailSender == nil {
		lgr.Printf("[WARN] email notifications not configured, alert for %s skipped", alert.Website.DisplayName())
		return nil
	}
	if alert.RecipientEmail == "" {
		lgr.Printf("[WARN] no recipient email for website %s, alert skipped", alert.Website.ID)
		return nil
	}

	err := s.emailSender.Send(alertEmailBody(alert), email.Params{
		From:    s.emailFrom,
		To:      []string{alert.RecipientEmail},
		Subject: fmt.Sprintf("Performance Alert: %s", alert.Website.DisplayName()),
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	lgr.Printf("[INFO] performance alert emailed to %s for %s, drop %.1f%%",
		alert.RecipientEmail, alert.Website.DisplayName(), alert.Drop*100)
	return nil
}

func (s *Service) sendTelegram(ctx context.Context, alert PerformanceAlert) error {
	if s.telegram == nil {
		lgr.Printf("[WARN] telegram notifications not configured, alert for %s skipped", alert.Website.DisplayName())
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    s.telegram.ChatID,
		"text":       alertTelegramText(alert),
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.telegram.APIBase, s.telegram.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing useful on close failure

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram api rejected message: %s", result.Description)
	}

	lgr.Printf("[INFO] performance alert sent to telegram for %s, drop %.1f%%",
		alert.Website.DisplayName(), alert.Drop*100)
	return nil
}

func alertEmailBody(alert PerformanceAlert) string {
	return fmt.Sprintf(`<h2>Performance Alert</h2>
<p>The performance of your website <strong>%s</strong> has dropped by %.1f%%.</p>
<p>Previous score: %.1f%%</p>
<p>Current score: %.1f%%</p>
<p>View the full report in your WebPulse dashboard.</p>`,
		alert.Website.DisplayName(), alert.Drop*100, alert.PreviousScore*100, alert.CurrentScore*100)
}

func alertTelegramText(alert PerformanceAlert) string {
	return fmt.Sprintf("⚠️ <b>Performance Alert</b>\n%s dropped by %.1f%% (%.1f%% → %.1f%%)",
		alert.Website.DisplayName(), alert.Drop*100, alert.PreviousScore*100, alert.CurrentScore*100)
}
