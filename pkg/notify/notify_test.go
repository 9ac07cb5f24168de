package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webpulse/webpulse/pkg/domain"
)

func testAlert(w *domain.Website) PerformanceAlert {
	return PerformanceAlert{
		Website:        w,
		RecipientEmail: "owner@example.com",
		PreviousScore:  0.90,
		CurrentScore:   0.83,
		Drop:           0.07,
	}
}

func TestService_SendTelegram(t *testing.T) {
	var received map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, err := w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
		assert.NoError(t, err)
	}))
	defer ts.Close()

	svc := NewService(nil, &TelegramConfig{Token: "test-token", ChatID: "42", APIBase: ts.URL})

	website := &domain.Website{ID: "w1", URL: "https://example.com", Name: "Example", TelegramNotifications: true}
	err := svc.SendPerformanceAlert(context.Background(), testAlert(website))
	require.NoError(t, err)

	require.NotNil(t, received)
	assert.Equal(t, "42", received["chat_id"])
	assert.Contains(t, received["text"], "Example")
	assert.Contains(t, received["text"], "7.0%")
}

func TestService_SendTelegram_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		assert.NoError(t, err)
	}))
	defer ts.Close()

	svc := NewService(nil, &TelegramConfig{Token: "test-token", ChatID: "42", APIBase: ts.URL})

	website := &domain.Website{ID: "w1", URL: "https://example.com", TelegramNotifications: true}
	err := svc.SendPerformanceAlert(context.Background(), testAlert(website))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestService_ChannelsDisabledByPreference(t *testing.T) {
	// a configured telegram channel must not fire when the website opted out
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	svc := NewService(nil, &TelegramConfig{Token: "test-token", ChatID: "42", APIBase: ts.URL})

	website := &domain.Website{ID: "w1", URL: "https://example.com", TelegramNotifications: false}
	err := svc.SendPerformanceAlert(context.Background(), testAlert(website))
	require.NoError(t, err)
	assert.False(t, called)
}

func TestService_UnconfiguredChannelsSkipQuietly(t *testing.T) {
	svc := NewService(nil, nil)

	website := &domain.Website{
		ID: "w1", URL: "https://example.com",
		EmailNotifications: true, TelegramNotifications: true,
	}
	// nothing configured, alert is skipped without error
	err := svc.SendPerformanceAlert(context.Background(), testAlert(website))
	assert.NoError(t, err)
}

func TestService_EmailSkippedWithoutRecipient(t *testing.T) {
	svc := NewService(&EmailConfig{Host: "smtp.example.com", Port: 587, From: "webpulse@example.com"}, nil)

	website := &domain.Website{ID: "w1", URL: "https://example.com", EmailNotifications: true}
	alert := testAlert(website)
	alert.RecipientEmail = ""

	// no recipient means skip, not failure
	err := svc.SendPerformanceAlert(context.Background(), alert)
	assert.NoError(t, err)
}

func TestAlertEmailBody(t *testing.T) {
	website := &domain.Website{URL: "https://example.com", Name: "Example"}
	body := alertEmailBody(testAlert(website))

	assert.Contains(t, body, "<strong>Example</strong>")
	assert.Contains(t, body, "dropped by 7.0%")
	assert.Contains(t, body, "Previous score: 90.0%")
	assert.Contains(t, body, "Current score: 83.0%")
}
