package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:webpulse.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Scan ScanConfig `yaml:"scan" json:"scan" jsonschema:"description=Scan pipeline configuration"`

	Browser BrowserConfig `yaml:"browser" json:"browser" jsonschema:"description=Headless browser configuration"`

	Notify NotifyConfig `yaml:"notify" json:"notify" jsonschema:"description=Alert delivery configuration"`
}

// ScanConfig holds scan queue and scheduler settings
type ScanConfig struct {
	DrainInterval    time.Duration `yaml:"drain_interval" json:"drain_interval" jsonschema:"default=5m,description=How often pending scans are executed"`
	ScheduleInterval time.Duration `yaml:"schedule_interval" json:"schedule_interval" jsonschema:"default=1h,description=How often due websites are queued"`
	BatchSize        int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=5,minimum=1,description=Pending scans executed per drain pass"`
	AuditTimeout     time.Duration `yaml:"audit_timeout" json:"audit_timeout" jsonschema:"default=90s,description=Per-scan audit deadline"`
	ReportsDir       string        `yaml:"reports_dir" json:"reports_dir" jsonschema:"default=reports,description=Directory for raw audit report files"`
}

// BrowserConfig holds headless chrome settings
type BrowserConfig struct {
	ExecPath  string        `yaml:"exec_path" json:"exec_path" jsonschema:"description=Chrome executable path (autodetected when empty)"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=WebPulse/1.0,description=User agent for audited pages"`
	NoSandbox bool          `yaml:"no_sandbox" json:"no_sandbox" jsonschema:"default=false,description=Disable chrome sandbox (needed in most containers)"`
	IdleWait  time.Duration `yaml:"idle_wait" json:"idle_wait" jsonschema:"default=2s,description=Network idle window before measuring"`
}

// NotifyConfig holds alert channel settings
type NotifyConfig struct {
	Email struct {
		Host     string        `yaml:"host" json:"host" jsonschema:"description=SMTP host (empty disables email alerts)"`
		Port     int           `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP port"`
		Username string        `yaml:"username" json:"username" jsonschema:"description=SMTP username"`
		Password string        `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
		From     string        `yaml:"from" json:"from" jsonschema:"description=From address for alert emails"`
		StartTLS bool          `yaml:"starttls" json:"starttls" jsonschema:"default=true,description=Use STARTTLS"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=SMTP timeout"`
	} `yaml:"email" json:"email" jsonschema:"description=Email alert settings"`

	Telegram struct {
		Token   string        `yaml:"token" json:"token" jsonschema:"description=Bot token (empty disables telegram alerts)"`
		ChatID  string        `yaml:"chat_id" json:"chat_id" jsonschema:"description=Chat id alerts are sent to"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Bot API timeout"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram alert settings"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:webpulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for scan pipeline
	if cfg.Scan.DrainInterval == 0 {
		cfg.Scan.DrainInterval = 5 * time.Minute
	}
	if cfg.Scan.ScheduleInterval == 0 {
		cfg.Scan.ScheduleInterval = time.Hour
	}
	if cfg.Scan.BatchSize == 0 {
		cfg.Scan.BatchSize = 5
	}
	if cfg.Scan.AuditTimeout == 0 {
		cfg.Scan.AuditTimeout = 90 * time.Second
	}
	if cfg.Scan.ReportsDir == "" {
		cfg.Scan.ReportsDir = "reports"
	}

	// set defaults for browser
	if cfg.Browser.UserAgent == "" {
		cfg.Browser.UserAgent = "WebPulse/1.0"
	}
	if cfg.Browser.IdleWait == 0 {
		cfg.Browser.IdleWait = 2 * time.Second
	}

	// set defaults for notifications
	if cfg.Notify.Email.Port == 0 {
		cfg.Notify.Email.Port = 587
	}
	if cfg.Notify.Email.Timeout == 0 {
		cfg.Notify.Email.Timeout = 10 * time.Second
	}
	if cfg.Notify.Telegram.Timeout == 0 {
		cfg.Notify.Telegram.Timeout = 10 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate scan config
	if cfg.Scan.BatchSize < 1 {
		return fmt.Errorf("scan.batch_size must be at least 1")
	}
	if cfg.Scan.AuditTimeout < time.Second {
		return fmt.Errorf("scan.audit_timeout must be at least 1 second")
	}
	if cfg.Scan.DrainInterval < time.Second {
		return fmt.Errorf("scan.drain_interval must be at least 1 second")
	}

	// validate notification config
	if cfg.Notify.Email.Host != "" && cfg.Notify.Email.From == "" {
		return fmt.Errorf("notify.email.from is required when email host is set")
	}
	if cfg.Notify.Telegram.Token != "" && cfg.Notify.Telegram.ChatID == "" {
		return fmt.Errorf("notify.telegram.chat_id is required when telegram token is set")
	}

	return nil
}
