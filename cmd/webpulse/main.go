package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/webpulse/webpulse/pkg/audit"
	"github.com/webpulse/webpulse/pkg/config"
	"github.com/webpulse/webpulse/pkg/metrics"
	"github.com/webpulse/webpulse/pkg/notify"
	"github.com/webpulse/webpulse/pkg/report"
	"github.com/webpulse/webpulse/pkg/repository"
	"github.com/webpulse/webpulse/pkg/scanner"
	"github.com/webpulse/webpulse/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"webpulse.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] webpulse failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	lgr.Printf("[INFO] shutdown complete")
}

// run loads configuration, wires all components and blocks until the context
// is canceled or the server fails.
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var secrets []string
	for _, s := range []string{cfg.Notify.Email.Password, cfg.Notify.Telegram.Token} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	setupLog(opts.Debug, secrets...)
	lgr.Printf("[INFO] starting webpulse version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			lgr.Printf("[WARN] database close failed: %v", closeErr)
		}
	}()

	reportStore, err := report.NewFileStore(cfg.Scan.ReportsDir)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	engine := audit.NewChromeEngine(audit.Options{
		ExecPath:  cfg.Browser.ExecPath,
		UserAgent: cfg.Browser.UserAgent,
		NoSandbox: cfg.Browser.NoSandbox,
		IdleWait:  cfg.Browser.IdleWait,
	})

	var emailCfg *notify.EmailConfig
	if cfg.Notify.Email.Host != "" {
		emailCfg = &notify.EmailConfig{
			Host:     cfg.Notify.Email.Host,
			Port:     cfg.Notify.Email.Port,
			Username: cfg.Notify.Email.Username,
			Password: cfg.Notify.Email.Password,
			From:     cfg.Notify.Email.From,
			StartTLS: cfg.Notify.Email.StartTLS,
			Timeout:  cfg.Notify.Email.Timeout,
		}
	}
	var telegramCfg *notify.TelegramConfig
	if cfg.Notify.Telegram.Token != "" {
		telegramCfg = &notify.TelegramConfig{
			Token:   cfg.Notify.Telegram.Token,
			ChatID:  cfg.Notify.Telegram.ChatID,
			Timeout: cfg.Notify.Telegram.Timeout,
		}
	}
	notifier := notify.NewService(emailCfg, telegramCfg)

	scan := scanner.New(scanner.Params{
		Websites:        repos.Website,
		Scans:           repos.Scan,
		Recommendations: repos.Recommendation,
		Users:           repos.User,
		Reports:         reportStore,
		Engine:          engine,
		Notifier:        notifier,
		Metrics:         metrics.New(),
		AuditTimeout:    cfg.Scan.AuditTimeout,
		BatchSize:       cfg.Scan.BatchSize,
	})

	sched := scanner.NewScheduler(scan, scanner.SchedulerConfig{
		DrainInterval:    cfg.Scan.DrainInterval,
		ScheduleInterval: cfg.Scan.ScheduleInterval,
	})

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, repos.Website, repos.Scan, repos.Recommendation, scan)

	g, gctx := errgroup.WithContext(ctx)
	sched.Start(gctx)
	g.Go(func() error { return srv.Run(gctx) })

	err = g.Wait()
	sched.Stop()
	return err
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
