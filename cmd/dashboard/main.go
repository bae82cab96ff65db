package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/dnovakovic099/ai-pricing/pkg/api"
	"github.com/dnovakovic099/ai-pricing/pkg/config"
	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/pkg/repository"
	"github.com/dnovakovic099/ai-pricing/pkg/scheduler"
	"github.com/dnovakovic099/ai-pricing/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address (overrides config)"`
	DBPath string `long:"db" env:"DB_DSN" description:"database dsn (overrides config)"`

	// common options
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

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	log.Printf("[INFO] starting pricing dashboard version %s", revision)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DBPath != "" {
		cfg.Database.DSN = opts.DBPath
	}
	if cfg.Backend.Password != "" {
		setupLog(opts.Debug, cfg.Backend.Password) // keep the backend password out of logs
	}

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
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	client := api.New(api.Opts{
		BaseURL:  cfg.Backend.URL,
		Email:    cfg.Backend.Email,
		Password: cfg.Backend.Password,
		Timeout:  cfg.Backend.Timeout,
	}, api.NewSession(&tokenStore{settings: repos.Setting}))

	errConsole := console.New(client, console.Opts{
		ResolveNote: cfg.Console.ResolveNote,
		IgnoreNote:  cfg.Console.IgnoreNote,
		Journal:     repos.Journal,
	})

	// the first load only warms the snapshot, the backend may still be starting
	if _, err := errConsole.Load(ctx); err != nil {
		log.Printf("[WARN] initial console load failed: %v", err)
	}

	sched := scheduler.NewScheduler(errConsole, repos.Journal, scheduler.Config{
		RefreshInterval: cfg.Console.RefreshInterval,
		JournalKeep:     cfg.Console.JournalKeep,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, errConsole, client, repos.Journal, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
