package main

import (
	"context"
	"errors"
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
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/captions/pkg/caption"
	"github.com/umputun/captions/pkg/config"
	"github.com/umputun/captions/pkg/repository"
	"github.com/umputun/captions/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	NoDB   bool   `long:"no-db" env:"NO_DB" description:"run without storage"`

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
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	SetupLog(opts.Debug, os.Getenv("DATABASE_URL"))

	log.Printf("[INFO] starting captions version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, opens storage and serves http until ctx is canceled or a termination signal received
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.NoDB {
		cfg.Database.Disabled = true
	}

	repos := openRepositories(ctx, cfg.GetDatabaseConfig())
	var db server.Database
	var store caption.Store
	if repos != nil {
		defer func() {
			if err := repos.Close(); err != nil {
				log.Printf("[WARN] can't close database: %v", err)
			}
		}()
		db = server.NewRepositoryAdapter(repos)
		store = repos.Caption
	}

	genCfg := cfg.GetGeneratorConfig()
	generator := caption.NewGenerator(store, caption.GeneratorParams{PersistTimeout: genCfg.PersistTimeout})
	srv := server.New(cfg, db, generator, revision, opts.Debug)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	// handle termination signals
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			log.Print("[INFO] termination signal received")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		defer cancel() // stop signal watcher if server exits on its own
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openRepositories opens the document store, returns nil if storage is disabled or can't be opened
func openRepositories(ctx context.Context, dbCfg config.DatabaseConfig) *repository.Repositories {
	if dbCfg.Disabled {
		log.Print("[INFO] storage disabled, generations won't be saved")
		return nil
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             dbCfg.DSN,
		Name:            dbCfg.Name,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: time.Duration(dbCfg.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		log.Printf("[WARN] storage not available, generations won't be saved: %v", err)
		return nil
	}
	log.Printf("[INFO] storage %q opened", dbCfg.Name)
	return repos
}

// SetupLog configures lgr with colorized levels, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
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

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
