package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/metrics"
	"MarketBoard/internal/recorder"
	"MarketBoard/internal/render"
	"MarketBoard/internal/report"
	"MarketBoard/internal/scheduler"

	"github.com/rs/zerolog"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "path to config file")
	once := flag.Bool("once", false, "generate one report and exit")
	flag.Parse()
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config validation")
	}

	log := newLogger(cfg)
	log.Info().Str("config", *cfgPath).Msg("MarketBoard starting")

	// Data source
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source selected")

	// Run journal
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Output surface
	renderer, err := render.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init renderer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	driver, err := report.NewDriver(cfg, fetcher, renderer, rec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init report driver")
	}

	if *once {
		if err := driver.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("report run failed")
		}
		return
	}

	if cfg.Metrics.ListenAddr != "" {
		metrics.Serve(cfg.Metrics.ListenAddr, log)
	}

	sched := scheduler.NewScheduler(ctx, driver, log)
	if err := sched.RegisterDaily(cfg.Schedule.DailyCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, generating report now")
		go sched.RunNow()
	}

	log.Info().Msg("MarketBoard is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("MarketBoard stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out = os.Stderr
	if cfg.Log.Format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
