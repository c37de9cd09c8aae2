// Command scrape harvests the restaurant website, merges the curated seed
// records and writes the labeled corpus CSV.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/config"
	logpkg "github.com/thehickorykampala/hickory/internal/logger"
	corpusrepo "github.com/thehickorykampala/hickory/internal/repository/corpus"
	"github.com/thehickorykampala/hickory/internal/scrape"
	"github.com/thehickorykampala/hickory/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting hickory corpus harvest",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("base_url", cfg.Scrape.BaseURL),
		zap.String("corpus_dir", cfg.Corpus.Dir),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := scrape.NewClient(scrape.ClientConfig{
		Timeout:      time.Duration(cfg.Scrape.TimeoutSec) * time.Second,
		DialTimeout:  time.Duration(cfg.Scrape.DialTimeoutSec) * time.Second,
		MaxBodyBytes: int64(cfg.Scrape.MaxBodyKilobyte) * 1024,
	})
	scraper := scrape.NewScraper(client, cfg.Scrape.BaseURL, logger)

	records, err := scraper.Run(ctx)
	if err != nil {
		logger.Fatal("Harvest failed", zap.Error(err))
	}

	corpus := corpusrepo.New(cfg.Corpus.Dir)
	if err := corpus.Save(records); err != nil {
		logger.Fatal("Failed to save corpus", zap.Error(err))
	}

	logger.Info("Corpus saved",
		zap.Int("records", len(records)),
		zap.String("path", corpus.RawPath()),
	)
}
