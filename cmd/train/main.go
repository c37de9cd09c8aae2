// Command train runs the full training pipeline over the stored corpus and
// writes the artifact bundle.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/config"
	"github.com/thehickorykampala/hickory/internal/domain"
	logpkg "github.com/thehickorykampala/hickory/internal/logger"
	"github.com/thehickorykampala/hickory/internal/nlp"
	artifactrepo "github.com/thehickorykampala/hickory/internal/repository/artifact"
	corpusrepo "github.com/thehickorykampala/hickory/internal/repository/corpus"
	trainuc "github.com/thehickorykampala/hickory/internal/usecase/train"
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

	logger.Info("Starting hickory training run",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("corpus_dir", cfg.Corpus.Dir),
		zap.String("artifacts_dir", cfg.Artifacts.Dir),
		zap.Int64("seed", cfg.Training.Seed),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	corpus := corpusrepo.New(cfg.Corpus.Dir)
	artifacts := artifactrepo.New(cfg.Artifacts.Dir)

	svc := trainuc.New(corpus, corpus, nlp.NewNormalizer(0), artifacts, trainuc.Config{
		TestFraction:  cfg.Training.TestFraction,
		Seed:          cfg.Training.Seed,
		MaxVocabulary: cfg.Features.MaxVocabulary,
		OutputDim:     cfg.Features.OutputDim,
	}, logger)

	report, err := svc.Train(ctx)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}

	for _, eval := range report.Evaluations {
		logger.Info("Held-out evaluation",
			zap.String("model", eval.Model),
			zap.Float64("accuracy", eval.Accuracy),
			zap.Int("correct", eval.Correct()),
			zap.Int("total", eval.Total()),
			zap.Any("confusion", confusionMap(eval)),
		)
	}
	logger.Info("Training run complete",
		zap.String("best", report.Best),
		zap.String("artifacts_dir", cfg.Artifacts.Dir),
	)
}

// confusionMap flattens the confusion matrix for structured logging,
// keeping only rows with counts.
func confusionMap(eval domain.Evaluation) map[string]map[string]int {
	out := make(map[string]map[string]int, len(eval.Confusion))
	for actual, row := range eval.Confusion {
		if len(row) == 0 {
			continue
		}
		cells := make(map[string]int, len(row))
		for predicted, n := range row {
			cells[predicted.String()] = n
		}
		out[actual.String()] = cells
	}
	return out
}
