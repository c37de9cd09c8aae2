// Package train runs the training pipeline: normalize the corpus, fit the
// feature encoder, train the classifier bank on a held-out split, select
// the best model and persist the paired artifacts.
package train

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/classify"
	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/feature"
)

// Config holds training parameters. The seed fixes the split shuffle, the
// decomposition basis and the forest bootstrap, so identical corpus and
// config reproduce the run bit for bit.
type Config struct {
	TestFraction  float64
	Seed          int64
	MaxVocabulary int
	OutputDim     int
}

// ApplyDefaults fills zero fields with default values.
func (c *Config) ApplyDefaults() {
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		c.TestFraction = 0.2
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.MaxVocabulary <= 0 {
		c.MaxVocabulary = feature.DefaultMaxVocabulary
	}
	if c.OutputDim <= 0 {
		c.OutputDim = feature.DefaultOutputDim
	}
}

// preference ranks model names for accuracy ties: simpler linear models win
// over the forest at equal accuracy.
var preference = map[string]int{
	classify.NameLogReg: 0,
	classify.NameSVM:    1,
	classify.NameForest: 2,
}

// Service orchestrates one training run.
type Service struct {
	corpus    CorpusReader
	cleaned   CleanedStore
	norm      Normalizer
	artifacts ArtifactStore
	cfg       Config
	logger    *zap.Logger
}

// New creates a training service.
func New(corpus CorpusReader, cleaned CleanedStore, norm Normalizer,
	artifacts ArtifactStore, cfg Config, logger *zap.Logger,
) *Service {
	cfg.ApplyDefaults()
	return &Service{
		corpus:    corpus,
		cleaned:   cleaned,
		norm:      norm,
		artifacts: artifacts,
		cfg:       cfg,
		logger:    logger,
	}
}

// Preprocess normalizes every corpus record and persists the cleaned form.
// Rows whose text normalizes to nothing are kept: they still carry a label
// and the encoder maps them to the zero vector.
func (s *Service) Preprocess() ([]domain.CleanedRecord, error) {
	records, err := s.corpus.Load()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	cleaned := make([]domain.CleanedRecord, len(records))
	for i, r := range records {
		cleaned[i] = domain.ReconstructCleanedRecord(s.norm.Normalize(r.Text()), r.Category())
	}
	if err := s.cleaned.SaveCleaned(cleaned); err != nil {
		return nil, fmt.Errorf("save cleaned corpus: %w", err)
	}

	s.logger.Info("corpus preprocessed", zap.Int("records", len(cleaned)))
	return cleaned, nil
}

// Train runs the full pipeline and persists the encoder, all three fitted
// models and the manifest naming the winner.
func (s *Service) Train(ctx context.Context) (domain.TrainingReport, error) {
	cleaned, err := s.Preprocess()
	if err != nil {
		return domain.TrainingReport{}, err
	}

	docs := make([][]string, len(cleaned))
	y := make([]int, len(cleaned))
	for i, r := range cleaned {
		docs[i] = r.Tokens()
		y[i] = r.Category().Index()
	}

	enc, err := feature.FitEncoder(docs, feature.Config{
		MaxVocabulary: s.cfg.MaxVocabulary,
		OutputDim:     s.cfg.OutputDim,
		Seed:          s.cfg.Seed,
	})
	if err != nil {
		return domain.TrainingReport{}, fmt.Errorf("fit encoder: %w", err)
	}
	s.logger.Info("encoder fitted",
		zap.Int("vocabulary", enc.Vectorizer().Dimension()),
		zap.Int("output_dim", enc.OutputDim()))

	x := make([][]float64, len(docs))
	for i, doc := range docs {
		x[i] = enc.Transform(doc)
	}

	labels := domain.Labels()
	trainIdx, testIdx := classify.Split(len(x), s.cfg.TestFraction, s.cfg.Seed)
	trainX, trainY := classify.Gather(x, trainIdx), classify.GatherLabels(y, trainIdx)
	testX, testY := classify.Gather(x, testIdx), classify.GatherLabels(y, testIdx)

	models := []classify.Model{
		classify.NewLogisticRegression(),
		classify.NewLinearSVM(),
		classify.NewRandomForest(s.cfg.Seed),
	}

	report := domain.TrainingReport{
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
	}
	fitted := make(map[string]classify.Model, len(models))
	for _, m := range models {
		if err := ctx.Err(); err != nil {
			return domain.TrainingReport{}, err
		}
		start := time.Now()
		if err := m.Fit(trainX, trainY, len(labels)); err != nil {
			return domain.TrainingReport{}, fmt.Errorf("fit %s: %w", m.Name(), err)
		}
		eval, err := classify.Evaluate(m, testX, testY, labels)
		if err != nil {
			return domain.TrainingReport{}, fmt.Errorf("evaluate %s: %w", m.Name(), err)
		}
		s.logger.Info("model trained",
			zap.String("model", m.Name()),
			zap.Float64("accuracy", eval.Accuracy),
			zap.Duration("took", time.Since(start)))
		report.Evaluations = append(report.Evaluations, eval)
		fitted[m.Name()] = m
	}

	report.Best = selectBest(report.Evaluations)

	if err := s.persist(enc, fitted, labels, report); err != nil {
		return domain.TrainingReport{}, err
	}

	s.logger.Info("training complete",
		zap.String("best", report.Best),
		zap.Int("train_size", report.TrainSize),
		zap.Int("test_size", report.TestSize))
	return report, nil
}

// selectBest picks the highest held-out accuracy, ties resolved by the
// preference ranking.
func selectBest(evals []domain.Evaluation) string {
	best := evals[0]
	for _, e := range evals[1:] {
		if e.Accuracy > best.Accuracy ||
			(e.Accuracy == best.Accuracy && preference[e.Model] < preference[best.Model]) {
			best = e
		}
	}
	return best.Model
}

func (s *Service) persist(enc *feature.Encoder, fitted map[string]classify.Model,
	labels []domain.Label, report domain.TrainingReport,
) error {
	vecFP, err := s.artifacts.SaveEncoder(enc)
	if err != nil {
		return fmt.Errorf("save encoder: %w", err)
	}

	accuracies := make(map[string]float64, len(report.Evaluations))
	var bestFP string
	for _, eval := range report.Evaluations {
		fp, err := s.artifacts.SaveModel(fitted[eval.Model], labels, vecFP)
		if err != nil {
			return fmt.Errorf("save model %s: %w", eval.Model, err)
		}
		accuracies[eval.Model] = eval.Accuracy
		if eval.Model == report.Best {
			bestFP = fp
		}
	}

	manifest := domain.Manifest{
		Best:                  report.Best,
		Accuracies:            accuracies,
		Labels:                labels,
		VectorizerFingerprint: vecFP,
		ModelFingerprint:      bestFP,
		TrainedAt:             time.Now().UTC(),
	}
	if err := s.artifacts.SaveManifest(manifest); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	return nil
}
