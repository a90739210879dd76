// Package pipeline wires the stages end to end: load, clean, engineer,
// encode, split, train, evaluate, predict, export.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"titanic/pkg/config"
	"titanic/pkg/dataprep"
	"titanic/pkg/dataset"
	"titanic/pkg/model"
	"titanic/pkg/split"
	"titanic/pkg/submission"
)

// Result bundles a run's outputs.
type Result struct {
	Report     *Report
	Submission *dataset.Frame
}

// Run executes the whole pipeline for the given configuration.
func Run(cfg *config.Config) (*Result, error) {
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	train, err := dataset.Load(cfg.Data.Train)
	if err != nil {
		return nil, err
	}
	test, err := dataset.Load(cfg.Data.Test)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("train_rows", train.Len()).Int("test_rows", test.Len()).Msg("data loaded")

	for col, ratio := range dataprep.MissingProfile(train) {
		if ratio > 0 {
			logger.Debug().Str("column", col).Float64("missing_ratio", ratio).Msg("missing values")
		}
	}

	if train, err = dataprep.Clean(train); err != nil {
		return nil, err
	}
	if test, err = dataprep.Clean(test); err != nil {
		return nil, err
	}
	if err := dataprep.GenerateFeatures(train); err != nil {
		return nil, err
	}
	if err := dataprep.GenerateFeatures(test); err != nil {
		return nil, err
	}
	if err := dataprep.CheckComplete(train); err != nil {
		return nil, fmt.Errorf("pipeline: train: %w", err)
	}
	if err := dataprep.CheckComplete(test); err != nil {
		return nil, fmt.Errorf("pipeline: test: %w", err)
	}

	if cfg.Output.Processed != "" {
		if err := train.Save(filepath.Join(cfg.Output.Processed, "train.csv")); err != nil {
			return nil, err
		}
		if err := test.Save(filepath.Join(cfg.Output.Processed, "test.csv")); err != nil {
			return nil, err
		}
	}

	if _, err := dataprep.EncodePair(train, test); err != nil {
		return nil, err
	}
	X, err := dataprep.Matrix(train)
	if err != nil {
		return nil, err
	}
	XTest, err := dataprep.Matrix(test)
	if err != nil {
		return nil, err
	}
	y, err := dataprep.Labels(train)
	if err != nil {
		return nil, err
	}

	XTrain, yTrain, XVal, yVal, err := split.TrainTestSplit(X, y, cfg.Split.ValidationRatio, cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("train", len(XTrain)).Int("validation", len(XVal)).Msg("split done")

	evals, err := trainAndEvaluate(cfg, XTrain, yTrain, XVal, yVal, logger)
	if err != nil {
		return nil, err
	}
	best := evals[0]
	for _, e := range evals[1:] {
		if e.Metrics.Accuracy > best.Metrics.Accuracy {
			best = e
		}
	}
	logger.Info().Str("model", best.Name).Float64("accuracy", best.Metrics.Accuracy).Msg("model selected")

	predictions := best.Classifier.Predict(XTest)
	sub, err := submission.Write(test, predictions, cfg.Output.Submission)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("path", cfg.Output.Submission).Int("rows", sub.Len()).Msg("submission written")

	report := &Report{
		RunID:          runID,
		Seed:           cfg.Seed,
		TrainRows:      train.Len(),
		TestRows:       test.Len(),
		Features:       dataprep.FeatureColumns,
		Chosen:         best.Name,
		SubmissionPath: cfg.Output.Submission,
	}
	for _, e := range evals {
		report.Models = append(report.Models, e.Metrics)
	}
	if cfg.Output.Report != "" {
		if err := report.Save(cfg.Output.Report); err != nil {
			return nil, err
		}
	}
	return &Result{Report: report, Submission: sub}, nil
}

type evaluation struct {
	Name       string
	Classifier model.Classifier
	Metrics    ModelMetrics
}

// trainAndEvaluate fits the configured classifiers and scores them on
// the validation subset. The forest comes first so a full accuracy tie
// resolves in its favor.
func trainAndEvaluate(cfg *config.Config, XTrain [][]float64, yTrain []int, XVal [][]float64, yVal []int, logger zerolog.Logger) ([]evaluation, error) {
	var classifiers []evaluation
	if cfg.Model.Use == "forest" || cfg.Model.Use == "both" {
		classifiers = append(classifiers, evaluation{
			Name: "forest",
			Classifier: model.NewForest(
				model.WithTrees(cfg.Forest.Trees),
				model.WithForestMaxDepth(cfg.Forest.MaxDepth),
				model.WithForestMinSplit(cfg.Forest.MinSamplesSplit),
				model.WithForestMaxFeatures(cfg.Forest.MaxFeatures),
				model.WithForestCriterion(cfg.Forest.Criterion),
				model.WithSeed(cfg.Seed),
			),
		})
	}
	if cfg.Model.Use == "logistic" || cfg.Model.Use == "both" {
		classifiers = append(classifiers, evaluation{
			Name:       "logistic",
			Classifier: model.NewLogistic(cfg.Logistic.LearningRate, cfg.Logistic.Epochs),
		})
	}

	for i := range classifiers {
		e := &classifiers[i]
		if err := e.Classifier.Fit(XTrain, yTrain); err != nil {
			return nil, fmt.Errorf("pipeline: fit %s: %w", e.Name, err)
		}
		pred := e.Classifier.Predict(XVal)
		prec, rec, f1 := model.PrecisionRecallF1(yVal, pred)
		e.Metrics = ModelMetrics{
			Name:      e.Name,
			Accuracy:  model.Accuracy(yVal, pred),
			Precision: prec,
			Recall:    rec,
			F1:        f1,
		}
		logger.Info().
			Str("model", e.Name).
			Float64("accuracy", e.Metrics.Accuracy).
			Float64("f1", e.Metrics.F1).
			Msg("validation metrics")
	}
	return classifiers, nil
}
