// Command titanic runs the survival-prediction pipeline end to end:
// load train/test CSVs, clean and impute, engineer features, encode,
// split, train, evaluate and write the submission file.
//
// Flags (all optional, overriding the config file and environment):
//
//	--config : path to a YAML config file (default: config.yaml if present)
//	--train  : path to train.csv
//	--test   : path to test.csv
//	--out    : path for the submission CSV
//	--report : path for the JSON run report ("" disables it)
//	--seed   : random seed driving the split and the forest
//	--model  : forest, logistic, or both
//
// Example:
//
//	titanic --train data/raw/train.csv --test data/raw/test.csv \
//	        --out data/submission/submission.csv --seed 42
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"titanic/pkg/config"
	"titanic/pkg/logging"
	"titanic/pkg/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	trainPath := flag.String("train", "", "Path to train CSV")
	testPath := flag.String("test", "", "Path to test CSV")
	outPath := flag.String("out", "", "Path for the submission CSV")
	reportPath := flag.String("report", "", "Path for the JSON run report")
	seed := flag.Int64("seed", -1, "Random seed (negative keeps the configured seed)")
	modelUse := flag.String("model", "", "Classifier: forest, logistic or both")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *trainPath != "" {
		cfg.Data.Train = *trainPath
	}
	if *testPath != "" {
		cfg.Data.Test = *testPath
	}
	if *outPath != "" {
		cfg.Output.Submission = *outPath
	}
	if *reportPath != "" {
		cfg.Output.Report = *reportPath
	}
	if *seed >= 0 {
		cfg.Seed = *seed
	}
	if *modelUse != "" {
		cfg.Model.Use = *modelUse
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	result, err := pipeline.Run(cfg)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(1)
	}

	for _, m := range result.Report.Models {
		fmt.Printf("%-10s accuracy=%.4f precision=%.4f recall=%.4f f1=%.4f\n",
			m.Name, m.Accuracy, m.Precision, m.Recall, m.F1)
	}
	fmt.Printf("chosen model: %s\n", result.Report.Chosen)
	fmt.Printf("submission:   %s (%d rows)\n", result.Report.SubmissionPath, result.Submission.Len())
}
