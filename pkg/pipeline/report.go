package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// ModelMetrics records one classifier's validation scores.
type ModelMetrics struct {
	Name      string  `json:"name"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Report summarizes a pipeline run.
type Report struct {
	RunID          string         `json:"run_id"`
	Seed           int64          `json:"seed"`
	TrainRows      int            `json:"train_rows"`
	TestRows       int            `json:"test_rows"`
	Features       []string       `json:"features"`
	Models         []ModelMetrics `json:"models"`
	Chosen         string         `json:"chosen_model"`
	SubmissionPath string         `json:"submission_path"`
}

// Save writes the report as indented JSON, creating parent directories.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("pipeline: report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pipeline: report: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("pipeline: report: %w", err)
	}
	return nil
}
