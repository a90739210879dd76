// Package config loads pipeline configuration by layering defaults, an
// optional YAML file and TITANIC_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations tried in order when
// no explicit path is given.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// EnvPrefix is the prefix for environment overrides, e.g.
// TITANIC_SEED=7 or TITANIC_DATA_TRAIN=path/to/train.csv.
const EnvPrefix = "TITANIC_"

// Config is the full pipeline configuration.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Output   OutputConfig   `koanf:"output"`
	Split    SplitConfig    `koanf:"split"`
	Model    ModelConfig    `koanf:"model"`
	Forest   ForestConfig   `koanf:"forest"`
	Logistic LogisticConfig `koanf:"logistic"`
	Logging  LoggingConfig  `koanf:"logging"`
	Seed     int64          `koanf:"seed"`
}

// DataConfig points at the competition input files.
type DataConfig struct {
	Train string `koanf:"train" validate:"required"`
	Test  string `koanf:"test" validate:"required"`
}

// OutputConfig points at the artifacts a run writes. Processed is
// optional; when set, the cleaned and engineered frames are saved there.
type OutputConfig struct {
	Submission string `koanf:"submission" validate:"required"`
	Report     string `koanf:"report"`
	Processed  string `koanf:"processed"`
}

// SplitConfig controls the train/validation partition.
type SplitConfig struct {
	ValidationRatio float64 `koanf:"validation_ratio" validate:"gt=0,lt=1"`
}

// ModelConfig selects which classifiers train. With "both", the one with
// the higher validation accuracy predicts the test set.
type ModelConfig struct {
	Use string `koanf:"use" validate:"oneof=forest logistic both"`
}

// ForestConfig holds the random-forest hyperparameters.
type ForestConfig struct {
	Trees           int    `koanf:"trees" validate:"gt=0"`
	MaxDepth        int    `koanf:"max_depth" validate:"gte=0"`
	MinSamplesSplit int    `koanf:"min_samples_split" validate:"gte=2"`
	MaxFeatures     int    `koanf:"max_features" validate:"gte=0"`
	Criterion       string `koanf:"criterion" validate:"oneof=gini entropy"`
}

// LogisticConfig holds the logistic-regression hyperparameters.
type LogisticConfig struct {
	LearningRate float64 `koanf:"learning_rate" validate:"gt=0"`
	Epochs       int     `koanf:"epochs" validate:"gt=0"`
}

// LoggingConfig mirrors pkg/logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns the configuration a run starts from before file and
// environment overrides.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Train: "data/raw/train.csv",
			Test:  "data/raw/test.csv",
		},
		Output: OutputConfig{
			Submission: "data/submission/submission.csv",
			Report:     "data/submission/report.json",
		},
		Split:  SplitConfig{ValidationRatio: 0.2},
		Model:  ModelConfig{Use: "both"},
		Forest: ForestConfig{Trees: 100, MaxDepth: 8, MinSamplesSplit: 2, Criterion: "gini"},
		Logistic: LogisticConfig{
			LearningRate: 0.1,
			Epochs:       2000,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Seed:    42,
	}
}

// Load layers defaults, the config file (explicit path or the first
// default path that exists) and environment variables, then validates
// the result. An empty path with no default file present is fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path == "" {
		for _, candidate := range DefaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// TITANIC_FOREST_MAX_DEPTH -> forest.max_depth: only the first
	// underscore separates the section from the key.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
