package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrEmptyFile is returned when an input CSV exists but holds no data.
var ErrEmptyFile = errors.New("dataset: file is empty")

// Load reads a CSV file into a Frame. The first record is the header row.
// The file must exist and be non-empty; a header-only file yields a
// zero-row frame.
func Load(path string) (*Frame, error) {
	if err := validateFile(path); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	f, err := New(records[0], records[1:])
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", f.Len()).Int("columns", len(f.headers)).Msg("loaded csv")
	return f, nil
}

// Save writes the frame to a CSV file, creating parent directories as
// needed. A zero-row frame is refused: the only consumers of saved
// frames (processed data, submissions) must never be empty.
func (f *Frame) Save(path string) error {
	if f.Len() == 0 {
		return fmt.Errorf("dataset: refusing to save empty frame to %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("dataset: create %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(f.headers); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	for i := 0; i < f.Len(); i++ {
		if err := w.Write(f.Row(i)); err != nil {
			return fmt.Errorf("dataset: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("dataset: flush %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", f.Len()).Msg("saved csv")
	return nil
}

func validateFile(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("dataset: directory %s does not exist: %w", dir, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("dataset: file %s does not exist: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return nil
}
