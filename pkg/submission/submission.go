// Package submission builds and writes the two-column prediction file
// the competition grader consumes: PassengerId and Survived, one row per
// test passenger, in test order.
package submission

import (
	"fmt"

	"titanic/pkg/dataprep"
	"titanic/pkg/dataset"
)

// Build pairs the test frame's passenger ids with predicted labels. The
// prediction count must equal the test row count and every label must be
// 0 or 1; the resulting frame preserves the test id order.
func Build(test *dataset.Frame, predictions []int) (*dataset.Frame, error) {
	ids, err := test.Column(dataprep.ColPassengerID)
	if err != nil {
		return nil, fmt.Errorf("submission: %w", err)
	}
	if len(predictions) != len(ids) {
		return nil, fmt.Errorf("submission: %d predictions for %d test rows", len(predictions), len(ids))
	}
	records := make([][]string, len(ids))
	for i, id := range ids {
		if predictions[i] != 0 && predictions[i] != 1 {
			return nil, fmt.Errorf("submission: row %d has label %d, want 0 or 1", i, predictions[i])
		}
		records[i] = []string{id, fmt.Sprintf("%d", predictions[i])}
	}
	return dataset.New([]string{dataprep.ColPassengerID, dataprep.ColSurvived}, records)
}

// Verify checks a built submission against the test frame: same row
// count and the same id sequence.
func Verify(sub, test *dataset.Frame) error {
	subIDs, err := sub.Column(dataprep.ColPassengerID)
	if err != nil {
		return fmt.Errorf("submission: %w", err)
	}
	testIDs, err := test.Column(dataprep.ColPassengerID)
	if err != nil {
		return fmt.Errorf("submission: %w", err)
	}
	if len(subIDs) != len(testIDs) {
		return fmt.Errorf("submission: %d rows, test has %d", len(subIDs), len(testIDs))
	}
	for i := range subIDs {
		if subIDs[i] != testIDs[i] {
			return fmt.Errorf("submission: row %d has id %s, test has %s", i, subIDs[i], testIDs[i])
		}
	}
	return nil
}

// Write builds, verifies and saves the submission in one step.
func Write(test *dataset.Frame, predictions []int, path string) (*dataset.Frame, error) {
	sub, err := Build(test, predictions)
	if err != nil {
		return nil, err
	}
	if err := Verify(sub, test); err != nil {
		return nil, err
	}
	if err := sub.Save(path); err != nil {
		return nil, err
	}
	return sub, nil
}
