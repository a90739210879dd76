package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"titanic/pkg/config"
)

type PipelineSuite struct {
	suite.Suite
	cfg *config.Config
	dir string
}

func (s *PipelineSuite) SetupTest() {
	s.dir = s.T().TempDir()
	cfg := config.Default()
	cfg.Data.Train = filepath.Join("testdata", "train.csv")
	cfg.Data.Test = filepath.Join("testdata", "test.csv")
	cfg.Output.Submission = filepath.Join(s.dir, "submission.csv")
	cfg.Output.Report = filepath.Join(s.dir, "report.json")
	cfg.Split.ValidationRatio = 0.25
	cfg.Forest.Trees = 10
	cfg.Forest.MaxDepth = 4
	cfg.Logistic.Epochs = 300
	cfg.Seed = 42
	s.cfg = cfg
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func (s *PipelineSuite) TestRunProducesValidSubmission() {
	result, err := Run(s.cfg)
	s.Require().NoError(err)

	ids, err := result.Submission.Column("PassengerId")
	s.Require().NoError(err)
	s.Equal([]string{"892", "893", "894"}, ids, "submission ids must match test order")

	labels, err := result.Submission.Column("Survived")
	s.Require().NoError(err)
	for i, lab := range labels {
		s.Contains([]string{"0", "1"}, lab, "row %d", i)
	}

	data, err := os.ReadFile(s.cfg.Output.Submission)
	s.Require().NoError(err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	s.Len(lines, 4)
	s.Equal("PassengerId,Survived", lines[0])
}

func (s *PipelineSuite) TestRunTrainsBothModels() {
	result, err := Run(s.cfg)
	s.Require().NoError(err)

	s.Require().Len(result.Report.Models, 2)
	s.Equal("forest", result.Report.Models[0].Name)
	s.Equal("logistic", result.Report.Models[1].Name)
	s.Contains([]string{"forest", "logistic"}, result.Report.Chosen)
	for _, m := range result.Report.Models {
		s.GreaterOrEqual(m.Accuracy, 0.0)
		s.LessOrEqual(m.Accuracy, 1.0)
	}
}

func (s *PipelineSuite) TestRunIsDeterministic() {
	_, err := Run(s.cfg)
	s.Require().NoError(err)
	first, err := os.ReadFile(s.cfg.Output.Submission)
	s.Require().NoError(err)

	s.cfg.Output.Submission = filepath.Join(s.dir, "submission2.csv")
	_, err = Run(s.cfg)
	s.Require().NoError(err)
	second, err := os.ReadFile(s.cfg.Output.Submission)
	s.Require().NoError(err)

	s.Equal(string(first), string(second), "same seed and inputs must reproduce the file")
}

func (s *PipelineSuite) TestRunWritesReport() {
	result, err := Run(s.cfg)
	s.Require().NoError(err)

	data, err := os.ReadFile(s.cfg.Output.Report)
	s.Require().NoError(err)
	s.Contains(string(data), result.Report.RunID)
	s.Contains(string(data), `"chosen_model"`)
}

func (s *PipelineSuite) TestRunSavesProcessedFrames() {
	s.cfg.Output.Processed = filepath.Join(s.dir, "processed")
	_, err := Run(s.cfg)
	s.Require().NoError(err)

	for _, name := range []string{"train.csv", "test.csv"} {
		_, err := os.Stat(filepath.Join(s.cfg.Output.Processed, name))
		s.NoError(err, name)
	}
}

func (s *PipelineSuite) TestRunFailsOnMissingInput() {
	s.cfg.Data.Train = filepath.Join(s.dir, "absent.csv")
	_, err := Run(s.cfg)
	s.Require().Error(err)
}

func (s *PipelineSuite) TestRunForestOnly() {
	s.cfg.Model.Use = "forest"
	result, err := Run(s.cfg)
	s.Require().NoError(err)
	s.Len(result.Report.Models, 1)
	s.Equal("forest", result.Report.Chosen)
}
