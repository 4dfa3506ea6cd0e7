package filecompare

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"numcompare/core/align"
	"numcompare/core/compare"
	"numcompare/core/config"
	"numcompare/core/logger"
	"numcompare/core/record"
	"numcompare/core/report"
	"numcompare/core/tolerance"
)

// ErrNotEqual signals a completed comparison whose inputs differ. It is a
// result, not a fault: the CLI returns it after emitting the report so the
// process can exit with the divergence status.
var ErrNotEqual = errors.New("inputs are not equal")

// Service runs file comparisons.
type Service struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewService creates a new comparison service.
func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// Run compares leftPath against rightPath and returns the finished report.
// The configuration is validated before any input is opened; after that a
// run either covers every record of both inputs or fails with the first
// IO or parse error, without a report.
func (s *Service) Run(leftPath, rightPath string) (*report.Report, error) {
	startTime := time.Now()

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := tolerance.NewPolicy(s.cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	format := record.Format(s.cfg.Input.Format)

	if leftPath == "-" && rightPath == "-" {
		return nil, errors.New("stdin can supply only one input")
	}

	runID := uuid.NewString()
	logg := logger.WithRunID(s.logger, runID)

	left, err := OpenInput(leftPath, format)
	if err != nil {
		return nil, fmt.Errorf("left input: %w", err)
	}
	defer left.Close()

	right, err := OpenInput(rightPath, format)
	if err != nil {
		return nil, fmt.Errorf("right input: %w", err)
	}
	defer right.Close()

	logg.Info("Comparing inputs",
		zap.String("left", left.Name()),
		zap.String("right", right.Name()),
		zap.String("format", string(format)),
		zap.String("tolerance", policy.Describe()),
	)

	reportCfg := s.cfg.Report
	if reportCfg.Diff && format != record.FormatLines {
		logg.Debug("Diff listing requires the lines format, skipping")
		reportCfg.Diff = false
	}

	builder := report.NewBuilder(reportCfg)
	verdict, err := compare.Run(align.NewWalker(left, right), policy, builder.Observe)
	if err != nil {
		return nil, err
	}

	rep := builder.Build(verdict, report.Meta{
		RunID:      runID,
		Left:       left.Name(),
		Right:      right.Name(),
		LeftBytes:  left.Size(),
		RightBytes: right.Size(),
		Format:     format,
		Tolerance:  policy.Describe(),
		Elapsed:    time.Since(startTime),
	})

	logg.Info("Comparison finished",
		zap.Bool("equal", rep.Equal),
		zap.Int("total_pairs", verdict.TotalPairs),
		zap.Int("matches", verdict.Matches),
		zap.Int("mismatches", verdict.Mismatches),
		zap.Int("missing_left", verdict.MissingLeft),
		zap.Int("missing_right", verdict.MissingRight),
		zap.Float64("max_deviation", verdict.MaxDeviation),
		zap.Duration("execution_time", time.Since(startTime)),
	)

	return rep, nil
}
