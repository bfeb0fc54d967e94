package service

import (
	"context"
	"fmt"
	"io"

	"puzzlekit/internal/config"
	"puzzlekit/internal/logger"
	"puzzlekit/internal/puzzle/domain"
	"puzzlekit/internal/puzzle/input"
)

// SolverService 定义了两个谜题的求解接口
type SolverService interface {
	SolveTriplet(ctx context.Context, r io.Reader, sink ResultSink) error
	SolveDeletions(ctx context.Context, r io.Reader, sink ResultSink) error
}

type solverService struct {
	opts   input.Options
	logger *logger.Logger
}

// NewSolverService 创建一个新的 SolverService 实例
func NewSolverService(cfg config.InputConfig, log *logger.Logger) SolverService {
	if log == nil {
		log = logger.NewNop()
	}
	return &solverService{
		opts:   input.Options{MaxTokenSize: cfg.MaxTokenSize},
		logger: log,
	}
}

// SolveTriplet reads one sequence and emits its classification.
func (s *solverService) SolveTriplet(ctx context.Context, r io.Reader, sink ResultSink) error {
	seq, err := input.ReadSequence(r, s.opts)
	if err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	result := domain.Classify(seq)
	s.logger.Debugw("classified sequence", "length", len(seq), "result", result)

	if err := sink.Emit(result); err != nil {
		return fmt.Errorf("failed to emit classification: %w", err)
	}
	return nil
}

// SolveDeletions reads every digit case and emits one answer per case, in
// input order. Cancellation is checked between cases.
func (s *solverService) SolveDeletions(ctx context.Context, r io.Reader, sink ResultSink) error {
	cases, err := input.ReadDigitCases(r, s.opts)
	if err != nil {
		return fmt.Errorf("failed to read digit cases: %w", err)
	}
	s.logger.Debugf("读取了 %d 个测试用例", len(cases))

	for i, digits := range cases {
		if err := ctx.Err(); err != nil {
			s.logger.Warnf("solving cancelled after %d of %d cases", i, len(cases))
			return err
		}

		plan := domain.PlanDeletions(digits)
		s.logger.Debugw("planned deletions",
			"case", i+1,
			"length", plan.Length,
			"residue", plan.Residue,
			"counts", plan.Counts,
			"removed", plan.Removed,
			"capped", plan.Capped,
			"unreachable", plan.Unreachable,
			"deletions", plan.Deletions,
		)

		if err := sink.Emit(plan.Deletions); err != nil {
			return fmt.Errorf("failed to emit case %d: %w", i+1, err)
		}
	}
	return nil
}
