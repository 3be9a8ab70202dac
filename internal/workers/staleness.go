package workers

import (
	"context"
	"log/slog"
	"time"
)

type FieldEvaluator interface {
	EvaluateField(ctx context.Context) error
}

// ComplianceSweeper periodically re-evaluates every active session for stale
// positions and out-of-zone drift.
type ComplianceSweeper struct {
	compliance FieldEvaluator
	interval   time.Duration
	logger     *slog.Logger
}

func NewComplianceSweeper(compliance FieldEvaluator, interval time.Duration, logger *slog.Logger) *ComplianceSweeper {
	return &ComplianceSweeper{compliance: compliance, interval: interval, logger: logger}
}

func (w *ComplianceSweeper) Run(ctx context.Context) {
	w.logger.Info("complianceSweeper STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("complianceSweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			if err := w.compliance.EvaluateField(ctx); err != nil {
				w.logger.Error("field evaluation failed", slog.Any("error", err))
			}
		}
	}
}
