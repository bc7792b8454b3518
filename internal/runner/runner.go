// Package runner executes one pipeline run under a deadline. Repetition is
// left to the external scheduler (cron, CI schedule, systemd timer).
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

// Job is a pipeline that can be run once.
type Job interface {
	Name() string
	Run(ctx context.Context) (*domain.FetchOutcome, error)
}

type Runner struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewRunner(timeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		timeout: timeout,
		logger:  logger,
	}
}

// RunOnce runs job a single time. Exceeding the deadline is reported as a
// failed run, like any transport failure.
func (r *Runner) RunOnce(ctx context.Context, job Job) (*domain.FetchOutcome, error) {
	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	r.logger.Info("run started", "job", job.Name(), "timeout", r.timeout)

	outcome, err := job.Run(runCtx)
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		err = fmt.Errorf("run exceeded %s: %w", r.timeout, err)
	}

	attrs := []any{"job", job.Name(), "duration", time.Since(start)}
	if outcome != nil {
		attrs = append(attrs, "status", outcome.Kind, "records", outcome.RecordCount)
	}
	if err != nil {
		r.logger.Error("run failed", append(attrs, "error", err)...)
		return outcome, err
	}

	r.logger.Info("run finished", attrs...)
	return outcome, nil
}
