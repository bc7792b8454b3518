package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

// TimestampLayout is used for generated_at and last_update.
const TimestampLayout = "2006-01-02T15:04:05.999999-07:00"

func newRunID() string {
	return uuid.NewString()
}

// notify publishes the outcome when a publisher is configured. Failures are
// logged only: the persisted files remain the source of truth.
func notify(ctx context.Context, publisher Publisher, logger *slog.Logger, outcome *domain.FetchOutcome) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, outcome); err != nil {
		logger.Warn("failed to publish outcome", "error", err)
	}
}

func stamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
