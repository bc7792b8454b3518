package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

// GeobaseService refreshes the street-side mapping file.
type GeobaseService struct {
	source    GeobaseSource
	store     StreetSideStore
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewGeobaseService(
	source GeobaseSource,
	store StreetSideStore,
	publisher Publisher,
	logger *slog.Logger,
) *GeobaseService {
	return &GeobaseService{
		source:    source,
		store:     store,
		publisher: publisher,
		logger:    logger.With("pipeline", source.ID()),
		now:       time.Now,
	}
}

func (s *GeobaseService) Name() string {
	return s.source.ID()
}

// Run fetches and maps the Geobase, then replaces the mapping file. On any
// failure the existing file is left as it was.
func (s *GeobaseService) Run(ctx context.Context) (*domain.FetchOutcome, error) {
	outcome := &domain.FetchOutcome{
		Pipeline: s.source.ID(),
		RunID:    newRunID(),
	}
	logger := s.logger.With("run_id", outcome.RunID)

	logger.Info("fetching geobase")

	err := s.run(ctx, outcome)
	outcome.At = s.now()
	if err != nil {
		outcome.Kind = domain.OutcomeError
		outcome.Err = err
		logger.Error("geobase fetch failed", "error", err)
	} else {
		logger.Info("geobase mapping written", "street_sides", outcome.RecordCount)
	}

	notify(ctx, s.publisher, logger, outcome)

	return outcome, err
}

func (s *GeobaseService) run(ctx context.Context, outcome *domain.FetchOutcome) error {
	mapping, err := s.source.FetchStreetSides(ctx)
	if err != nil {
		return fmt.Errorf("fetch street sides: %w", err)
	}

	if err := s.store.Replace(ctx, mapping); err != nil {
		return fmt.Errorf("save mapping: %w", err)
	}

	outcome.RecordCount = mapping.Len()
	outcome.Kind = domain.OutcomeSuccess
	if mapping.Len() == 0 {
		outcome.Kind = domain.OutcomeEmpty
	}
	return nil
}
