package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
	"github.com/ludodefgh/planif-neige-public-api/internal/source/planif"
)

// PlanifConfig carries the query settings of the Planif-Neige pipeline.
type PlanifConfig struct {
	Token        string
	LookbackDays int
	Codes        planif.Codes
}

// PlanifService fetches the snow-clearing schedule, classifies the service
// status and writes the data and metadata documents.
type PlanifService struct {
	client     PlanificationClient
	classifier *planif.Classifier
	data       PlanificationStore
	metadata   MetadataStore
	publisher  Publisher
	logger     *slog.Logger
	config     PlanifConfig
	now        func() time.Time
}

func NewPlanifService(
	client PlanificationClient,
	data PlanificationStore,
	metadata MetadataStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg PlanifConfig,
) *PlanifService {
	return &PlanifService{
		client:     client,
		classifier: planif.NewClassifier(cfg.Codes),
		data:       data,
		metadata:   metadata,
		publisher:  publisher,
		logger:     logger.With("pipeline", client.ID()),
		config:     cfg,
		now:        time.Now,
	}
}

func (s *PlanifService) Name() string {
	return s.client.ID()
}

// Run performs exactly one call to the service. The metadata document is
// written whatever the outcome; the data document only when the call
// succeeded, with or without rows.
func (s *PlanifService) Run(ctx context.Context) (*domain.FetchOutcome, error) {
	started := s.now()
	outcome := &domain.FetchOutcome{
		Pipeline: s.client.ID(),
		RunID:    newRunID(),
		FromDate: started.AddDate(0, 0, -s.config.LookbackDays).Format(planif.FromDateLayout),
	}
	logger := s.logger.With("run_id", outcome.RunID)

	logger.Info("fetching planifications", "from_date", outcome.FromDate)

	err := s.fetch(ctx, logger, outcome)
	outcome.At = s.now()

	meta := &domain.FetchMetadata{LastUpdate: stamp(outcome.At)}
	if err != nil {
		outcome.Kind = domain.OutcomeError
		outcome.Err = err
		outcome.Retryable = planif.IsRetryable(err)
		meta.Status = domain.StatusError
		meta.Error = err.Error()
		logger.Error("planif-neige fetch failed", "error", err, "retryable", outcome.Retryable)
	} else {
		count := outcome.RecordCount
		meta.Status = domain.StatusSuccess
		meta.FromDate = outcome.FromDate
		meta.RecordCount = &count
		logger.Info("fetched planifications", "record_count", count, "status", outcome.Kind)
	}

	// The metadata document is the record of a failed run, including one
	// cut short by cancellation or the run deadline.
	if werr := s.metadata.Write(context.WithoutCancel(ctx), meta); werr != nil {
		logger.Error("failed to write metadata", "error", werr)
		werr = fmt.Errorf("save metadata: %w", werr)
		if err == nil {
			outcome.Kind = domain.OutcomeError
			outcome.Err = werr
		}
		err = errors.Join(err, werr)
	}

	notify(ctx, s.publisher, logger, outcome)

	return outcome, err
}

func (s *PlanifService) fetch(ctx context.Context, logger *slog.Logger, outcome *domain.FetchOutcome) error {
	resp, err := s.client.GetPlanificationsForDate(ctx, planif.Query{
		FromDate: outcome.FromDate,
		Token:    s.config.Token,
	})
	if err != nil {
		return fmt.Errorf("call GetPlanificationsForDate: %w", err)
	}

	cls := s.classifier.Classify(resp)
	logger.Info("service returned code", "code", cls.Raw, "outcome", cls.Outcome.String())

	if err := cls.Err(); err != nil {
		return err
	}

	records := []domain.Planification{}
	if cls.Outcome == planif.OutcomeNoData {
		logger.Info("no data for requested range")
	} else {
		records = planif.NormalizeResponse(resp)
		logger.Info("parsed planifications", "count", len(records))
	}

	doc := &domain.PlanificationDocument{
		Planifications: records,
		GeneratedAt:    stamp(s.now()),
	}
	if err := s.data.Replace(ctx, doc); err != nil {
		return fmt.Errorf("save planifications: %w", err)
	}

	outcome.RecordCount = len(records)
	outcome.Kind = domain.OutcomeSuccess
	if len(records) == 0 {
		outcome.Kind = domain.OutcomeEmpty
	}
	return nil
}
