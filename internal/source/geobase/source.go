package geobase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

const (
	SourceID   = "geobase"
	SourceName = "Geobase double"
)

// Config holds Geobase source configuration.
type Config struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// Source downloads the Geobase feature collection.
type Source struct {
	httpClient *http.Client
	url        string
	userAgent  string
	logger     *slog.Logger
}

// New creates a new Geobase source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		logger:    logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchStreetSides downloads the collection and maps it. Any failure aborts
// the whole fetch; no partial mapping is returned.
func (s *Source) FetchStreetSides(ctx context.Context) (*domain.StreetSideMap, error) {
	fc, err := s.doRequest(ctx)
	if err != nil {
		return nil, err
	}

	mapping, skipped := MapFeatures(fc.Features)

	s.logger.Info("mapped features",
		"features", len(fc.Features),
		"street_sides", mapping.Len(),
		"skipped", skipped,
	)

	return mapping, nil
}

func (s *Source) doRequest(ctx context.Context) (*FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var fc FeatureCollection
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &fc, nil
}
