package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
	"github.com/ludodefgh/planif-neige-public-api/internal/source/planif"
)

type GeobaseSource interface {
	ID() string
	FetchStreetSides(ctx context.Context) (*domain.StreetSideMap, error)
}

type PlanificationClient interface {
	ID() string
	GetPlanificationsForDate(ctx context.Context, q planif.Query) (planif.Object, error)
}

type StreetSideStore interface {
	Replace(ctx context.Context, m *domain.StreetSideMap) error
}

type PlanificationStore interface {
	Replace(ctx context.Context, doc *domain.PlanificationDocument) error
}

type MetadataStore interface {
	Write(ctx context.Context, meta *domain.FetchMetadata) error
}

type Publisher interface {
	Publish(ctx context.Context, outcome *domain.FetchOutcome) error
	Close() error
}
