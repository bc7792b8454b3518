package jsonfile

import (
	"context"

	"github.com/ludodefgh/planif-neige-public-api/internal/domain"
)

// StreetSideStore holds the Geobase mapping file.
type StreetSideStore struct {
	path string
}

func NewStreetSideStore(path string) *StreetSideStore {
	return &StreetSideStore{path: path}
}

// Replace overwrites the mapping file with m. Previous content is not merged.
func (s *StreetSideStore) Replace(ctx context.Context, m *domain.StreetSideMap) error {
	if m == nil {
		m = domain.NewStreetSideMap()
	}
	return WriteFile(ctx, s.path, m)
}

func (s *StreetSideStore) Path() string {
	return s.path
}

// PlanificationStore holds the Planif-Neige data file.
type PlanificationStore struct {
	path string
}

func NewPlanificationStore(path string) *PlanificationStore {
	return &PlanificationStore{path: path}
}

func (s *PlanificationStore) Replace(ctx context.Context, doc *domain.PlanificationDocument) error {
	out := *doc
	if out.Planifications == nil {
		out.Planifications = []domain.Planification{}
	}
	return WriteFile(ctx, s.path, out)
}

func (s *PlanificationStore) Path() string {
	return s.path
}

// MetadataStore holds the Planif-Neige status document.
type MetadataStore struct {
	path string
}

func NewMetadataStore(path string) *MetadataStore {
	return &MetadataStore{path: path}
}

func (s *MetadataStore) Write(ctx context.Context, meta *domain.FetchMetadata) error {
	return WriteFile(ctx, s.path, meta)
}

func (s *MetadataStore) Path() string {
	return s.path
}
