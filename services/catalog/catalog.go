package catalog

import (
	"context"
	"fmt"

	"salonbook/database/repository"
	"salonbook/models"

	"go.uber.org/zap"
)

// CatalogService loads the bookable services shown on the form.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo   repository.ServiceRepository
	Logger *zap.Logger
}

// ListServices returns every catalog row. An empty catalog is a valid result:
// the form renders an empty state and submissions fall into the zero-selection
// validation path. A gateway failure is returned as an error for the caller to
// surface; it never panics past this boundary.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Repo.GetAll(ctx)
	if err != nil {
		s.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	if len(services) == 0 {
		s.Logger.Warn("ListServices: catalog is empty")
		return []models.Service{}, nil
	}
	return services, nil
}
