package catalog

import (
	"context"
	"errors"
	"testing"

	"salonbook/models"

	"go.uber.org/zap"
)

type fakeServiceRepo struct {
	services []models.Service
	err      error
}

func (f *fakeServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	return f.services, f.err
}

func (f *fakeServiceRepo) GetByName(ctx context.Context, name string) (*models.Service, error) {
	for _, s := range f.services {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, errors.New("not found")
}

func TestListServices(t *testing.T) {
	svc := &DefaultCatalogService{
		Repo: &fakeServiceRepo{services: []models.Service{
			{ID: "svc-1", Name: "Haircut", Price: 150},
			{ID: "svc-2", Name: "Manicure", Price: 200},
		}},
		Logger: zap.NewNop(),
	}

	services, err := svc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
}

func TestListServices_EmptyCatalog(t *testing.T) {
	svc := &DefaultCatalogService{
		Repo:   &fakeServiceRepo{},
		Logger: zap.NewNop(),
	}

	services, err := svc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("empty catalog must not be an error, got %v", err)
	}
	if services == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(services) != 0 {
		t.Fatalf("expected 0 services, got %d", len(services))
	}
}

func TestListServices_GatewayFailure(t *testing.T) {
	svc := &DefaultCatalogService{
		Repo:   &fakeServiceRepo{err: errors.New("connection refused")},
		Logger: zap.NewNop(),
	}

	if _, err := svc.ListServices(context.Background()); err == nil {
		t.Fatal("expected the gateway error to surface")
	}
}
