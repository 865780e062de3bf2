package service

import (
	"context"
	"strings"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
)

// CatalogService handles the laundry service catalog
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a new catalog service
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// ListServices returns the catalog, only active services when activeOnly is set
func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	services, err := s.store.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return services, nil
	}
	active := make([]entity.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return active, nil
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*entity.Service, error) {
	svc, err := s.store.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// CreateService adds a service to the catalog
func (s *CatalogService) CreateService(ctx context.Context, svc entity.Service) (*entity.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if err := validateService(svc.Name, svc.Price, svc.Unit); err != nil {
		return nil, err
	}
	return s.store.CreateService(ctx, svc)
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, patch entity.ServicePatch) (*entity.Service, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fieldError("name", "cannot be empty")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fieldError("price", "cannot be negative")
	}
	if patch.Unit != nil && !patch.Unit.IsValid() {
		return nil, fieldError("unit", "unknown pricing unit")
	}

	svc, err := s.store.UpdateService(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteService(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Service")
	}
	return nil
}

func validateService(name string, price entity.Money, unit enum.PricingUnit) error {
	var errs []apperror.FieldError
	if name == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if price < 0 {
		errs = append(errs, apperror.FieldError{Field: "price", Message: "cannot be negative"})
	}
	if !unit.IsValid() {
		errs = append(errs, apperror.FieldError{Field: "unit", Message: "unknown pricing unit"})
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}
	return nil
}
