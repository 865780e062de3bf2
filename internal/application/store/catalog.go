package store

import (
	"context"
	"log"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
)

// ListServices returns the catalog. An empty remote catalog is seeded with
// the default services and read again.
func (s *Store) ListServices(ctx context.Context) ([]entity.Service, error) {
	services, ok, err := tryRemote(s, "list services", func(b domainRepo.Backend) ([]entity.Service, error) {
		list, err := b.Services().List(ctx)
		if err != nil || len(list) > 0 {
			return list, err
		}
		return seedRemoteCatalog(ctx, b)
	})
	if ok {
		return services, err
	}
	return readLocal(s.local.ListServices(ctx))
}

func seedRemoteCatalog(ctx context.Context, b domainRepo.Backend) ([]entity.Service, error) {
	log.Printf("[store] catalog on %s is empty, creating default services", b.Name())
	for _, svc := range entity.DefaultServices() {
		svc.ID = ""
		if _, err := b.Services().Create(ctx, &svc); err != nil {
			return nil, err
		}
	}
	return b.Services().List(ctx)
}

// GetService returns nil, nil when the service does not exist
func (s *Store) GetService(ctx context.Context, id string) (*entity.Service, error) {
	svc, ok, err := tryRemote(s, "get service", func(b domainRepo.Backend) (*entity.Service, error) {
		return b.Services().GetByID(ctx, id)
	})
	if ok {
		return svc, err
	}
	return readLocal(s.local.GetService(ctx, id))
}

func (s *Store) CreateService(ctx context.Context, svc entity.Service) (*entity.Service, error) {
	created, ok, err := tryRemote(s, "create service", func(b domainRepo.Backend) (*entity.Service, error) {
		created, err := b.Services().Create(ctx, &svc)
		if err != nil {
			return nil, err
		}
		return created, requireID(b.Name(), "create service", created.ID)
	})
	if ok {
		return created, err
	}
	return s.local.CreateService(ctx, svc)
}

// UpdateService applies patch and returns the updated service, or nil when it does not exist
func (s *Store) UpdateService(ctx context.Context, id string, patch entity.ServicePatch) (*entity.Service, error) {
	updated, ok, err := tryRemote(s, "update service", func(b domainRepo.Backend) (*entity.Service, error) {
		return b.Services().Update(ctx, id, patch)
	})
	if ok {
		return updated, err
	}
	return s.local.UpdateService(ctx, id, patch)
}

// DeleteService reports whether a service was deleted
func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	deleted, ok, err := tryRemote(s, "delete service", func(b domainRepo.Backend) (bool, error) {
		return true, b.Services().Delete(ctx, id)
	})
	if ok {
		return deleted, err
	}
	return s.local.DeleteService(ctx, id)
}
