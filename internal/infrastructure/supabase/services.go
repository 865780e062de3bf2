package supabase

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

type serviceRepository struct {
	d *Driver
}

func (r *serviceRepository) List(ctx context.Context) ([]entity.Service, error) {
	var rows []serviceRow
	err := r.d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(r.d.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, classify("list servicios", err)
	}

	services := make([]entity.Service, 0, len(rows))
	for i := range rows {
		services = append(services, rows[i].entity())
	}
	return services, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	var row serviceRow
	if err := r.d.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, classify("get servicio", err)
	}
	svc := row.entity()
	return &svc, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) (*entity.Service, error) {
	row := newServiceRow(service)
	if err := r.d.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, classify("create servicio", err)
	}
	created := row.entity()
	return &created, nil
}

func (r *serviceRepository) Update(ctx context.Context, id string, patch entity.ServicePatch) (*entity.Service, error) {
	columns := map[string]interface{}{}
	if patch.Name != nil {
		columns["nombre"] = *patch.Name
	}
	if patch.Description != nil {
		columns["descripcion"] = *patch.Description
	}
	if patch.Price != nil {
		columns["precio"] = patch.Price.Float64()
	}
	if patch.Unit != nil {
		columns["unidad"] = string(*patch.Unit)
	}
	if patch.Active != nil {
		columns["activo"] = *patch.Active
	}

	if err := r.d.update(ctx, "update servicio", &serviceRow{}, id, columns); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.d.delete(ctx, "delete servicio", &serviceRow{}, id)
}
