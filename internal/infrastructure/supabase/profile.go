package supabase

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
)

type profileRepository struct {
	d *Driver
}

func (r *profileRepository) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	var row profileRow
	if err := r.d.db.WithContext(ctx).Order("created_at ASC").First(&row).Error; err != nil {
		return nil, classify("get configuracion", err)
	}
	profile := row.entity()
	return &profile, nil
}

// Save updates the existing profile row, or inserts one when the table is empty
func (r *profileRepository) Save(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	existing, err := r.Get(ctx)
	switch {
	case apperror.IsNotFound(err):
		if err := r.d.db.WithContext(ctx).Create(newProfileRow(profile)).Error; err != nil {
			return nil, classify("create configuracion", err)
		}
	case err != nil:
		return nil, err
	default:
		if err := r.d.update(ctx, "update configuracion", &profileRow{}, existing.ID, profileColumns(profile)); err != nil {
			return nil, err
		}
	}
	return r.Get(ctx)
}
