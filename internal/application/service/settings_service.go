package service

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

// SettingsService handles the business profile printed on tickets
type SettingsService struct {
	store *store.Store
}

// NewSettingsService creates a new settings service
func NewSettingsService(st *store.Store) *SettingsService {
	return &SettingsService{store: st}
}

// GetSettings returns the business profile, the default one when none is stored
func (s *SettingsService) GetSettings(ctx context.Context) *entity.BusinessProfile {
	return s.store.GetProfile(ctx)
}

// UpdateSettings changes the fields set in patch
func (s *SettingsService) UpdateSettings(ctx context.Context, patch entity.ProfilePatch) (*entity.BusinessProfile, error) {
	if patch.BusinessName != nil && *patch.BusinessName == "" {
		return nil, fieldError("business_name", "cannot be empty")
	}
	return s.store.UpdateProfile(ctx, patch)
}
