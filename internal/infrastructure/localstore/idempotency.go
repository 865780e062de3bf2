package localstore

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"gorm.io/gorm"
)

type idempotencyRepository struct {
	store *Store
}

// IdempotencyKeys returns the idempotency key repository kept in the local database
func (s *Store) IdempotencyKeys() domainRepo.IdempotencyRepository {
	return &idempotencyRepository{store: s}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error) {
	db, err := r.store.conn(ctx, "get idempotency key")
	if err != nil {
		return nil, err
	}

	var ikey entity.IdempotencyKey
	err = db.Where("key = ?", key).First(&ikey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ikey, err
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	db, err := r.store.conn(ctx, "create idempotency key")
	if err != nil {
		return err
	}
	return db.Create(ikey).Error
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	db, err := r.store.conn(ctx, "delete idempotency keys")
	if err != nil {
		return err
	}
	return db.Where("expires_at < ?", time.Now()).Delete(&entity.IdempotencyKey{}).Error
}
