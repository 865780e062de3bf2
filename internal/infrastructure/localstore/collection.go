package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/sangkips/laundrypro-api/pkg/utils"
	"gorm.io/gorm"
)

// collection stores values of T as JSON records under one collection key.
// keys exposes the id and creation time fields of a value; created may be nil.
type collection[T any] struct {
	store *Store
	name  string
	keys  func(*T) (id *string, created *time.Time)
}

func newCollection[T any](s *Store, name string, keys func(*T) (*string, *time.Time)) *collection[T] {
	return &collection[T]{store: s, name: name, keys: keys}
}

// list returns the collection in insertion order. Records that cannot be
// decoded are skipped.
func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	db, err := c.store.conn(ctx, "list "+c.name)
	if err != nil {
		return nil, err
	}

	var rows []record
	if err := db.Where("collection = ?", c.name).Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, c.store.fail("list "+c.name, apperror.KindUnavailable, err)
	}

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		var item T
		if err := json.Unmarshal([]byte(row.Data), &item); err != nil {
			log.Printf("[local] skipping undecodable %s record %s: %v", c.name, row.ID, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// get returns nil, nil when the id is unknown
func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	db, err := c.store.conn(ctx, "get "+c.name)
	if err != nil {
		return nil, err
	}

	var row record
	err = db.Where("collection = ? AND id = ?", c.name, id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, c.store.fail("get "+c.name, apperror.KindUnavailable, err)
	}
	return c.decode(row)
}

// first returns the oldest record of the collection, nil when empty
func (c *collection[T]) first(ctx context.Context) (*T, error) {
	db, err := c.store.conn(ctx, "get "+c.name)
	if err != nil {
		return nil, err
	}

	var row record
	err = db.Where("collection = ?", c.name).Order("created_at ASC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, c.store.fail("get "+c.name, apperror.KindUnavailable, err)
	}
	return c.decode(row)
}

func (c *collection[T]) decode(row record) (*T, error) {
	var item T
	if err := json.Unmarshal([]byte(row.Data), &item); err != nil {
		return nil, c.store.fail("decode "+c.name, apperror.KindCorrupt, err)
	}
	return &item, nil
}

// insert writes item as a new record inside tx, assigning a local id and
// creation time when missing
func (c *collection[T]) insert(tx *gorm.DB, item *T) error {
	now := c.store.now()
	id, created := c.keys(item)
	if *id == "" {
		*id = utils.NewLocalID(now)
	}
	createdAt := now.UTC()
	if created != nil {
		if created.IsZero() {
			*created = createdAt
		}
		createdAt = *created
	}

	data, err := json.Marshal(item)
	if err != nil {
		return c.store.fail("encode "+c.name, apperror.KindRejected, err)
	}
	return tx.Create(&record{
		Collection: c.name,
		ID:         *id,
		Data:       string(data),
		CreatedAt:  createdAt,
		UpdatedAt:  now.UTC(),
	}).Error
}

func (c *collection[T]) create(ctx context.Context, item T) (*T, error) {
	db, err := c.store.conn(ctx, "create "+c.name)
	if err != nil {
		return nil, err
	}
	if err := c.insert(db, &item); err != nil {
		return nil, c.store.writeErr("create "+c.name, err)
	}
	return &item, nil
}

// update applies mutate to the stored value of id in one transaction.
// It returns nil, nil when the id is unknown.
func (c *collection[T]) update(ctx context.Context, id string, mutate func(*T)) (*T, error) {
	db, err := c.store.conn(ctx, "update "+c.name)
	if err != nil {
		return nil, err
	}

	var updated T
	err = db.Transaction(func(tx *gorm.DB) error {
		var row record
		if err := tx.Where("collection = ? AND id = ?", c.name, id).First(&row).Error; err != nil {
			return err
		}
		item, err := c.decode(row)
		if err != nil {
			return err
		}

		mutate(item)
		itemID, _ := c.keys(item)
		*itemID = id

		data, err := json.Marshal(item)
		if err != nil {
			return c.store.fail("encode "+c.name, apperror.KindRejected, err)
		}
		updated = *item
		return tx.Model(&record{}).
			Where("collection = ? AND id = ?", c.name, id).
			Updates(map[string]interface{}{"data": string(data), "updated_at": c.store.now().UTC()}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, c.store.writeErr("update "+c.name, err)
	}
	return &updated, nil
}

// remove reports whether a record was deleted
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	db, err := c.store.conn(ctx, "delete "+c.name)
	if err != nil {
		return false, err
	}

	result := db.Where("collection = ? AND id = ?", c.name, id).Delete(&record{})
	if result.Error != nil {
		return false, c.store.writeErr("delete "+c.name, result.Error)
	}
	return result.RowsAffected > 0, nil
}
