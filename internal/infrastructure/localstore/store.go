package localstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"gorm.io/gorm"
)

// BackendName identifies the local store in logs and store errors
const BackendName = "local"

// Collection keys. They match the keys the browser build of the app used.
const (
	collectionServices        = "lavanderia_servicios"
	collectionOrders          = "lavanderia_pedidos"
	collectionIncomes         = "lavanderia_ingresos"
	collectionExpenses        = "lavanderia_egresos"
	collectionProfile         = "lavanderia_config"
	collectionPrintedInvoices = "lavanderia_facturas_impresas"

	invoiceCounter = "lavanderia_contador_factura"
	seedMarker     = "seeded:"
)

var errNoMedium = errors.New("local database not available")

// record is one JSON-encoded entity of a collection
type record struct {
	Collection string    `gorm:"primaryKey;size:64"`
	ID         string    `gorm:"primaryKey;size:64"`
	Data       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (record) TableName() string {
	return "local_records"
}

type counter struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null;default:0"`
}

func (counter) TableName() string {
	return "local_counters"
}

// Store is the durable local fallback. Every entity type lives in its own
// collection of keyed records so concurrent writers never overwrite each other.
type Store struct {
	db  *gorm.DB
	now func() time.Time

	services        *collection[entity.Service]
	orders          *collection[entity.Order]
	incomes         *collection[entity.Income]
	expenses        *collection[entity.Expense]
	profiles        *collection[entity.BusinessProfile]
	printedInvoices *collection[entity.PrintedInvoice]
}

// New creates the local store on db and migrates its tables. A nil db gives a
// store whose every call fails with an Unavailable store error.
func New(db *gorm.DB) (*Store, error) {
	if db != nil {
		if err := db.AutoMigrate(&record{}, &counter{}, &entity.IdempotencyKey{}); err != nil {
			return nil, fmt.Errorf("failed to migrate local store: %w", err)
		}
	}

	s := &Store{db: db, now: time.Now}
	s.services = newCollection(s, collectionServices, func(v *entity.Service) (*string, *time.Time) {
		return &v.ID, &v.CreatedAt
	})
	s.orders = newCollection(s, collectionOrders, func(v *entity.Order) (*string, *time.Time) {
		return &v.ID, &v.CreatedAt
	})
	s.incomes = newCollection(s, collectionIncomes, func(v *entity.Income) (*string, *time.Time) {
		return &v.ID, &v.CreatedAt
	})
	s.expenses = newCollection(s, collectionExpenses, func(v *entity.Expense) (*string, *time.Time) {
		return &v.ID, &v.CreatedAt
	})
	s.profiles = newCollection(s, collectionProfile, func(v *entity.BusinessProfile) (*string, *time.Time) {
		return &v.ID, nil
	})
	s.printedInvoices = newCollection(s, collectionPrintedInvoices, func(v *entity.PrintedInvoice) (*string, *time.Time) {
		return &v.ID, &v.CreatedAt
	})
	return s, nil
}

// SetClock sets the time source used for ids, timestamps and local invoice numbers
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Available reports whether the store has a database behind it
func (s *Store) Available() bool {
	return s.db != nil
}

// Ping checks the local database connection
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return s.fail("ping", apperror.KindUnavailable, errNoMedium)
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return s.fail("ping", apperror.KindUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return s.fail("ping", apperror.KindUnavailable, err)
	}
	return nil
}

func (s *Store) conn(ctx context.Context, op string) (*gorm.DB, error) {
	if s.db == nil {
		return nil, s.fail(op, apperror.KindUnavailable, errNoMedium)
	}
	return s.db.WithContext(ctx), nil
}

func (s *Store) fail(op string, kind apperror.Kind, err error) error {
	return apperror.NewStoreError(BackendName, op, kind, err)
}

// writeErr classifies a failed write. Errors that are already typed keep their kind.
func (s *Store) writeErr(op string, err error) error {
	var storeErr *apperror.StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return s.fail(op, apperror.KindUnavailable, err)
}

// increment bumps the named counter inside tx and returns the new value
func (s *Store) increment(tx *gorm.DB, name string) (int64, error) {
	var c counter
	err := tx.Where("name = ?", name).First(&c).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c = counter{Name: name, Value: 1}
		return c.Value, tx.Create(&c).Error
	case err != nil:
		return 0, err
	}

	c.Value++
	if err := tx.Model(&counter{}).Where("name = ?", name).Update("value", c.Value).Error; err != nil {
		return 0, err
	}
	return c.Value, nil
}

// seedOnce runs seed in a transaction the first time it is called for
// collection. Later calls are no-ops even if the collection was emptied.
func (s *Store) seedOnce(ctx context.Context, collection string, seed func(tx *gorm.DB) error) error {
	db, err := s.conn(ctx, "seed "+collection)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		n, err := s.increment(tx, seedMarker+collection)
		if err != nil {
			return err
		}
		if n > 1 {
			return nil
		}
		log.Printf("[local] seeding %s", collection)
		return seed(tx)
	})
}
