package supabase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"gorm.io/gorm"
)

// BackendName identifies this driver in logs and store errors
const BackendName = "supabase"

const defaultPageSize = 100

// Driver is the relational backend: Supabase Postgres reached through gorm
type Driver struct {
	db       *gorm.DB
	pageSize int
}

// New creates the Supabase driver on an open database
func New(db *gorm.DB, pageSize int) *Driver {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Driver{db: db, pageSize: pageSize}
}

var _ domainRepo.Backend = (*Driver)(nil)

func (d *Driver) Name() string {
	return BackendName
}

// Ping runs the same cheap query the dashboard used as a connection test
func (d *Driver) Ping(ctx context.Context) error {
	var ids []string
	err := d.db.WithContext(ctx).Model(&serviceRow{}).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return classify("ping", err)
	}
	return nil
}

// AutoMigrate creates the tables when they do not exist yet
func (d *Driver) AutoMigrate() error {
	log.Println("[supabase] running migrations...")
	err := d.db.AutoMigrate(
		&serviceRow{},
		&orderRow{},
		&incomeRow{},
		&expenseRow{},
		&profileRow{},
		&printedInvoiceRow{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (d *Driver) Services() domainRepo.ServiceRepository {
	return &serviceRepository{d: d}
}

func (d *Driver) Orders() domainRepo.OrderRepository {
	return &orderRepository{d: d}
}

func (d *Driver) Incomes() domainRepo.IncomeRepository {
	return &incomeRepository{d: d}
}

func (d *Driver) Expenses() domainRepo.ExpenseRepository {
	return &expenseRepository{d: d}
}

func (d *Driver) Profiles() domainRepo.ProfileRepository {
	return &profileRepository{d: d}
}

func (d *Driver) PrintedInvoices() domainRepo.PrintedInvoiceRepository {
	return &printedInvoiceRepository{d: d}
}

// update applies columns to the row with id and reports NotFound when no row matched
func (d *Driver) update(ctx context.Context, op string, model interface{}, id string, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	result := d.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return classify(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(op, id)
	}
	return nil
}

func (d *Driver) delete(ctx context.Context, op string, model interface{}, id string) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return classify(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(op, id)
	}
	return nil
}

func notFound(op, id string) error {
	return apperror.NewStoreError(BackendName, op, apperror.KindNotFound, fmt.Errorf("no row with id %s", id))
}

// classify turns a gorm/pgx error into a typed store error
func classify(op string, err error) error {
	kind := apperror.KindUnknown

	var pgErr *pgconn.PgError
	var connErr *pgconn.ConnectError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = apperror.KindNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), pgconn.Timeout(err):
		kind = apperror.KindUnavailable
	case errors.As(err, &connErr):
		kind = apperror.KindUnavailable
	case errors.As(err, &pgErr):
		kind = pgErrorKind(pgErr)
	}

	log.Printf("[supabase] %s failed (%s): %v", op, kind, err)
	return apperror.NewStoreError(BackendName, op, kind, err)
}

// pgErrorKind maps a server error by SQLSTATE class. Connection and resource
// classes are outages; everything else is the server refusing the statement.
func pgErrorKind(pgErr *pgconn.PgError) apperror.Kind {
	if len(pgErr.Code) < 2 {
		return apperror.KindRejected
	}
	switch pgErr.Code[:2] {
	case "08", "53", "57":
		return apperror.KindUnavailable
	default:
		return apperror.KindRejected
	}
}
