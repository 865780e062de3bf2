package repository

import (
	"context"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

// Remote repositories list at most one page of the most recent records.
// Lookups and mutations of a missing id fail with an apperror.StoreError of
// kind NotFound; every other failure is a StoreError of the matching kind.

// ServiceRepository defines the catalog operations of a backend
type ServiceRepository interface {
	List(ctx context.Context) ([]entity.Service, error)
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, service *entity.Service) (*entity.Service, error)
	Update(ctx context.Context, id string, patch entity.ServicePatch) (*entity.Service, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the order operations of a backend
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
	Update(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
	// NextInvoiceNo derives the invoice number for a new order from the most
	// recently created one.
	NextInvoiceNo(ctx context.Context, now time.Time) (string, error)
}

type IncomeRepository interface {
	List(ctx context.Context) ([]entity.Income, error)
	GetByID(ctx context.Context, id string) (*entity.Income, error)
	Create(ctx context.Context, income *entity.Income) (*entity.Income, error)
	Update(ctx context.Context, id string, patch entity.IncomePatch) (*entity.Income, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseRepository interface {
	List(ctx context.Context) ([]entity.Expense, error)
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) (*entity.Expense, error)
	Update(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ProfileRepository reads and writes the singleton business profile.
// Get fails with NotFound when no profile exists yet.
type ProfileRepository interface {
	Get(ctx context.Context) (*entity.BusinessProfile, error)
	Save(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error)
}

// PrintedInvoiceRepository is the append-only print audit trail
type PrintedInvoiceRepository interface {
	List(ctx context.Context) ([]entity.PrintedInvoice, error)
	Create(ctx context.Context, invoice *entity.PrintedInvoice) (*entity.PrintedInvoice, error)
}

// Backend is a remote store the facade can be configured with
type Backend interface {
	Name() string
	Ping(ctx context.Context) error
	Services() ServiceRepository
	Orders() OrderRepository
	Incomes() IncomeRepository
	Expenses() ExpenseRepository
	Profiles() ProfileRepository
	PrintedInvoices() PrintedInvoiceRepository
}
