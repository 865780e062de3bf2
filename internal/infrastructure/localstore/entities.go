package localstore

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/pkg/utils"
	"gorm.io/gorm"
)

// ListServices returns the catalog, seeding the default services the first
// time the catalog is read empty
func (s *Store) ListServices(ctx context.Context) ([]entity.Service, error) {
	services, err := s.services.list(ctx)
	if err != nil || len(services) > 0 {
		return services, err
	}

	err = s.seedOnce(ctx, collectionServices, func(tx *gorm.DB) error {
		for _, svc := range entity.DefaultServices() {
			if err := s.services.insert(tx, &svc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.writeErr("seed "+collectionServices, err)
	}
	return s.services.list(ctx)
}

func (s *Store) GetService(ctx context.Context, id string) (*entity.Service, error) {
	return s.services.get(ctx, id)
}

func (s *Store) CreateService(ctx context.Context, svc entity.Service) (*entity.Service, error) {
	svc.ID = ""
	return s.services.create(ctx, svc)
}

func (s *Store) UpdateService(ctx context.Context, id string, patch entity.ServicePatch) (*entity.Service, error) {
	return s.services.update(ctx, id, patch.Apply)
}

func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	return s.services.remove(ctx, id)
}

func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orders.list(ctx)
}

func (s *Store) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return s.orders.get(ctx, id)
}

// CreateOrder stores a new order numbered from the local invoice counter.
// The counter moves exactly once per stored order.
func (s *Store) CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error) {
	db, err := s.conn(ctx, "create "+collectionOrders)
	if err != nil {
		return nil, err
	}

	var order entity.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		n, err := s.increment(tx, invoiceCounter)
		if err != nil {
			return err
		}
		order = in.WithInvoice(utils.LocalInvoiceNo(n, s.now()))
		return s.orders.insert(tx, &order)
	})
	if err != nil {
		return nil, s.writeErr("create "+collectionOrders, err)
	}
	return &order, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	return s.orders.update(ctx, id, patch.Apply)
}

func (s *Store) DeleteOrder(ctx context.Context, id string) (bool, error) {
	return s.orders.remove(ctx, id)
}

func (s *Store) ListIncomes(ctx context.Context) ([]entity.Income, error) {
	return s.incomes.list(ctx)
}

func (s *Store) GetIncome(ctx context.Context, id string) (*entity.Income, error) {
	return s.incomes.get(ctx, id)
}

func (s *Store) CreateIncome(ctx context.Context, income entity.Income) (*entity.Income, error) {
	income.ID = ""
	return s.incomes.create(ctx, income)
}

func (s *Store) UpdateIncome(ctx context.Context, id string, patch entity.IncomePatch) (*entity.Income, error) {
	return s.incomes.update(ctx, id, patch.Apply)
}

func (s *Store) DeleteIncome(ctx context.Context, id string) (bool, error) {
	return s.incomes.remove(ctx, id)
}

func (s *Store) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return s.expenses.list(ctx)
}

func (s *Store) GetExpense(ctx context.Context, id string) (*entity.Expense, error) {
	return s.expenses.get(ctx, id)
}

func (s *Store) CreateExpense(ctx context.Context, expense entity.Expense) (*entity.Expense, error) {
	expense.ID = ""
	return s.expenses.create(ctx, expense)
}

func (s *Store) UpdateExpense(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error) {
	return s.expenses.update(ctx, id, patch.Apply)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) (bool, error) {
	return s.expenses.remove(ctx, id)
}

// GetProfile returns the business profile, seeding the default one when none
// has been stored yet
func (s *Store) GetProfile(ctx context.Context) (*entity.BusinessProfile, error) {
	profile, err := s.profiles.first(ctx)
	if err != nil || profile != nil {
		return profile, err
	}

	def := entity.DefaultProfile()
	if _, err := s.SaveProfile(ctx, def); err != nil {
		return nil, err
	}
	return &def, nil
}

// SaveProfile replaces the stored profile
func (s *Store) SaveProfile(ctx context.Context, profile entity.BusinessProfile) (*entity.BusinessProfile, error) {
	db, err := s.conn(ctx, "save "+collectionProfile)
	if err != nil {
		return nil, err
	}
	if profile.ID == "" {
		profile.ID = entity.DefaultProfile().ID
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collectionProfile).Delete(&record{}).Error; err != nil {
			return err
		}
		return s.profiles.insert(tx, &profile)
	})
	if err != nil {
		return nil, s.writeErr("save "+collectionProfile, err)
	}
	return &profile, nil
}

func (s *Store) ListPrintedInvoices(ctx context.Context) ([]entity.PrintedInvoice, error) {
	return s.printedInvoices.list(ctx)
}

func (s *Store) CreatePrintedInvoice(ctx context.Context, invoice entity.PrintedInvoice) (*entity.PrintedInvoice, error) {
	invoice.ID = ""
	return s.printedInvoices.create(ctx, invoice)
}
