package store

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
)

func (s *Store) ListIncomes(ctx context.Context) ([]entity.Income, error) {
	incomes, ok, err := tryRemote(s, "list incomes", func(b domainRepo.Backend) ([]entity.Income, error) {
		return b.Incomes().List(ctx)
	})
	if ok {
		return incomes, err
	}
	return readLocal(s.local.ListIncomes(ctx))
}

func (s *Store) GetIncome(ctx context.Context, id string) (*entity.Income, error) {
	income, ok, err := tryRemote(s, "get income", func(b domainRepo.Backend) (*entity.Income, error) {
		return b.Incomes().GetByID(ctx, id)
	})
	if ok {
		return income, err
	}
	return readLocal(s.local.GetIncome(ctx, id))
}

func (s *Store) CreateIncome(ctx context.Context, income entity.Income) (*entity.Income, error) {
	created, ok, err := tryRemote(s, "create income", func(b domainRepo.Backend) (*entity.Income, error) {
		created, err := b.Incomes().Create(ctx, &income)
		if err != nil {
			return nil, err
		}
		return created, requireID(b.Name(), "create income", created.ID)
	})
	if ok {
		return created, err
	}
	return s.local.CreateIncome(ctx, income)
}

func (s *Store) UpdateIncome(ctx context.Context, id string, patch entity.IncomePatch) (*entity.Income, error) {
	updated, ok, err := tryRemote(s, "update income", func(b domainRepo.Backend) (*entity.Income, error) {
		return b.Incomes().Update(ctx, id, patch)
	})
	if ok {
		return updated, err
	}
	return s.local.UpdateIncome(ctx, id, patch)
}

func (s *Store) DeleteIncome(ctx context.Context, id string) (bool, error) {
	deleted, ok, err := tryRemote(s, "delete income", func(b domainRepo.Backend) (bool, error) {
		return true, b.Incomes().Delete(ctx, id)
	})
	if ok {
		return deleted, err
	}
	return s.local.DeleteIncome(ctx, id)
}

func (s *Store) IncomesOn(ctx context.Context, date string) ([]entity.Income, error) {
	incomes, err := s.ListIncomes(ctx)
	if err != nil {
		return nil, err
	}
	return filter(incomes, func(i *entity.Income) bool { return onDate(i.Date, date) }), nil
}

func (s *Store) IncomesBetween(ctx context.Context, from, to string) ([]entity.Income, error) {
	incomes, err := s.ListIncomes(ctx)
	if err != nil {
		return nil, err
	}
	return filter(incomes, func(i *entity.Income) bool { return between(i.Date, from, to) }), nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	expenses, ok, err := tryRemote(s, "list expenses", func(b domainRepo.Backend) ([]entity.Expense, error) {
		return b.Expenses().List(ctx)
	})
	if ok {
		return expenses, err
	}
	return readLocal(s.local.ListExpenses(ctx))
}

func (s *Store) GetExpense(ctx context.Context, id string) (*entity.Expense, error) {
	expense, ok, err := tryRemote(s, "get expense", func(b domainRepo.Backend) (*entity.Expense, error) {
		return b.Expenses().GetByID(ctx, id)
	})
	if ok {
		return expense, err
	}
	return readLocal(s.local.GetExpense(ctx, id))
}

func (s *Store) CreateExpense(ctx context.Context, expense entity.Expense) (*entity.Expense, error) {
	created, ok, err := tryRemote(s, "create expense", func(b domainRepo.Backend) (*entity.Expense, error) {
		created, err := b.Expenses().Create(ctx, &expense)
		if err != nil {
			return nil, err
		}
		return created, requireID(b.Name(), "create expense", created.ID)
	})
	if ok {
		return created, err
	}
	return s.local.CreateExpense(ctx, expense)
}

func (s *Store) UpdateExpense(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error) {
	updated, ok, err := tryRemote(s, "update expense", func(b domainRepo.Backend) (*entity.Expense, error) {
		return b.Expenses().Update(ctx, id, patch)
	})
	if ok {
		return updated, err
	}
	return s.local.UpdateExpense(ctx, id, patch)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) (bool, error) {
	deleted, ok, err := tryRemote(s, "delete expense", func(b domainRepo.Backend) (bool, error) {
		return true, b.Expenses().Delete(ctx, id)
	})
	if ok {
		return deleted, err
	}
	return s.local.DeleteExpense(ctx, id)
}

func (s *Store) ExpensesOn(ctx context.Context, date string) ([]entity.Expense, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return filter(expenses, func(e *entity.Expense) bool { return onDate(e.Date, date) }), nil
}

func (s *Store) ExpensesBetween(ctx context.Context, from, to string) ([]entity.Expense, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return filter(expenses, func(e *entity.Expense) bool { return between(e.Date, from, to) }), nil
}
