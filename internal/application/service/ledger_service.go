package service

import (
	"context"
	"strings"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/sangkips/laundrypro-api/pkg/pagination"
)

// LedgerService handles incomes and expenses
type LedgerService struct {
	store    *store.Store
	calendar Calendar
}

// NewLedgerService creates a new ledger service
func NewLedgerService(st *store.Store, calendar Calendar) *LedgerService {
	return &LedgerService{store: st, calendar: calendar}
}

// LedgerFilterParams narrows ledger listings to one day or a date range.
// Date wins over From and To.
type LedgerFilterParams struct {
	Date       string
	From       string
	To         string
	Pagination *pagination.PaginationParams
}

func (p *LedgerFilterParams) bounds() (from, to string, ok bool) {
	if p.From == "" && p.To == "" {
		return "", "", false
	}
	to = p.To
	if to == "" {
		to = "9999-12-31"
	}
	return p.From, to, true
}

func (p *LedgerFilterParams) check() error {
	fields := [][2]string{{"date", p.Date}, {"from", p.From}, {"to", p.To}}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := checkDate(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

func (p *LedgerFilterParams) page() *pagination.PaginationParams {
	if p.Pagination == nil {
		return pagination.DefaultPagination()
	}
	return p.Pagination
}

func (s *LedgerService) ListIncomes(ctx context.Context, params *LedgerFilterParams) (*pagination.PaginatedResult[entity.Income], error) {
	var (
		incomes []entity.Income
		err     error
	)
	if err := params.check(); err != nil {
		return nil, err
	}
	if params.Date != "" {
		incomes, err = s.store.IncomesOn(ctx, params.Date)
	} else if from, to, ok := params.bounds(); ok {
		incomes, err = s.store.IncomesBetween(ctx, from, to)
	} else {
		incomes, err = s.store.ListIncomes(ctx)
	}
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(incomes, params.page()), nil
}

func (s *LedgerService) GetIncome(ctx context.Context, id string) (*entity.Income, error) {
	income, err := s.store.GetIncome(ctx, id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, apperror.NewNotFoundError("Income")
	}
	return income, nil
}

// CreateIncome records an income. A missing date means today.
func (s *LedgerService) CreateIncome(ctx context.Context, income entity.Income) (*entity.Income, error) {
	income.Concept = strings.TrimSpace(income.Concept)
	if income.Date == "" {
		income.Date = s.calendar.Today()
	}
	if err := validateEntry(income.Concept, income.Amount, income.Date); err != nil {
		return nil, err
	}
	if !income.Category.IsValid() {
		return nil, fieldError("category", "unknown income category")
	}
	return s.store.CreateIncome(ctx, income)
}

func (s *LedgerService) UpdateIncome(ctx context.Context, id string, patch entity.IncomePatch) (*entity.Income, error) {
	if err := validatePatch(patch.Concept, patch.Amount, patch.Date); err != nil {
		return nil, err
	}
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, fieldError("category", "unknown income category")
	}
	income, err := s.store.UpdateIncome(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, apperror.NewNotFoundError("Income")
	}
	return income, nil
}

func (s *LedgerService) DeleteIncome(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteIncome(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Income")
	}
	return nil
}

func (s *LedgerService) ListExpenses(ctx context.Context, params *LedgerFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	var (
		expenses []entity.Expense
		err      error
	)
	if err := params.check(); err != nil {
		return nil, err
	}
	if params.Date != "" {
		expenses, err = s.store.ExpensesOn(ctx, params.Date)
	} else if from, to, ok := params.bounds(); ok {
		expenses, err = s.store.ExpensesBetween(ctx, from, to)
	} else {
		expenses, err = s.store.ListExpenses(ctx)
	}
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(expenses, params.page()), nil
}

func (s *LedgerService) GetExpense(ctx context.Context, id string) (*entity.Expense, error) {
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// CreateExpense records an expense. A missing date means today.
func (s *LedgerService) CreateExpense(ctx context.Context, expense entity.Expense) (*entity.Expense, error) {
	expense.Concept = strings.TrimSpace(expense.Concept)
	if expense.Date == "" {
		expense.Date = s.calendar.Today()
	}
	if err := validateEntry(expense.Concept, expense.Amount, expense.Date); err != nil {
		return nil, err
	}
	if !expense.Category.IsValid() {
		return nil, fieldError("category", "unknown expense category")
	}
	return s.store.CreateExpense(ctx, expense)
}

func (s *LedgerService) UpdateExpense(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error) {
	if err := validatePatch(patch.Concept, patch.Amount, patch.Date); err != nil {
		return nil, err
	}
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, fieldError("category", "unknown expense category")
	}
	expense, err := s.store.UpdateExpense(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Expense")
	}
	return nil
}

func validateEntry(concept string, amount entity.Money, date string) error {
	var errs []apperror.FieldError
	if concept == "" {
		errs = append(errs, apperror.FieldError{Field: "concept", Message: "is required"})
	}
	if amount <= 0 {
		errs = append(errs, apperror.FieldError{Field: "amount", Message: "must be greater than 0"})
	}
	if err := checkDate("date", date); err != nil {
		errs = append(errs, apperror.FieldError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}
	return nil
}

func validatePatch(concept *string, amount *entity.Money, date *string) error {
	if concept != nil && strings.TrimSpace(*concept) == "" {
		return fieldError("concept", "cannot be empty")
	}
	if amount != nil && *amount <= 0 {
		return fieldError("amount", "must be greater than 0")
	}
	if date != nil {
		return checkDate("date", *date)
	}
	return nil
}
