package supabase

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/remote"
)

type incomeRepository struct {
	d *Driver
}

func (r *incomeRepository) List(ctx context.Context) ([]entity.Income, error) {
	var rows []incomeRow
	err := r.d.db.WithContext(ctx).
		Order("fecha DESC").
		Order("created_at DESC").
		Limit(r.d.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, classify("list ingresos", err)
	}

	incomes := make([]entity.Income, 0, len(rows))
	for i := range rows {
		incomes = append(incomes, rows[i].entity())
	}
	return incomes, nil
}

func (r *incomeRepository) GetByID(ctx context.Context, id string) (*entity.Income, error) {
	var row incomeRow
	if err := r.d.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, classify("get ingreso", err)
	}
	income := row.entity()
	return &income, nil
}

func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) (*entity.Income, error) {
	row := newIncomeRow(income)
	if err := r.d.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, classify("create ingreso", err)
	}
	created := row.entity()
	return &created, nil
}

func (r *incomeRepository) Update(ctx context.Context, id string, patch entity.IncomePatch) (*entity.Income, error) {
	columns := map[string]interface{}{}
	if patch.Concept != nil {
		columns["concepto"] = *patch.Concept
	}
	if patch.Amount != nil {
		columns["monto"] = patch.Amount.Float64()
	}
	if patch.Category != nil {
		columns["categoria"] = string(*patch.Category)
	}
	if patch.OrderID != nil {
		columns["pedido_id"] = *patch.OrderID
	}
	if patch.Date != nil {
		columns["fecha"] = remote.Date(*patch.Date)
	}
	if patch.Notes != nil {
		columns["notas"] = *patch.Notes
	}

	if err := r.d.update(ctx, "update ingreso", &incomeRow{}, id, columns); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *incomeRepository) Delete(ctx context.Context, id string) error {
	return r.d.delete(ctx, "delete ingreso", &incomeRow{}, id)
}

type expenseRepository struct {
	d *Driver
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	var rows []expenseRow
	err := r.d.db.WithContext(ctx).
		Order("fecha DESC").
		Order("created_at DESC").
		Limit(r.d.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, classify("list egresos", err)
	}

	expenses := make([]entity.Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, rows[i].entity())
	}
	return expenses, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var row expenseRow
	if err := r.d.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, classify("get egreso", err)
	}
	expense := row.entity()
	return &expense, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) (*entity.Expense, error) {
	row := newExpenseRow(expense)
	if err := r.d.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, classify("create egreso", err)
	}
	created := row.entity()
	return &created, nil
}

func (r *expenseRepository) Update(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error) {
	columns := map[string]interface{}{}
	if patch.Concept != nil {
		columns["concepto"] = *patch.Concept
	}
	if patch.Amount != nil {
		columns["monto"] = patch.Amount.Float64()
	}
	if patch.Category != nil {
		columns["categoria"] = string(*patch.Category)
	}
	if patch.Date != nil {
		columns["fecha"] = remote.Date(*patch.Date)
	}
	if patch.Notes != nil {
		columns["notas"] = *patch.Notes
	}

	if err := r.d.update(ctx, "update egreso", &expenseRow{}, id, columns); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return r.d.delete(ctx, "delete egreso", &expenseRow{}, id)
}
