package request

import (
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// CreateIncomeRequest represents a manual income entry
type CreateIncomeRequest struct {
	Concept  string              `json:"concept" binding:"required,max=255"`
	Amount   float64             `json:"amount" binding:"required,gt=0"`
	Category enum.IncomeCategory `json:"category"`
	OrderID  string              `json:"order_id"`
	Date     string              `json:"date"`
	Notes    string              `json:"notes" binding:"omitempty,max=1000"`
}

func (r *CreateIncomeRequest) Income() entity.Income {
	category := r.Category
	if category == "" {
		category = enum.IncomeOther
	}
	return entity.Income{
		Concept:  r.Concept,
		Amount:   entity.NewMoney(r.Amount),
		Category: category,
		OrderID:  r.OrderID,
		Date:     r.Date,
		Notes:    r.Notes,
	}
}

type UpdateIncomeRequest struct {
	Concept  *string              `json:"concept" binding:"omitempty,max=255"`
	Amount   *entity.Money        `json:"amount"`
	Category *enum.IncomeCategory `json:"category"`
	Date     *string              `json:"date"`
	Notes    *string              `json:"notes"`
}

func (r *UpdateIncomeRequest) Patch() entity.IncomePatch {
	return entity.IncomePatch{
		Concept:  r.Concept,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     r.Date,
		Notes:    r.Notes,
	}
}

// CreateExpenseRequest represents an expense entry
type CreateExpenseRequest struct {
	Concept  string               `json:"concept" binding:"required,max=255"`
	Amount   float64              `json:"amount" binding:"required,gt=0"`
	Category enum.ExpenseCategory `json:"category" binding:"required"`
	Date     string               `json:"date"`
	Notes    string               `json:"notes" binding:"omitempty,max=1000"`
}

func (r *CreateExpenseRequest) Expense() entity.Expense {
	return entity.Expense{
		Concept:  r.Concept,
		Amount:   entity.NewMoney(r.Amount),
		Category: r.Category,
		Date:     r.Date,
		Notes:    r.Notes,
	}
}

type UpdateExpenseRequest struct {
	Concept  *string               `json:"concept" binding:"omitempty,max=255"`
	Amount   *entity.Money         `json:"amount"`
	Category *enum.ExpenseCategory `json:"category"`
	Date     *string               `json:"date"`
	Notes    *string               `json:"notes"`
}

func (r *UpdateExpenseRequest) Patch() entity.ExpensePatch {
	return entity.ExpensePatch{
		Concept:  r.Concept,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     r.Date,
		Notes:    r.Notes,
	}
}

// LedgerFilterRequest represents income and expense list query parameters
type LedgerFilterRequest struct {
	Date    string `form:"date"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
