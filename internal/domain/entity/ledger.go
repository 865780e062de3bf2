package entity

import (
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// Income is money received. Order-derived incomes carry the originating order id.
type Income struct {
	ID        string              `json:"id"`
	Concept   string              `json:"concept"`
	Amount    Money               `json:"amount"`
	Category  enum.IncomeCategory `json:"category"`
	OrderID   string              `json:"order_id,omitempty"`
	Date      string              `json:"date"`
	Notes     string              `json:"notes,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type IncomePatch struct {
	Concept  *string              `json:"concept,omitempty"`
	Amount   *Money               `json:"amount,omitempty"`
	Category *enum.IncomeCategory `json:"category,omitempty"`
	OrderID  *string              `json:"order_id,omitempty"`
	Date     *string              `json:"date,omitempty"`
	Notes    *string              `json:"notes,omitempty"`
}

func (p IncomePatch) Apply(i *Income) {
	if p.Concept != nil {
		i.Concept = *p.Concept
	}
	if p.Amount != nil {
		i.Amount = *p.Amount
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
	if p.OrderID != nil {
		i.OrderID = *p.OrderID
	}
	if p.Date != nil {
		i.Date = *p.Date
	}
	if p.Notes != nil {
		i.Notes = *p.Notes
	}
}

// Expense is money spent running the business
type Expense struct {
	ID        string               `json:"id"`
	Concept   string               `json:"concept"`
	Amount    Money                `json:"amount"`
	Category  enum.ExpenseCategory `json:"category"`
	Date      string               `json:"date"`
	Notes     string               `json:"notes,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

type ExpensePatch struct {
	Concept  *string               `json:"concept,omitempty"`
	Amount   *Money                `json:"amount,omitempty"`
	Category *enum.ExpenseCategory `json:"category,omitempty"`
	Date     *string               `json:"date,omitempty"`
	Notes    *string               `json:"notes,omitempty"`
}

func (p ExpensePatch) Apply(e *Expense) {
	if p.Concept != nil {
		e.Concept = *p.Concept
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
}
