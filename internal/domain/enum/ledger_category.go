package enum

// IncomeCategory classifies an income entry
type IncomeCategory string

const (
	IncomeFromOrder IncomeCategory = "pedido"
	IncomeOther     IncomeCategory = "otro"
)

func (c IncomeCategory) IsValid() bool {
	return c == IncomeFromOrder || c == IncomeOther
}

// ExpenseCategory classifies an expense entry
type ExpenseCategory string

const (
	ExpenseSupplies    ExpenseCategory = "suministros"
	ExpenseUtilities   ExpenseCategory = "servicios"
	ExpenseMaintenance ExpenseCategory = "mantenimiento"
	ExpenseOther       ExpenseCategory = "otros"
)

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseSupplies, ExpenseUtilities, ExpenseMaintenance, ExpenseOther:
		return true
	}
	return false
}
