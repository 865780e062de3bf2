package entity

// Summary aggregates the ledger and order activity of a date or date range
type Summary struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Income        Money  `json:"income"`
	Expense       Money  `json:"expense"`
	Balance       Money  `json:"balance"`
	OrderCount    int    `json:"order_count"`
	PendingOrders int    `json:"pending_orders"`
}

// SeriesPoint is one day of the monthly chart. Cumulative is the running
// balance from the first day of the month.
type SeriesPoint struct {
	Date       string `json:"date"`
	Income     Money  `json:"income"`
	Expense    Money  `json:"expense"`
	Balance    Money  `json:"balance"`
	Cumulative Money  `json:"cumulative"`
}
