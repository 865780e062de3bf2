package entity

import "time"

// PrintedInvoice records that a ticket was printed. Fields are copies of the
// order at print time.
type PrintedInvoice struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	InvoiceNo    string    `json:"invoice_no"`
	CustomerName string    `json:"customer_name"`
	Total        Money     `json:"total"`
	PrintedAt    time.Time `json:"printed_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPrintedInvoice builds the audit record for printing o at t
func NewPrintedInvoice(o *Order, t time.Time) PrintedInvoice {
	return PrintedInvoice{
		OrderID:      o.ID,
		InvoiceNo:    o.InvoiceNo,
		CustomerName: o.CustomerName,
		Total:        o.Total,
		PrintedAt:    t,
	}
}
