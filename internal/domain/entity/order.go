package entity

import (
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// DateLayout is the calendar date format used for intake, delivery and ledger dates
const DateLayout = "2006-01-02"

// Order is a laundry ticket. Totals are stored as given and never recomputed
// from the line items.
type Order struct {
	ID            string             `json:"id"`
	InvoiceNo     string             `json:"invoice_no"`
	CustomerName  string             `json:"customer_name"`
	Phone         string             `json:"phone,omitempty"`
	Items         []LineItem         `json:"items"`
	Subtotal      Money              `json:"subtotal"`
	Discount      Money              `json:"discount"`
	Total         Money              `json:"total"`
	Status        enum.OrderStatus   `json:"status"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	ReceivedOn    string             `json:"received_on"`
	DeliveryDate  string             `json:"delivery_date,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// LineItem is one service line of an order. ServiceName and UnitPrice are
// copies taken at intake time.
type LineItem struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   Money   `json:"unit_price"`
	Subtotal    Money   `json:"subtotal"`
}

// NewOrder is the caller-supplied part of an order. The store assigns
// the id, invoice number and creation time.
type NewOrder struct {
	CustomerName  string
	Phone         string
	Items         []LineItem
	Subtotal      Money
	Discount      Money
	Total         Money
	Status        enum.OrderStatus
	PaymentMethod enum.PaymentMethod
	Notes         string
	ReceivedOn    string
	DeliveryDate  string
}

// WithInvoice builds the order that will be persisted under invoiceNo
func (n NewOrder) WithInvoice(invoiceNo string) Order {
	items := make([]LineItem, len(n.Items))
	copy(items, n.Items)
	return Order{
		InvoiceNo:     invoiceNo,
		CustomerName:  n.CustomerName,
		Phone:         n.Phone,
		Items:         items,
		Subtotal:      n.Subtotal,
		Discount:      n.Discount,
		Total:         n.Total,
		Status:        n.Status,
		PaymentMethod: n.PaymentMethod,
		Notes:         n.Notes,
		ReceivedOn:    n.ReceivedOn,
		DeliveryDate:  n.DeliveryDate,
	}
}

// OrderPatch holds the fields to change on an order
type OrderPatch struct {
	CustomerName  *string             `json:"customer_name,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	Items         []LineItem          `json:"items,omitempty"`
	Subtotal      *Money              `json:"subtotal,omitempty"`
	Discount      *Money              `json:"discount,omitempty"`
	Total         *Money              `json:"total,omitempty"`
	Status        *enum.OrderStatus   `json:"status,omitempty"`
	PaymentMethod *enum.PaymentMethod `json:"payment_method,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	ReceivedOn    *string             `json:"received_on,omitempty"`
	DeliveryDate  *string             `json:"delivery_date,omitempty"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.Phone != nil {
		o.Phone = *p.Phone
	}
	if p.Items != nil {
		o.Items = p.Items
	}
	if p.Subtotal != nil {
		o.Subtotal = *p.Subtotal
	}
	if p.Discount != nil {
		o.Discount = *p.Discount
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		o.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.ReceivedOn != nil {
		o.ReceivedOn = *p.ReceivedOn
	}
	if p.DeliveryDate != nil {
		o.DeliveryDate = *p.DeliveryDate
	}
}

// SumItems returns the sum of the line subtotals
func SumItems(items []LineItem) Money {
	var total Money
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}
