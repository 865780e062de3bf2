package request

import (
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// OrderItemRequest is one service line of a new order
type OrderItemRequest struct {
	ServiceID string  `json:"service_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents an order taken at the counter
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required,max=255"`
	Phone         string             `json:"phone" binding:"omitempty,max=30"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount      float64            `json:"discount" binding:"min=0"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Notes         string             `json:"notes" binding:"omitempty,max=1000"`
	DeliveryDate  string             `json:"delivery_date"`
}

// UpdateOrderRequest represents a partial order update. Amounts are decimals.
type UpdateOrderRequest struct {
	CustomerName  *string             `json:"customer_name" binding:"omitempty,min=1,max=255"`
	Phone         *string             `json:"phone" binding:"omitempty,max=30"`
	Items         []entity.LineItem   `json:"items"`
	Subtotal      *entity.Money       `json:"subtotal"`
	Discount      *entity.Money       `json:"discount"`
	Total         *entity.Money       `json:"total"`
	Status        *enum.OrderStatus   `json:"status"`
	PaymentMethod *enum.PaymentMethod `json:"payment_method"`
	Notes         *string             `json:"notes"`
	DeliveryDate  *string             `json:"delivery_date"`
}

// Patch converts the request into an order patch
func (r *UpdateOrderRequest) Patch() entity.OrderPatch {
	return entity.OrderPatch{
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		Items:         r.Items,
		Subtotal:      r.Subtotal,
		Discount:      r.Discount,
		Total:         r.Total,
		Status:        r.Status,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		DeliveryDate:  r.DeliveryDate,
	}
}

type UpdateOrderStatusRequest struct {
	Status enum.OrderStatus `json:"status" binding:"required"`
}

type DeliveryDateRequest struct {
	DeliveryDate string `json:"delivery_date" binding:"required"`
}

// OrderFilterRequest represents order list query parameters
type OrderFilterRequest struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
