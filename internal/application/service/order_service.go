package service

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/sangkips/laundrypro-api/pkg/pagination"
)

// OrderService handles order intake and the order workflow
type OrderService struct {
	store    *store.Store
	calendar Calendar
}

// NewOrderService creates a new order service
func NewOrderService(st *store.Store, calendar Calendar) *OrderService {
	return &OrderService{store: st, calendar: calendar}
}

// OrderItemInput is one requested service line
type OrderItemInput struct {
	ServiceID string
	Quantity  float64
}

// IntakeInput represents a new order at the counter
type IntakeInput struct {
	CustomerName  string
	Phone         string
	Items         []OrderItemInput
	Discount      entity.Money
	PaymentMethod enum.PaymentMethod
	Notes         string
	DeliveryDate  string
}

// OrderFilterParams narrows order listings
type OrderFilterParams struct {
	Status     enum.OrderStatus
	From       string
	To         string
	Search     string
	Pagination *pagination.PaginationParams
}

// Intake prices the items from the catalog, creates the order and records
// its income. When the income cannot be stored the order is deleted again.
func (s *OrderService) Intake(ctx context.Context, input *IntakeInput) (*entity.Order, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, fieldError("customer_name", "is required")
	}
	if len(input.Items) == 0 {
		return nil, fieldError("items", "at least one service is required")
	}
	if input.DeliveryDate != "" {
		if err := checkDate("delivery_date", input.DeliveryDate); err != nil {
			return nil, err
		}
	}
	method := input.PaymentMethod
	if method == "" {
		method = enum.PaymentCash
	}
	if !method.IsValid() {
		return nil, fieldError("payment_method", "unknown payment method")
	}

	items, err := s.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	subtotal := entity.SumItems(items)
	if input.Discount < 0 || input.Discount > subtotal {
		return nil, fieldError("discount", "must be between 0 and the subtotal")
	}

	today := s.calendar.Today()
	order, backend, err := s.store.PlaceOrder(ctx, entity.NewOrder{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         input.Phone,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      input.Discount,
		Total:         subtotal - input.Discount,
		Status:        enum.OrderStatusReceived,
		PaymentMethod: method,
		Notes:         input.Notes,
		ReceivedOn:    today,
		DeliveryDate:  input.DeliveryDate,
	})
	if err != nil {
		return nil, err
	}

	_, err = s.store.CreateIncome(ctx, entity.Income{
		Concept:  fmt.Sprintf("Pedido %s - %s", order.InvoiceNo, order.CustomerName),
		Amount:   order.Total,
		Category: enum.IncomeFromOrder,
		OrderID:  order.ID,
		Date:     today,
	})
	if err != nil {
		if delErr := s.store.DiscardOrder(ctx, backend, order.ID); delErr != nil {
			log.Printf("[orders] could not remove order %s from %s after failed income: %v", order.InvoiceNo, backend, delErr)
			return nil, fmt.Errorf("failed to record income for order %s: %w; order is still stored on %s: %w", order.InvoiceNo, err, backend, delErr)
		}
		return nil, fmt.Errorf("failed to record income for order %s: %w", order.InvoiceNo, err)
	}

	return order, nil
}

func (s *OrderService) priceItems(ctx context.Context, inputs []OrderItemInput) ([]entity.LineItem, error) {
	catalog, err := s.store.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Service, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	items := make([]entity.LineItem, 0, len(inputs))
	for _, in := range inputs {
		svc, ok := byID[in.ServiceID]
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Service %s", in.ServiceID))
		}
		if !svc.Active {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Service %s is not active", svc.Name))
		}
		if in.Quantity <= 0 {
			return nil, fieldError("items.quantity", "must be greater than 0")
		}
		items = append(items, entity.LineItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Quantity:    in.Quantity,
			UnitPrice:   svc.Price,
			Subtotal:    svc.Price.Mul(in.Quantity),
		})
	}
	return items, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering, newest first
func (s *OrderService) ListOrders(ctx context.Context, params *OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	var (
		orders []entity.Order
		err    error
	)
	switch {
	case params.From != "" || params.To != "":
		from, to := params.From, params.To
		if to == "" {
			to = "9999-12-31"
		}
		orders, err = s.store.OrdersBetween(ctx, from, to)
	default:
		orders, err = s.store.ListOrders(ctx)
	}
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := orders[:0]
	for _, o := range orders {
		if params.Status != "" && o.Status != params.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.InvoiceNo), search) &&
			!strings.Contains(o.Phone, search) {
			continue
		}
		filtered = append(filtered, o)
	}

	slices.SortStableFunc(filtered, newestFirst)

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	return pagination.Paginate(filtered, params.Pagination), nil
}

// newestFirst orders by creation time, then by invoice number for orders
// created within the same instant
func newestFirst(a, b entity.Order) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.InvoiceNo, a.InvoiceNo)
}

// ReadyOrders returns the orders waiting for pickup
func (s *OrderService) ReadyOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	ready := make([]entity.Order, 0)
	for _, o := range orders {
		if o.Status == enum.OrderStatusReady {
			ready = append(ready, o)
		}
	}
	return ready, nil
}

// UpdateOrder applies a partial update. Totals are stored as given.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fieldError("status", "unknown status")
	}
	if patch.PaymentMethod != nil && !patch.PaymentMethod.IsValid() {
		return nil, fieldError("payment_method", "unknown payment method")
	}
	if patch.DeliveryDate != nil && *patch.DeliveryDate != "" {
		if err := checkDate("delivery_date", *patch.DeliveryDate); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		patch = s.stampDelivery(patch)
	}
	return s.update(ctx, id, patch)
}

// stampDelivery dates a move to delivered with today unless a delivery date is given
func (s *OrderService) stampDelivery(patch entity.OrderPatch) entity.OrderPatch {
	if *patch.Status == enum.OrderStatusDelivered && patch.DeliveryDate == nil {
		today := s.calendar.Today()
		patch.DeliveryDate = &today
	}
	return patch
}

func (s *OrderService) update(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	order, err := s.store.UpdateOrder(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// DeleteOrder removes an order. Its income entry is kept.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError("Order")
	}
	return nil
}

// ChangeStatus moves an order to status. Delivering stamps today's delivery date.
func (s *OrderService) ChangeStatus(ctx context.Context, id string, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, fieldError("status", "unknown status")
	}
	return s.update(ctx, id, s.stampDelivery(entity.OrderPatch{Status: &status}))
}

// Advance moves an order one step forward in the workflow
func (s *OrderService) Advance(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := order.Status.Next()
	if !ok {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Order %s cannot advance from %q", order.InvoiceNo, order.Status))
	}
	return s.ChangeStatus(ctx, id, next)
}

// MarkDelivered sets the order to delivered with today's delivery date
func (s *OrderService) MarkDelivered(ctx context.Context, id string) (*entity.Order, error) {
	status := enum.OrderStatusDelivered
	return s.update(ctx, id, s.stampDelivery(entity.OrderPatch{Status: &status}))
}

// AssignDelivery sets the promised delivery date
func (s *OrderService) AssignDelivery(ctx context.Context, id, date string) (*entity.Order, error) {
	if err := checkDate("delivery_date", date); err != nil {
		return nil, err
	}
	return s.update(ctx, id, entity.OrderPatch{DeliveryDate: &date})
}

// RecordPrint stores the print audit entry for an order
func (s *OrderService) RecordPrint(ctx context.Context, order *entity.Order) (*entity.PrintedInvoice, error) {
	return s.store.RecordPrint(ctx, entity.NewPrintedInvoice(order, s.calendar.Now()))
}

// PrintedInvoices lists the print audit trail, optionally for one order
func (s *OrderService) PrintedInvoices(ctx context.Context, orderID string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PrintedInvoice], error) {
	invoices, err := s.store.ListPrintedInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if orderID != "" {
		filtered := invoices[:0]
		for _, inv := range invoices {
			if inv.OrderID == orderID {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}
	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Paginate(invoices, params), nil
}
