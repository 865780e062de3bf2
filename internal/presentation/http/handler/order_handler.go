package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/request"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{orderService: orderService, printerService: printerService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), &service.OrderFilterParams{
		Status:     enum.OrderStatus(req.Status),
		From:       req.From,
		To:         req.To,
		Search:     req.Search,
		Pagination: pageParams(req.Page, req.PerPage),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Create handles order intake
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	items := make([]service.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderItemInput{ServiceID: item.ServiceID, Quantity: item.Quantity}
	}

	order, err := h.orderService.Intake(c.Request.Context(), &service.IntakeInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Items:         items,
		Discount:      entity.NewMoney(req.Discount),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		DeliveryDate:  req.DeliveryDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Update handles partial order updates
func (h *OrderHandler) Update(c *gin.Context) {
	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order updated successfully", order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order deleted successfully", nil)
}

// UpdateStatus handles moving an order to a given status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	order, err := h.orderService.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated successfully", order)
}

// Advance handles moving an order to its next status
func (h *OrderHandler) Advance(c *gin.Context) {
	order, err := h.orderService.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order advanced successfully", order)
}

// Deliver handles handing an order back to the customer
func (h *OrderHandler) Deliver(c *gin.Context) {
	order, err := h.orderService.MarkDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order delivered successfully", order)
}

func (h *OrderHandler) SetDeliveryDate(c *gin.Context) {
	var req request.DeliveryDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	order, err := h.orderService.AssignDelivery(c.Request.Context(), c.Param("id"), req.DeliveryDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Delivery date updated successfully", order)
}

// Print handles printing the order ticket
func (h *OrderHandler) Print(c *gin.Context) {
	result, err := h.printerService.PrintOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Ticket printed successfully", result)
}
