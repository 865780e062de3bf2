package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles the ticket printer and the print audit trail.
type PrinterHandler struct {
	printerService *service.PrinterService
	orderService   *service.OrderService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService, orderService *service.OrderService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService, orderService: orderService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus(c.Request.Context()))
}

// ListPrinted returns the printed tickets, filtered by ?order_id
func (h *PrinterHandler) ListPrinted(c *gin.Context) {
	var req struct {
		OrderID string `form:"order_id"`
		Page    int    `form:"page"`
		PerPage int    `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.orderService.PrintedInvoices(c.Request.Context(), req.OrderID, pageParams(req.Page, req.PerPage))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Printed invoices retrieved successfully", result)
}
