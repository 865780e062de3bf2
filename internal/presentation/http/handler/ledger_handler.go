package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/request"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/response"
)

// LedgerHandler handles income and expense requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

func ledgerFilter(c *gin.Context) (*service.LedgerFilterParams, bool) {
	var req request.LedgerFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return nil, false
	}
	return &service.LedgerFilterParams{
		Date:       req.Date,
		From:       req.From,
		To:         req.To,
		Pagination: pageParams(req.Page, req.PerPage),
	}, true
}

func (h *LedgerHandler) ListIncomes(c *gin.Context) {
	params, ok := ledgerFilter(c)
	if !ok {
		return
	}
	result, err := h.ledgerService.ListIncomes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Incomes retrieved successfully", result)
}

func (h *LedgerHandler) GetIncome(c *gin.Context) {
	income, err := h.ledgerService.GetIncome(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Income retrieved successfully", income)
}

func (h *LedgerHandler) CreateIncome(c *gin.Context) {
	var req request.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	income, err := h.ledgerService.CreateIncome(c.Request.Context(), req.Income())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Income created successfully", income)
}

func (h *LedgerHandler) UpdateIncome(c *gin.Context) {
	var req request.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	income, err := h.ledgerService.UpdateIncome(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Income updated successfully", income)
}

func (h *LedgerHandler) DeleteIncome(c *gin.Context) {
	if err := h.ledgerService.DeleteIncome(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Income deleted successfully", nil)
}

func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	params, ok := ledgerFilter(c)
	if !ok {
		return
	}
	result, err := h.ledgerService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

func (h *LedgerHandler) GetExpense(c *gin.Context) {
	expense, err := h.ledgerService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense retrieved successfully", expense)
}

func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	expense, err := h.ledgerService.CreateExpense(c.Request.Context(), req.Expense())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense created successfully", expense)
}

func (h *LedgerHandler) UpdateExpense(c *gin.Context) {
	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	expense, err := h.ledgerService.UpdateExpense(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense updated successfully", expense)
}

func (h *LedgerHandler) DeleteExpense(c *gin.Context) {
	if err := h.ledgerService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense deleted successfully", nil)
}
