package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/request"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles laundry service catalog requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing the catalog
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context(), activeOnly(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Services retrieved successfully", services)
}

func (h *CatalogHandler) Get(c *gin.Context) {
	svc, err := h.catalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service retrieved successfully", svc)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), req.Service())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Service created successfully", svc)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service updated successfully", svc)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service deleted successfully", nil)
}
