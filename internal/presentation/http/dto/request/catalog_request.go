package request

import (
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// CreateServiceRequest represents a catalog service creation request
type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=255"`
	Description string           `json:"description" binding:"omitempty,max=1000"`
	Price       float64          `json:"price" binding:"min=0"`
	Unit        enum.PricingUnit `json:"unit" binding:"required"`
	Active      *bool            `json:"active"`
}

// Service builds the catalog entry. Services are active unless stated otherwise.
func (r *CreateServiceRequest) Service() entity.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return entity.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       entity.NewMoney(r.Price),
		Unit:        r.Unit,
		Active:      active,
	}
}

// UpdateServiceRequest represents a catalog service update request
type UpdateServiceRequest struct {
	Name        *string           `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string           `json:"description" binding:"omitempty,max=1000"`
	Price       *entity.Money     `json:"price"`
	Unit        *enum.PricingUnit `json:"unit"`
	Active      *bool             `json:"active"`
}

func (r *UpdateServiceRequest) Patch() entity.ServicePatch {
	return entity.ServicePatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Active:      r.Active,
	}
}
