package entity

import (
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// Service is an entry of the laundry catalog
type Service struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       Money            `json:"price"`
	Unit        enum.PricingUnit `json:"unit"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ServicePatch holds the fields to change on a service. Nil fields are left untouched.
type ServicePatch struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Price       *Money            `json:"price,omitempty"`
	Unit        *enum.PricingUnit `json:"unit,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

// Apply copies the set fields of p onto s
func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Unit != nil {
		s.Unit = *p.Unit
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}

// DefaultServices is the catalog seeded into an empty store
func DefaultServices() []Service {
	return []Service{
		{ID: "1", Name: "Lavado por Kilo", Description: "Lavado completo de ropa por kilogramo", Price: 800, Unit: enum.UnitKilogram, Active: true},
		{ID: "2", Name: "Lavado de Edredón", Description: "Lavado de edredón o cobertor", Price: 2500, Unit: enum.UnitItem, Active: true},
		{ID: "3", Name: "Lavado de Frazada", Description: "Lavado de frazada", Price: 1800, Unit: enum.UnitItem, Active: true},
		{ID: "4", Name: "Planchado", Description: "Servicio de planchado por prenda", Price: 300, Unit: enum.UnitGarment, Active: true},
		{ID: "5", Name: "Lavado en Seco", Description: "Lavado en seco para prendas delicadas", Price: 1500, Unit: enum.UnitGarment, Active: true},
		{ID: "6", Name: "Lavado de Zapatillas", Description: "Limpieza de zapatillas", Price: 1200, Unit: enum.UnitItem, Active: true},
	}
}
