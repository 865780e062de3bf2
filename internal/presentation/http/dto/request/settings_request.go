package request

import "github.com/sangkips/laundrypro-api/internal/domain/entity"

// UpdateSettingsRequest represents a business profile update
type UpdateSettingsRequest struct {
	BusinessName  *string `json:"business_name" binding:"omitempty,min=1,max=255"`
	TaxID         *string `json:"tax_id" binding:"omitempty,max=20"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Currency      *string `json:"currency" binding:"omitempty,max=5"`
	InvoiceFooter *string `json:"invoice_footer" binding:"omitempty,max=255"`
}

func (r *UpdateSettingsRequest) Patch() entity.ProfilePatch {
	return entity.ProfilePatch{
		BusinessName:  r.BusinessName,
		TaxID:         r.TaxID,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		Currency:      r.Currency,
		InvoiceFooter: r.InvoiceFooter,
	}
}

// ReportRequest represents report query parameters
type ReportRequest struct {
	Date  string `form:"date"`
	From  string `form:"from"`
	To    string `form:"to"`
	Year  int    `form:"year"`
	Month int    `form:"month"`
}
