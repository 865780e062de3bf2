package entity

// BusinessProfile is the singleton configuration shown on tickets
type BusinessProfile struct {
	ID            string `json:"id"`
	BusinessName  string `json:"business_name"`
	TaxID         string `json:"tax_id,omitempty"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Currency      string `json:"currency"`
	InvoiceFooter string `json:"invoice_footer,omitempty"`
}

type ProfilePatch struct {
	BusinessName  *string `json:"business_name,omitempty"`
	TaxID         *string `json:"tax_id,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	InvoiceFooter *string `json:"invoice_footer,omitempty"`
}

func (p ProfilePatch) Apply(b *BusinessProfile) {
	if p.BusinessName != nil {
		b.BusinessName = *p.BusinessName
	}
	if p.TaxID != nil {
		b.TaxID = *p.TaxID
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.Currency != nil {
		b.Currency = *p.Currency
	}
	if p.InvoiceFooter != nil {
		b.InvoiceFooter = *p.InvoiceFooter
	}
}

// DefaultProfile is seeded when no profile exists yet
func DefaultProfile() BusinessProfile {
	return BusinessProfile{
		ID:            "1",
		BusinessName:  "Lavandería Express",
		Address:       "Mz O Lt 23, Chillón - Pte. Piedra (Frt. Merc. Modelo)",
		Phone:         "999 999 999",
		Currency:      "S/",
		InvoiceFooter: "¡Gracias por su preferencia!",
	}
}
