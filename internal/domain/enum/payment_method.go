package enum

// PaymentMethod represents how the customer paid for an order
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentYape     PaymentMethod = "yape"
	PaymentPlin     PaymentMethod = "plin"
	PaymentTransfer PaymentMethod = "transferencia"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentYape, PaymentPlin, PaymentTransfer:
		return true
	}
	return false
}
