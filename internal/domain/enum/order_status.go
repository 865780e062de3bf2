package enum

// OrderStatus represents where an order is in the laundry workflow.
// Values are the wire strings shared by every backend.
type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "pendiente"
	OrderStatusInProgress OrderStatus = "en_proceso"
	OrderStatusReady      OrderStatus = "listo"
	OrderStatusDelivered  OrderStatus = "entregado"
)

var orderStatusFlow = []OrderStatus{
	OrderStatusReceived,
	OrderStatusInProgress,
	OrderStatusReady,
	OrderStatusDelivered,
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses
func (s OrderStatus) IsValid() bool {
	for _, v := range orderStatusFlow {
		if v == s {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in the forward chain.
// ok is false for delivered orders and unknown values.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	for i, v := range orderStatusFlow {
		if v == s && i+1 < len(orderStatusFlow) {
			return orderStatusFlow[i+1], true
		}
	}
	return s, false
}

// IsOpen reports whether the order still counts as pending work
func (s OrderStatus) IsOpen() bool {
	return s != OrderStatusDelivered
}
