package remote

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

// LineItem is the wire shape of an order line shared by both remote backends
type LineItem struct {
	ServiceID   string  `json:"servicioId"`
	ServiceName string  `json:"servicioNombre"`
	Quantity    float64 `json:"cantidad"`
	UnitPrice   float64 `json:"precioUnitario"`
	Subtotal    float64 `json:"subtotal"`
}

// LineItems is stored as jsonb by the relational backend and as a JSON
// string attribute by the document backend
type LineItems []LineItem

func NewLineItems(items []entity.LineItem) LineItems {
	out := make(LineItems, 0, len(items))
	for _, it := range items {
		out = append(out, LineItem{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.Float64(),
			Subtotal:    it.Subtotal.Float64(),
		})
	}
	return out
}

func (l LineItems) Entity() []entity.LineItem {
	out := make([]entity.LineItem, 0, len(l))
	for _, it := range l {
		out = append(out, entity.LineItem{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   entity.NewMoney(it.UnitPrice),
			Subtotal:    entity.NewMoney(it.Subtotal),
		})
	}
	return out
}

// Encode returns the JSON text of the items
func (l LineItems) Encode() (string, error) {
	if l == nil {
		l = LineItems{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeLineItems parses JSON text. An empty string is an empty list.
func DecodeLineItems(s string) (LineItems, error) {
	if s == "" {
		return LineItems{}, nil
	}
	var items LineItems
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("invalid line items: %w", err)
	}
	return items, nil
}

func (l LineItems) Value() (driver.Value, error) {
	return l.Encode()
}

func (l *LineItems) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = LineItems{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported line items type %T", value)
	}

	items, err := DecodeLineItems(raw)
	if err != nil {
		return err
	}
	*l = items
	return nil
}
