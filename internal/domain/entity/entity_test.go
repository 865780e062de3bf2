package entity

import (
	"encoding/json"
	"testing"

	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: 4150})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":41.5}`, string(data))

	var in struct {
		Price Money `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":8.1}`), &in))
	assert.Equal(t, Money(810), in.Price)
}

func TestMoney_Mul(t *testing.T) {
	assert.Equal(t, Money(1600), Money(800).Mul(2))
	assert.Equal(t, Money(1200), Money(800).Mul(1.5))
	assert.Equal(t, "12.00", Money(1200).String())
}

func TestOrderPatch_Apply(t *testing.T) {
	order := Order{
		CustomerName: "Ana",
		Phone:        "987654321",
		Status:       enum.OrderStatusReceived,
		Total:        4100,
	}
	ready := enum.OrderStatusReady
	date := "2025-01-16"

	OrderPatch{Status: &ready, DeliveryDate: &date}.Apply(&order)

	assert.Equal(t, enum.OrderStatusReady, order.Status)
	assert.Equal(t, "2025-01-16", order.DeliveryDate)
	assert.Equal(t, "Ana", order.CustomerName)
	assert.Equal(t, "987654321", order.Phone)
	assert.Equal(t, Money(4100), order.Total)
}

func TestNewOrder_WithInvoice(t *testing.T) {
	in := NewOrder{
		CustomerName: "Ana",
		Items:        []LineItem{{ServiceID: "1", Quantity: 2, UnitPrice: 800, Subtotal: 1600}},
		Total:        1600,
	}
	order := in.WithInvoice("FAC-2501-0001")
	in.Items[0].Quantity = 9

	assert.Equal(t, "FAC-2501-0001", order.InvoiceNo)
	assert.Equal(t, 2.0, order.Items[0].Quantity)
	assert.Equal(t, Money(1600), SumItems(order.Items))
}

func TestDefaultServices(t *testing.T) {
	services := DefaultServices()
	require.Len(t, services, 6)
	assert.Equal(t, "Lavado por Kilo", services[0].Name)
	assert.Equal(t, Money(800), services[0].Price)
	assert.Equal(t, enum.UnitKilogram, services[0].Unit)
	for _, s := range services {
		assert.True(t, s.Active)
	}
}
