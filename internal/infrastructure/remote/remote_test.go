package remote

import (
	"testing"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItems_WireKeys(t *testing.T) {
	items := NewLineItems([]entity.LineItem{
		{ServiceID: "1", ServiceName: "Lavado por Kilo", Quantity: 2, UnitPrice: 800, Subtotal: 1600},
	})

	text, err := items.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"servicioId":"1","servicioNombre":"Lavado por Kilo","cantidad":2,"precioUnitario":8,"subtotal":16}]`, text)

	decoded, err := DecodeLineItems(text)
	require.NoError(t, err)
	assert.Equal(t, entity.Money(1600), decoded.Entity()[0].Subtotal)
}

func TestLineItems_Scan(t *testing.T) {
	var items LineItems
	require.NoError(t, items.Scan([]byte(`[{"servicioId":"2","cantidad":1,"precioUnitario":25,"subtotal":25}]`)))
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ServiceID)

	require.NoError(t, items.Scan(nil))
	assert.Empty(t, items)

	assert.Error(t, items.Scan("{oops"))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2025-01-14"), d)

	require.NoError(t, d.Scan("2025-01-15T00:00:00Z"))
	assert.Equal(t, Date("2025-01-15"), d)

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, Date(""), d)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
