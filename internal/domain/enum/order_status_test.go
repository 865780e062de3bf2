package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Next(t *testing.T) {
	tests := []struct {
		from   OrderStatus
		want   OrderStatus
		wantOK bool
	}{
		{OrderStatusReceived, OrderStatusInProgress, true},
		{OrderStatusInProgress, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusDelivered, false},
		{OrderStatus("cancelado"), OrderStatus("cancelado"), false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			got, ok := tt.from.Next()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusReady.IsValid())
	assert.False(t, OrderStatus("Pending").IsValid())
	assert.True(t, OrderStatusReady.IsOpen())
	assert.False(t, OrderStatusDelivered.IsOpen())
}
