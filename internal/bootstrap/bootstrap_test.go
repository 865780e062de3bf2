package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sangkips/laundrypro-api/internal/config"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InvoiceMonthFollowsBusinessTimezone(t *testing.T) {
	cfg := &config.Config{
		App:   config.AppConfig{Timezone: "America/Lima"},
		Local: config.LocalConfig{Path: filepath.Join(t.TempDir(), "local.db")},
	}
	// 22:00 on 31 January in Lima
	now := time.Date(2025, 2, 1, 3, 0, 0, 0, time.UTC)

	stack, err := Open(cfg, WithNow(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(stack.Close)

	assert.Equal(t, localstore.BackendName, stack.Store.Backend())
	assert.Equal(t, "2025-01-31", stack.Calendar.Today())

	order, err := stack.Store.CreateOrder(context.Background(), entity.NewOrder{
		CustomerName: "Ana",
		Total:        1500,
		ReceivedOn:   "2025-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "F202501-00001", order.InvoiceNo)
}

func TestOpen_RejectsUnknownFallbackPolicy(t *testing.T) {
	cfg := &config.Config{
		Local:  config.LocalConfig{Path: filepath.Join(t.TempDir(), "local.db")},
		Remote: config.RemoteConfig{FallbackPolicy: "sometimes"},
	}

	_, err := Open(cfg)
	assert.Error(t, err)
}
