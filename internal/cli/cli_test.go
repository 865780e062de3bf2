package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/database"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localOpener(t *testing.T) (Opener, *store.Store) {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	local, err := localstore.New(db)
	require.NoError(t, err)
	st := store.New(nil, local)

	return func(context.Context) (*store.Store, func(), error) {
		return st, func() {}, nil
	}, st
}

func run(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(open)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPing(t *testing.T) {
	open, _ := localOpener(t)

	out, err := run(t, open, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: local")
	assert.Contains(t, out, "local:   ok")
	assert.NotContains(t, out, "remote:")
}

func TestSummary(t *testing.T) {
	open, st := localOpener(t)
	ctx := context.Background()

	_, err := st.CreateIncome(ctx, entity.Income{Concept: "Pedido", Amount: entity.NewMoney(40), Category: enum.IncomeFromOrder, Date: "2025-03-02"})
	require.NoError(t, err)
	_, err = st.CreateExpense(ctx, entity.Expense{Concept: "Detergente", Amount: entity.NewMoney(15.5), Category: enum.ExpenseSupplies, Date: "2025-03-02"})
	require.NoError(t, err)

	out, err := run(t, open, "summary", "--date", "2025-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "income:  40.00")
	assert.Contains(t, out, "balance: 24.50")

	out, err = run(t, open, "summary", "--from", "2025-03-01", "--to", "2025-03-31", "--format", "json")
	require.NoError(t, err)
	var summary entity.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, entity.NewMoney(24.5), summary.Balance)

	_, err = run(t, open, "summary", "--from", "2025-03-01")
	assert.Error(t, err)
}

func TestSeries(t *testing.T) {
	open, _ := localOpener(t)

	out, err := run(t, open, "series", "--year", "2025", "--month", "2", "--format", "json")
	require.NoError(t, err)
	var points []entity.SeriesPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 28)

	_, err = run(t, open, "series", "--year", "2025", "--month", "13")
	assert.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	open, _ := localOpener(t)
	_, err := run(t, open, "ping", "--format", "yaml")
	assert.Error(t, err)
}
