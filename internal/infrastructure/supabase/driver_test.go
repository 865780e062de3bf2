package supabase

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/database"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The driver runs against in-memory SQLite; the queries it issues are plain
// enough to behave the same as on Postgres.
func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	db, err := database.NewSQLiteDB(database.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	d := New(db, 0)
	require.NoError(t, d.AutoMigrate())
	return d
}

func TestServiceRepository_RoundTrip(t *testing.T) {
	d := newTestDriver(t)
	ctx := context.Background()
	repo := d.Services()

	created, err := repo.Create(ctx, &entity.Service{
		Name:        "Planchado",
		Description: "Servicio de planchado por prenda",
		Price:       300,
		Unit:        enum.UnitGarment,
		Active:      false,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Active)

	price := entity.NewMoney(3.5)
	updated, err := repo.Update(ctx, created.ID, entity.ServicePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, entity.Money(350), updated.Price)
	assert.Equal(t, "Planchado", updated.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	err = repo.Delete(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestOrderRepository_LineItemsAndPatch(t *testing.T) {
	d := newTestDriver(t)
	ctx := context.Background()
	repo := d.Orders()

	created, err := repo.Create(ctx, &entity.Order{
		InvoiceNo:    "FAC-2501-0001",
		CustomerName: "Ana",
		Items: []entity.LineItem{
			{ServiceID: "1", ServiceName: "Lavado por Kilo", Quantity: 2, UnitPrice: 800, Subtotal: 1600},
			{ServiceID: "2", ServiceName: "Lavado de Edredón", Quantity: 1, UnitPrice: 2500, Subtotal: 2500},
		},
		Subtotal:      4100,
		Total:         4100,
		Status:        enum.OrderStatusReceived,
		PaymentMethod: enum.PaymentYape,
		ReceivedOn:    "2025-01-14",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Lavado de Edredón", got.Items[1].ServiceName)
	assert.Equal(t, "2025-01-14", got.ReceivedOn)
	assert.Empty(t, got.DeliveryDate)

	ready := enum.OrderStatusReady
	delivery := "2025-01-16"
	updated, err := repo.Update(ctx, created.ID, entity.OrderPatch{Status: &ready, DeliveryDate: &delivery})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusReady, updated.Status)
	assert.Equal(t, "2025-01-16", updated.DeliveryDate)
	assert.Equal(t, entity.Money(4100), updated.Total)
	assert.Equal(t, "Ana", updated.CustomerName)

	_, err = repo.Update(ctx, "missing", entity.OrderPatch{Status: &ready})
	assert.True(t, apperror.IsNotFound(err))
}

func TestOrderRepository_NextInvoiceNo(t *testing.T) {
	d := newTestDriver(t)
	ctx := context.Background()
	now := time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)

	first, err := d.Orders().NextInvoiceNo(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, "FAC-2501-0001", first)

	base := time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, d.db.Create(&orderRow{NumeroFactura: "FAC-2501-0006", Cliente: "A", Estado: "pendiente", CreatedAt: base}).Error)
	require.NoError(t, d.db.Create(&orderRow{NumeroFactura: "FAC-2501-0007", Cliente: "B", Estado: "pendiente", CreatedAt: base.Add(time.Hour)}).Error)

	next, err := d.Orders().NextInvoiceNo(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, "FAC-2501-0008", next)
}

func TestLedger_OrderedByDate(t *testing.T) {
	d := newTestDriver(t)
	ctx := context.Background()

	for _, date := range []string{"2025-01-10", "2025-01-12", "2025-01-11"} {
		_, err := d.Incomes().Create(ctx, &entity.Income{
			Concept:  "Pedido " + date,
			Amount:   1000,
			Category: enum.IncomeFromOrder,
			OrderID:  "ord-" + date,
			Date:     date,
		})
		require.NoError(t, err)
	}

	incomes, err := d.Incomes().List(ctx)
	require.NoError(t, err)
	require.Len(t, incomes, 3)
	assert.Equal(t, "2025-01-12", incomes[0].Date)
	assert.Equal(t, "2025-01-10", incomes[2].Date)
	assert.Equal(t, "ord-2025-01-10", incomes[2].OrderID)

	expense, err := d.Expenses().Create(ctx, &entity.Expense{Concept: "Detergente", Amount: 3550, Category: enum.ExpenseSupplies, Date: "2025-01-11"})
	require.NoError(t, err)
	notes := "bolsa de 15kg"
	updated, err := d.Expenses().Update(ctx, expense.ID, entity.ExpensePatch{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, entity.Money(3550), updated.Amount)
	assert.Equal(t, notes, updated.Notes)
}

func TestProfileRepository_SaveInsertsThenUpdates(t *testing.T) {
	d := newTestDriver(t)
	ctx := context.Background()
	repo := d.Profiles()

	_, err := repo.Get(ctx)
	assert.True(t, apperror.IsNotFound(err))

	def := entity.DefaultProfile()
	saved, err := repo.Save(ctx, &def)
	require.NoError(t, err)
	assert.Equal(t, "Lavandería Express", saved.BusinessName)

	saved.TaxID = "20123456789"
	again, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, "20123456789", again.TaxID)

	var count int64
	require.NoError(t, d.db.Model(&profileRow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPrintedInvoices(t *testing.T) {
	d := newTestDriver(t)
	ctx := context.Background()
	printedAt := time.Date(2025, time.January, 14, 15, 4, 5, 0, time.UTC)

	created, err := d.PrintedInvoices().Create(ctx, &entity.PrintedInvoice{
		OrderID:      "ord-1",
		InvoiceNo:    "FAC-2501-0001",
		CustomerName: "Ana",
		Total:        4100,
		PrintedAt:    printedAt,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := d.PrintedInvoices().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.Money(4100), list[0].Total)
	assert.True(t, printedAt.Equal(list[0].PrintedAt))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperror.Kind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperror.KindRejected},
		{"undefined column", &pgconn.PgError{Code: "42703"}, apperror.KindRejected},
		{"connection failure", &pgconn.PgError{Code: "08006"}, apperror.KindUnavailable},
		{"too many connections", &pgconn.PgError{Code: "53300"}, apperror.KindUnavailable},
		{"deadline", context.DeadlineExceeded, apperror.KindUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperror.KindOf(classify("op", tt.err)))
		})
	}
}

func TestPing(t *testing.T) {
	d := newTestDriver(t)
	assert.NoError(t, d.Ping(context.Background()))
	assert.Equal(t, "supabase", d.Name())
}
