package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/database"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/localstore"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/supabase"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/sangkips/laundrypro-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var lima = time.FixedZone("PET", -5*60*60)

// 23:30 in Lima is already the next day in UTC
var testNow = time.Date(2025, time.March, 2, 23, 30, 0, 0, lima)

func openDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newLocalStore(t *testing.T) *store.Store {
	t.Helper()
	local, err := localstore.New(openDB(t, "local.db"))
	require.NoError(t, err)
	return store.New(nil, local, store.WithClock(func() time.Time { return testNow }))
}

func testCalendar() Calendar {
	return NewCalendar(lima).WithNow(func() time.Time { return testNow })
}

func TestIntake_PricesItemsAndRecordsIncome(t *testing.T) {
	st := newLocalStore(t)
	orders := NewOrderService(st, testCalendar())
	ctx := context.Background()

	order, err := orders.Intake(ctx, &IntakeInput{
		CustomerName: "  Ana Torres ",
		Phone:        "987654321",
		Items: []OrderItemInput{
			{ServiceID: "1", Quantity: 2},
			{ServiceID: "2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Torres", order.CustomerName)
	assert.Equal(t, entity.NewMoney(41), order.Total)
	assert.Equal(t, entity.NewMoney(41), order.Subtotal)
	assert.Equal(t, enum.OrderStatusReceived, order.Status)
	assert.Equal(t, enum.PaymentCash, order.PaymentMethod)
	assert.Equal(t, "2025-03-02", order.ReceivedOn)
	require.Len(t, order.Items, 2)
	assert.Equal(t, entity.NewMoney(16), order.Items[0].Subtotal)

	incomes, err := st.IncomesOn(ctx, "2025-03-02")
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, entity.NewMoney(41), incomes[0].Amount)
	assert.Equal(t, enum.IncomeFromOrder, incomes[0].Category)
	assert.Equal(t, order.ID, incomes[0].OrderID)
	assert.Equal(t, "Pedido "+order.InvoiceNo+" - Ana Torres", incomes[0].Concept)
}

func TestIntake_Validation(t *testing.T) {
	orders := NewOrderService(newLocalStore(t), testCalendar())
	ctx := context.Background()

	tests := []struct {
		name  string
		input IntakeInput
		code  int
	}{
		{"missing customer", IntakeInput{Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}}, 422},
		{"no items", IntakeInput{CustomerName: "Ana"}, 422},
		{"unknown service", IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "99", Quantity: 1}}}, 404},
		{"zero quantity", IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 0}}}, 422},
		{"discount above subtotal", IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}, Discount: 900}, 422},
		{"bad delivery date", IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}, DeliveryDate: "02/03/2025"}, 422},
		{"unknown payment", IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}, PaymentMethod: "bitcoin"}, 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := orders.Intake(ctx, &input)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperror.GetAppError(err).Code)
		})
	}
}

type failingIncomes struct {
	domainRepo.IncomeRepository
}

func (failingIncomes) Create(context.Context, *entity.Income) (*entity.Income, error) {
	return nil, apperror.NewStoreError(supabase.BackendName, "create ingreso", apperror.KindRejected, errors.New("permission denied"))
}

type incomeRejectingBackend struct {
	domainRepo.Backend
}

func (b incomeRejectingBackend) Incomes() domainRepo.IncomeRepository {
	return failingIncomes{b.Backend.Incomes()}
}

func TestIntake_RemovesOrderWhenIncomeFails(t *testing.T) {
	remoteDB := openDB(t, "remote.db")
	remote := supabase.New(remoteDB, 0)
	require.NoError(t, remote.AutoMigrate())
	local, err := localstore.New(openDB(t, "local.db"))
	require.NoError(t, err)

	st := store.New(incomeRejectingBackend{remote}, local, store.WithFallbackPolicy(store.FallbackOnOutage))
	orders := NewOrderService(st, testCalendar())
	ctx := context.Background()

	catalog, err := st.ListServices(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, catalog)

	_, err = orders.Intake(ctx, &IntakeInput{
		CustomerName: "Ana",
		Items:        []OrderItemInput{{ServiceID: catalog[0].ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindRejected, apperror.KindOf(err))

	remaining, err := st.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

type undeletableOrders struct {
	domainRepo.OrderRepository
}

func (undeletableOrders) Delete(context.Context, string) error {
	return apperror.NewStoreError(supabase.BackendName, "delete orders", apperror.KindUnavailable, errors.New("connection reset"))
}

type stuckOrderBackend struct {
	incomeRejectingBackend
}

func (b stuckOrderBackend) Orders() domainRepo.OrderRepository {
	return undeletableOrders{b.Backend.Orders()}
}

func TestIntake_ReportsOrderLeftBehindWhenRemovalFails(t *testing.T) {
	remote := supabase.New(openDB(t, "remote.db"), 0)
	require.NoError(t, remote.AutoMigrate())
	local, err := localstore.New(openDB(t, "local.db"))
	require.NoError(t, err)

	st := store.New(stuckOrderBackend{incomeRejectingBackend{remote}}, local, store.WithFallbackPolicy(store.FallbackOnOutage))
	orders := NewOrderService(st, testCalendar())
	ctx := context.Background()

	catalog, err := st.ListServices(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, catalog)

	_, err = orders.Intake(ctx, &IntakeInput{
		CustomerName: "Ana",
		Items:        []OrderItemInput{{ServiceID: catalog[0].ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindRejected, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "still stored on supabase")

	// the removal must not be retried against the local store
	stranded, err := remote.Orders().List(ctx)
	require.NoError(t, err)
	assert.Len(t, stranded, 1)

	localOrders, err := local.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, localOrders)
}

func TestOrderWorkflow(t *testing.T) {
	st := newLocalStore(t)
	orders := NewOrderService(st, testCalendar())
	ctx := context.Background()

	order, err := orders.Intake(ctx, &IntakeInput{CustomerName: "Luis", Items: []OrderItemInput{{ServiceID: "4", Quantity: 3}}})
	require.NoError(t, err)

	order, err = orders.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusInProgress, order.Status)

	order, err = orders.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusReady, order.Status)

	ready, err := orders.ReadyOrders(ctx)
	require.NoError(t, err)
	require.Len(t, ready, 1)

	order, err = orders.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusDelivered, order.Status)
	assert.Equal(t, "2025-03-02", order.DeliveryDate)

	_, err = orders.Advance(ctx, order.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	order, err = orders.AssignDelivery(ctx, order.ID, "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", order.DeliveryDate)

	_, err = orders.AssignDelivery(ctx, order.ID, "mañana")
	assert.Error(t, err)

	_, err = orders.ChangeStatus(ctx, "missing", enum.OrderStatusReady)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	require.NoError(t, orders.DeleteOrder(ctx, order.ID))
	assert.Error(t, orders.DeleteOrder(ctx, order.ID))
}

func TestUpdateOrder_StampsDeliveryDate(t *testing.T) {
	orders := NewOrderService(newLocalStore(t), testCalendar())
	ctx := context.Background()

	first, err := orders.Intake(ctx, &IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}})
	require.NoError(t, err)
	second, err := orders.Intake(ctx, &IntakeInput{CustomerName: "Luis", Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}})
	require.NoError(t, err)

	delivered := enum.OrderStatusDelivered
	updated, err := orders.UpdateOrder(ctx, first.ID, entity.OrderPatch{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusDelivered, updated.Status)
	assert.Equal(t, "2025-03-02", updated.DeliveryDate)

	date := "2025-03-01"
	updated, err = orders.UpdateOrder(ctx, second.ID, entity.OrderPatch{Status: &delivered, DeliveryDate: &date})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", updated.DeliveryDate)

	ready := enum.OrderStatusReady
	updated, err = orders.UpdateOrder(ctx, second.ID, entity.OrderPatch{Status: &ready})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", updated.DeliveryDate)
}

func TestListOrders_Filters(t *testing.T) {
	st := newLocalStore(t)
	orders := NewOrderService(st, testCalendar())
	ctx := context.Background()

	for _, name := range []string{"Ana", "Luis", "Ana María"} {
		_, err := orders.Intake(ctx, &IntakeInput{CustomerName: name, Items: []OrderItemInput{{ServiceID: "1", Quantity: 1}}})
		require.NoError(t, err)
	}

	result, err := orders.ListOrders(ctx, &OrderFilterParams{Search: "ana", Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1}})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.Equal(t, "Ana María", result.Items[0].CustomerName)

	result, err = orders.ListOrders(ctx, &OrderFilterParams{})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "Ana María", result.Items[0].CustomerName)
	assert.Equal(t, "Ana", result.Items[2].CustomerName)

	result, err = orders.ListOrders(ctx, &OrderFilterParams{From: "2025-03-03"})
	require.NoError(t, err)
	assert.Empty(t, result.Items)

	result, err = orders.ListOrders(ctx, &OrderFilterParams{Status: enum.OrderStatusReceived})
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)
}

type capturePrinter struct {
	data []byte
	err  error
}

func (p *capturePrinter) Print(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.data = append([]byte(nil), data...)
	return nil
}
func (p *capturePrinter) Kind() string                     { return "network" }
func (p *capturePrinter) IsConnected(context.Context) bool { return p.err == nil }

func TestPrintOrder(t *testing.T) {
	st := newLocalStore(t)
	orders := NewOrderService(st, testCalendar())
	ctx := context.Background()

	order, err := orders.Intake(ctx, &IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 2.5}}})
	require.NoError(t, err)

	p := &capturePrinter{}
	printing := NewPrinterService(p, st, orders, 32)

	result, err := printing.PrintOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.InvoiceNo, result.Record.InvoiceNo)
	assert.Equal(t, "network", result.Printer)
	assert.Contains(t, string(p.data), "Lavanderia Express")
	assert.Contains(t, string(p.data), order.InvoiceNo)
	assert.Contains(t, string(p.data), "TOTAL:")

	p.err = errors.New("paper out")
	_, err = printing.PrintOrder(ctx, order.ID)
	require.Error(t, err)

	printed, err := orders.PrintedInvoices(ctx, order.ID, nil)
	require.NoError(t, err)
	assert.Len(t, printed.Items, 1)
}

func TestLedgerService(t *testing.T) {
	ledger := NewLedgerService(newLocalStore(t), testCalendar())
	ctx := context.Background()

	income, err := ledger.CreateIncome(ctx, entity.Income{Concept: "Venta de bolsas", Amount: 500, Category: enum.IncomeOther})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", income.Date)

	_, err = ledger.CreateIncome(ctx, entity.Income{Concept: "", Amount: 0, Category: enum.IncomeOther})
	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 2)

	_, err = ledger.CreateExpense(ctx, entity.Expense{Concept: "Luz", Amount: 1200, Category: "viajes"})
	assert.Error(t, err)

	expense, err := ledger.CreateExpense(ctx, entity.Expense{Concept: "Luz", Amount: 1200, Category: enum.ExpenseUtilities, Date: "2025-02-28"})
	require.NoError(t, err)

	amount := entity.NewMoney(15)
	expense, err = ledger.UpdateExpense(ctx, expense.ID, entity.ExpensePatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, entity.Money(1500), expense.Amount)

	list, err := ledger.ListExpenses(ctx, &LedgerFilterParams{From: "2025-03-01"})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	list, err = ledger.ListExpenses(ctx, &LedgerFilterParams{Date: "2025-02-28", From: "2025-03-01"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, expense.ID, list.Items[0].ID)

	incomes, err := ledger.ListIncomes(ctx, &LedgerFilterParams{Date: "2025-03-02"})
	require.NoError(t, err)
	require.Len(t, incomes.Items, 1)
	assert.Equal(t, income.ID, incomes.Items[0].ID)

	incomes, err = ledger.ListIncomes(ctx, &LedgerFilterParams{Date: "2025-02-28"})
	require.NoError(t, err)
	assert.Empty(t, incomes.Items)

	_, err = ledger.ListExpenses(ctx, &LedgerFilterParams{Date: "28/02/2025"})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
	assert.Equal(t, "date", apperror.GetAppError(err).Errors[0].Field)

	require.NoError(t, ledger.DeleteExpense(ctx, expense.ID))
	_, err = ledger.GetExpense(ctx, expense.ID)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDashboardStats(t *testing.T) {
	st := newLocalStore(t)
	cal := testCalendar()
	orders := NewOrderService(st, cal)
	ledger := NewLedgerService(st, cal)
	dashboard := NewDashboardService(st, orders, cal)
	ctx := context.Background()

	_, err := orders.Intake(ctx, &IntakeInput{CustomerName: "Ana", Items: []OrderItemInput{{ServiceID: "1", Quantity: 2}, {ServiceID: "2", Quantity: 1}}})
	require.NoError(t, err)
	_, err = ledger.CreateExpense(ctx, entity.Expense{Concept: "Detergente", Amount: 1000, Category: enum.ExpenseSupplies, Date: "2025-03-01"})
	require.NoError(t, err)

	stats, err := dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.NewMoney(41), stats.Today.Income)
	assert.Equal(t, entity.Money(0), stats.Today.Expense)
	assert.Equal(t, entity.NewMoney(31), stats.Month.Balance)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Empty(t, stats.ReadyOrders)
	assert.Len(t, stats.MonthlySeries, 31)
	assert.Equal(t, entity.NewMoney(31), stats.MonthlySeries[30].Cumulative)
	assert.Equal(t, localstore.BackendName, stats.Backend)

	_, err = dashboard.RangeReport(ctx, "2025-03-05", "2025-03-01")
	assert.Error(t, err)

	_, err = dashboard.MonthlyReport(ctx, 2025, 13)
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-01", from)
	assert.Equal(t, "2024-02-29", to)
}
