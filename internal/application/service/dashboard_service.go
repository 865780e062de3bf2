package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

// DashboardService provides dashboard statistics and ledger reports
type DashboardService struct {
	store    *store.Store
	orders   *OrderService
	calendar Calendar
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store, orders *OrderService, calendar Calendar) *DashboardService {
	return &DashboardService{store: st, orders: orders, calendar: calendar}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	Today         *entity.Summary      `json:"today"`
	Month         *entity.Summary      `json:"month"`
	ReadyOrders   []entity.Order       `json:"ready_orders"`
	PendingOrders int                  `json:"pending_orders"`
	MonthlySeries []entity.SeriesPoint `json:"monthly_series"`
	Backend       string               `json:"backend"`
}

// GetDashboardStats returns today's and this month's figures
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := s.calendar.Now()
	today := now.Format(entity.DateLayout)
	from, to := MonthBounds(now)
	stats := &DashboardStats{Backend: s.store.Backend()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Today, err = s.store.DailySummary(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		stats.Month, err = s.store.RangeSummary(gctx, from, to)
		return err
	})
	g.Go(func() (err error) {
		stats.ReadyOrders, err = s.orders.ReadyOrders(gctx)
		return err
	})
	g.Go(func() error {
		orders, err := s.store.ListOrders(gctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.Status.IsOpen() {
				stats.PendingOrders++
			}
		}
		return nil
	})
	g.Go(func() (err error) {
		stats.MonthlySeries, err = s.store.MonthlySeries(gctx, now.Year(), now.Month())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// DailyReport summarizes one date, today when date is empty
func (s *DashboardService) DailyReport(ctx context.Context, date string) (*entity.Summary, error) {
	if date == "" {
		date = s.calendar.Today()
	}
	if err := checkDate("date", date); err != nil {
		return nil, err
	}
	return s.store.DailySummary(ctx, date)
}

// RangeReport summarizes from..to inclusive
func (s *DashboardService) RangeReport(ctx context.Context, from, to string) (*entity.Summary, error) {
	if err := checkDate("from", from); err != nil {
		return nil, err
	}
	if err := checkDate("to", to); err != nil {
		return nil, err
	}
	if to < from {
		return nil, fieldError("to", "must not be before from")
	}
	return s.store.RangeSummary(ctx, from, to)
}

// MonthlyReport returns the day-by-day series of a month. Zero values mean
// the current year and month.
func (s *DashboardService) MonthlyReport(ctx context.Context, year, month int) ([]entity.SeriesPoint, error) {
	now := s.calendar.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, fieldError("month", "must be between 1 and 12")
	}
	return s.store.MonthlySeries(ctx, year, time.Month(month))
}
