package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
)

// DailySummary totals the incomes, expenses and orders of a single date
func (s *Store) DailySummary(ctx context.Context, date string) (*entity.Summary, error) {
	return s.RangeSummary(ctx, date, date)
}

// RangeSummary totals the incomes, expenses and orders dated between from and to, both inclusive
func (s *Store) RangeSummary(ctx context.Context, from, to string) (*entity.Summary, error) {
	var (
		orders   []entity.Order
		incomes  []entity.Income
		expenses []entity.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.ListOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		incomes, err = s.ListIncomes(gctx)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.ListExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &entity.Summary{From: from, To: to}
	for i := range incomes {
		if between(incomes[i].Date, from, to) {
			summary.Income += incomes[i].Amount
		}
	}
	for i := range expenses {
		if between(expenses[i].Date, from, to) {
			summary.Expense += expenses[i].Amount
		}
	}
	for i := range orders {
		if !between(orders[i].ReceivedOn, from, to) {
			continue
		}
		summary.OrderCount++
		if orders[i].Status != enum.OrderStatusDelivered {
			summary.PendingOrders++
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary, nil
}

// MonthlySeries returns one point per day of the month with that day's
// totals and the running balance
func (s *Store) MonthlySeries(ctx context.Context, year int, month time.Month) ([]entity.SeriesPoint, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	var (
		incomes  []entity.Income
		expenses []entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = s.ListIncomes(gctx)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.ListExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byDay := make(map[string]*entity.SeriesPoint)
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	series := make([]entity.SeriesPoint, days)
	for d := range series {
		series[d].Date = time.Date(year, month, d+1, 0, 0, 0, 0, time.UTC).Format(entity.DateLayout)
		byDay[series[d].Date] = &series[d]
	}

	for i := range incomes {
		if p, ok := byDay[dateOf(incomes[i].Date)]; ok {
			p.Income += incomes[i].Amount
		}
	}
	for i := range expenses {
		if p, ok := byDay[dateOf(expenses[i].Date)]; ok {
			p.Expense += expenses[i].Amount
		}
	}

	var running entity.Money
	for d := range series {
		series[d].Balance = series[d].Income - series[d].Expense
		running += series[d].Balance
		series[d].Cumulative = running
	}
	return series, nil
}

func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// dateOf trims a stored date or timestamp to its YYYY-MM-DD prefix
func dateOf(value string) string {
	if len(value) > len(entity.DateLayout) {
		return value[:len(entity.DateLayout)]
	}
	return value
}

func onDate(value, date string) bool {
	return strings.HasPrefix(value, date)
}

func between(value, from, to string) bool {
	d := dateOf(value)
	return d >= from && d <= to
}
