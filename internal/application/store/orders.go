package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	domainRepo "github.com/sangkips/laundrypro-api/internal/domain/repository"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/localstore"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/sangkips/laundrypro-api/pkg/utils"
)

func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, ok, err := tryRemote(s, "list orders", func(b domainRepo.Backend) ([]entity.Order, error) {
		return b.Orders().List(ctx)
	})
	if ok {
		return orders, err
	}
	return readLocal(s.local.ListOrders(ctx))
}

// GetOrder returns nil, nil when the order does not exist
func (s *Store) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, ok, err := tryRemote(s, "get order", func(b domainRepo.Backend) (*entity.Order, error) {
		return b.Orders().GetByID(ctx, id)
	})
	if ok {
		return order, err
	}
	return readLocal(s.local.GetOrder(ctx, id))
}

// CreateOrder numbers and stores a new order. Remote orders are numbered
// from the latest remote order; local orders from the local counter.
func (s *Store) CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error) {
	order, _, err := s.PlaceOrder(ctx, in)
	return order, err
}

// PlaceOrder is CreateOrder that also names the backend holding the new
// order, for callers that may have to take it back with DiscardOrder.
func (s *Store) PlaceOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, string, error) {
	created, ok, err := tryRemote(s, "create order", func(b domainRepo.Backend) (*entity.Order, error) {
		now := s.now()
		invoiceNo, err := b.Orders().NextInvoiceNo(ctx, now)
		if err != nil {
			invoiceNo = utils.FallbackInvoiceNo(now)
			log.Printf("[store] could not derive invoice number on %s, using %s: %v", b.Name(), invoiceNo, err)
		}

		order := in.WithInvoice(invoiceNo)
		created, err := b.Orders().Create(ctx, &order)
		if err != nil {
			return nil, err
		}
		return created, requireID(b.Name(), "create order", created.ID)
	})
	if ok {
		if err != nil {
			return nil, "", err
		}
		return created, s.remote.Name(), nil
	}
	order, err := s.local.CreateOrder(ctx, in)
	if err != nil {
		return nil, "", err
	}
	return order, localstore.BackendName, nil
}

var errOrderNotRemoved = errors.New("order was not removed")

// DiscardOrder deletes an order from the backend named by PlaceOrder. It
// never falls back: an order that cannot be removed there is an error.
func (s *Store) DiscardOrder(ctx context.Context, backend, id string) error {
	switch {
	case backend == localstore.BackendName:
		deleted, err := s.local.DeleteOrder(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperror.NewStoreError(backend, "discard order", apperror.KindNotFound, errOrderNotRemoved)
		}
		return nil
	case s.remote != nil && s.remote.Name() == backend:
		return s.remote.Orders().Delete(ctx, id)
	default:
		return apperror.NewStoreError(backend, "discard order", apperror.KindUnknown, fmt.Errorf("backend %q is not configured", backend))
	}
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	updated, ok, err := tryRemote(s, "update order", func(b domainRepo.Backend) (*entity.Order, error) {
		return b.Orders().Update(ctx, id, patch)
	})
	if ok {
		return updated, err
	}
	return s.local.UpdateOrder(ctx, id, patch)
}

func (s *Store) DeleteOrder(ctx context.Context, id string) (bool, error) {
	deleted, ok, err := tryRemote(s, "delete order", func(b domainRepo.Backend) (bool, error) {
		return true, b.Orders().Delete(ctx, id)
	})
	if ok {
		return deleted, err
	}
	return s.local.DeleteOrder(ctx, id)
}

// OrdersOn returns the orders received on date
func (s *Store) OrdersOn(ctx context.Context, date string) ([]entity.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return filter(orders, func(o *entity.Order) bool { return onDate(o.ReceivedOn, date) }), nil
}

// OrdersBetween returns the orders received between from and to, both inclusive
func (s *Store) OrdersBetween(ctx context.Context, from, to string) ([]entity.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return filter(orders, func(o *entity.Order) bool { return between(o.ReceivedOn, from, to) }), nil
}
