package supabase

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/remote"
	"github.com/sangkips/laundrypro-api/pkg/utils"
	"gorm.io/gorm"
)

type orderRepository struct {
	d *Driver
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var rows []orderRow
	err := r.d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(r.d.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, classify("list pedidos", err)
	}

	orders := make([]entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].entity())
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var row orderRow
	if err := r.d.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, classify("get pedido", err)
	}
	order := row.entity()
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	row := newOrderRow(order)
	if err := r.d.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, classify("create pedido", err)
	}
	created := row.entity()
	return &created, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	columns := map[string]interface{}{}
	if patch.CustomerName != nil {
		columns["cliente"] = *patch.CustomerName
	}
	if patch.Phone != nil {
		columns["telefono"] = *patch.Phone
	}
	if patch.Items != nil {
		columns["servicios"] = remote.NewLineItems(patch.Items)
	}
	if patch.Subtotal != nil {
		columns["subtotal"] = patch.Subtotal.Float64()
	}
	if patch.Discount != nil {
		columns["descuento"] = patch.Discount.Float64()
	}
	if patch.Total != nil {
		columns["total"] = patch.Total.Float64()
	}
	if patch.Status != nil {
		columns["estado"] = string(*patch.Status)
	}
	if patch.PaymentMethod != nil {
		columns["metodo_pago"] = string(*patch.PaymentMethod)
	}
	if patch.Notes != nil {
		columns["notas"] = *patch.Notes
	}
	if patch.ReceivedOn != nil {
		columns["fecha_recepcion"] = remote.Date(*patch.ReceivedOn)
	}
	if patch.DeliveryDate != nil {
		columns["fecha_entrega"] = remote.Date(*patch.DeliveryDate)
	}

	if err := r.d.update(ctx, "update pedido", &orderRow{}, id, columns); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return r.d.delete(ctx, "delete pedido", &orderRow{}, id)
}

func (r *orderRepository) NextInvoiceNo(ctx context.Context, now time.Time) (string, error) {
	var row orderRow
	err := r.d.db.WithContext(ctx).
		Select("numero_factura").
		Order("created_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NextInvoiceNo("", now), nil
	}
	if err != nil {
		return "", classify("next numero_factura", err)
	}
	return utils.NextInvoiceNo(row.NumeroFactura, now), nil
}
