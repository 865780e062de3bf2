package supabase

import (
	"context"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

type printedInvoiceRepository struct {
	d *Driver
}

func (r *printedInvoiceRepository) List(ctx context.Context) ([]entity.PrintedInvoice, error) {
	var rows []printedInvoiceRow
	err := r.d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(r.d.pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, classify("list facturas_impresas", err)
	}

	invoices := make([]entity.PrintedInvoice, 0, len(rows))
	for i := range rows {
		invoices = append(invoices, rows[i].entity())
	}
	return invoices, nil
}

func (r *printedInvoiceRepository) Create(ctx context.Context, invoice *entity.PrintedInvoice) (*entity.PrintedInvoice, error) {
	row := &printedInvoiceRow{
		PedidoID:      invoice.OrderID,
		NumeroFactura: invoice.InvoiceNo,
		Cliente:       invoice.CustomerName,
		Total:         invoice.Total.Float64(),
		ImpresoEn:     invoice.PrintedAt,
	}
	if err := r.d.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, classify("create factura_impresa", err)
	}
	created := row.entity()
	return &created, nil
}
