package appwrite

import (
	"context"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/remote"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
	"github.com/sangkips/laundrypro-api/pkg/utils"
)

type serviceRepository struct {
	d *Driver
}

func (r *serviceRepository) List(ctx context.Context) ([]entity.Service, error) {
	return listDocuments[serviceDoc, entity.Service](ctx, r.d.c, "list servicios", r.d.collections.Services,
		orderDesc(attrCreatedAt), limit(r.d.pageSize))
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	return getDocument[serviceDoc, entity.Service](ctx, r.d.c, "get servicio", r.d.collections.Services, id)
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) (*entity.Service, error) {
	return createDocument[serviceDoc, entity.Service](ctx, r.d.c, "create servicio", r.d.collections.Services,
		newServiceAttrs(service))
}

func (r *serviceRepository) Update(ctx context.Context, id string, patch entity.ServicePatch) (*entity.Service, error) {
	data := map[string]interface{}{}
	if patch.Name != nil {
		data["nombre"] = *patch.Name
	}
	if patch.Description != nil {
		data["descripcion"] = *patch.Description
	}
	if patch.Price != nil {
		data["precio"] = patch.Price.Float64()
	}
	if patch.Unit != nil {
		data["unidad"] = string(*patch.Unit)
	}
	if patch.Active != nil {
		data["activo"] = *patch.Active
	}
	return updateDocument[serviceDoc, entity.Service](ctx, r.d.c, "update servicio", r.d.collections.Services, id, data)
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.d.c, "delete servicio", r.d.collections.Services, id)
}

type orderRepository struct {
	d *Driver
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	return listDocuments[orderDoc, entity.Order](ctx, r.d.c, "list pedidos", r.d.collections.Orders,
		orderDesc(attrCreatedAt), limit(r.d.pageSize))
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return getDocument[orderDoc, entity.Order](ctx, r.d.c, "get pedido", r.d.collections.Orders, id)
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	attrs, err := newOrderAttrs(order)
	if err != nil {
		return nil, r.d.c.fail("create pedido", apperror.KindRejected, err)
	}
	return createDocument[orderDoc, entity.Order](ctx, r.d.c, "create pedido", r.d.collections.Orders, attrs)
}

func (r *orderRepository) Update(ctx context.Context, id string, patch entity.OrderPatch) (*entity.Order, error) {
	data := map[string]interface{}{}
	if patch.CustomerName != nil {
		data["cliente"] = *patch.CustomerName
	}
	if patch.Phone != nil {
		data["telefono"] = *patch.Phone
	}
	if patch.Items != nil {
		items, err := remote.NewLineItems(patch.Items).Encode()
		if err != nil {
			return nil, r.d.c.fail("update pedido", apperror.KindRejected, err)
		}
		data["servicios"] = items
	}
	if patch.Subtotal != nil {
		data["subtotal"] = patch.Subtotal.Float64()
	}
	if patch.Discount != nil {
		data["descuento"] = patch.Discount.Float64()
	}
	if patch.Total != nil {
		data["total"] = patch.Total.Float64()
	}
	if patch.Status != nil {
		data["estado"] = string(*patch.Status)
	}
	if patch.PaymentMethod != nil {
		data["metodoPago"] = string(*patch.PaymentMethod)
	}
	if patch.Notes != nil {
		data["notas"] = *patch.Notes
	}
	if patch.ReceivedOn != nil {
		data["fechaRecepcion"] = *patch.ReceivedOn
	}
	if patch.DeliveryDate != nil {
		data["fechaEntrega"] = *patch.DeliveryDate
	}
	return updateDocument[orderDoc, entity.Order](ctx, r.d.c, "update pedido", r.d.collections.Orders, id, data)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.d.c, "delete pedido", r.d.collections.Orders, id)
}

func (r *orderRepository) NextInvoiceNo(ctx context.Context, now time.Time) (string, error) {
	latest, err := listDocuments[orderDoc, entity.Order](ctx, r.d.c, "next numeroFactura", r.d.collections.Orders,
		orderDesc(attrCreatedAt), limit(1))
	if err != nil {
		return "", err
	}
	if len(latest) == 0 {
		return utils.NextInvoiceNo("", now), nil
	}
	return utils.NextInvoiceNo(latest[0].InvoiceNo, now), nil
}

type incomeRepository struct {
	d *Driver
}

func (r *incomeRepository) List(ctx context.Context) ([]entity.Income, error) {
	return listDocuments[incomeDoc, entity.Income](ctx, r.d.c, "list ingresos", r.d.collections.Incomes,
		orderDesc("fecha"), limit(r.d.pageSize))
}

func (r *incomeRepository) GetByID(ctx context.Context, id string) (*entity.Income, error) {
	return getDocument[incomeDoc, entity.Income](ctx, r.d.c, "get ingreso", r.d.collections.Incomes, id)
}

func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) (*entity.Income, error) {
	return createDocument[incomeDoc, entity.Income](ctx, r.d.c, "create ingreso", r.d.collections.Incomes,
		newIncomeAttrs(income))
}

func (r *incomeRepository) Update(ctx context.Context, id string, patch entity.IncomePatch) (*entity.Income, error) {
	data := map[string]interface{}{}
	if patch.Concept != nil {
		data["concepto"] = *patch.Concept
	}
	if patch.Amount != nil {
		data["monto"] = patch.Amount.Float64()
	}
	if patch.Category != nil {
		data["categoria"] = string(*patch.Category)
	}
	if patch.OrderID != nil {
		data["pedidoId"] = *patch.OrderID
	}
	if patch.Date != nil {
		data["fecha"] = *patch.Date
	}
	if patch.Notes != nil {
		data["notas"] = *patch.Notes
	}
	return updateDocument[incomeDoc, entity.Income](ctx, r.d.c, "update ingreso", r.d.collections.Incomes, id, data)
}

func (r *incomeRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.d.c, "delete ingreso", r.d.collections.Incomes, id)
}

type expenseRepository struct {
	d *Driver
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	return listDocuments[expenseDoc, entity.Expense](ctx, r.d.c, "list egresos", r.d.collections.Expenses,
		orderDesc("fecha"), limit(r.d.pageSize))
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	return getDocument[expenseDoc, entity.Expense](ctx, r.d.c, "get egreso", r.d.collections.Expenses, id)
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) (*entity.Expense, error) {
	return createDocument[expenseDoc, entity.Expense](ctx, r.d.c, "create egreso", r.d.collections.Expenses,
		newExpenseAttrs(expense))
}

func (r *expenseRepository) Update(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error) {
	data := map[string]interface{}{}
	if patch.Concept != nil {
		data["concepto"] = *patch.Concept
	}
	if patch.Amount != nil {
		data["monto"] = patch.Amount.Float64()
	}
	if patch.Category != nil {
		data["categoria"] = string(*patch.Category)
	}
	if patch.Date != nil {
		data["fecha"] = *patch.Date
	}
	if patch.Notes != nil {
		data["notas"] = *patch.Notes
	}
	return updateDocument[expenseDoc, entity.Expense](ctx, r.d.c, "update egreso", r.d.collections.Expenses, id, data)
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.d.c, "delete egreso", r.d.collections.Expenses, id)
}

type profileRepository struct {
	d *Driver
}

func (r *profileRepository) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	profiles, err := listDocuments[profileDoc, entity.BusinessProfile](ctx, r.d.c, "get configuracion",
		r.d.collections.Profile, limit(1))
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, apperror.NewStoreError(BackendName, "get configuracion", apperror.KindNotFound, errEmptyCollection)
	}
	return &profiles[0], nil
}

// Save updates the existing profile document, or creates one when there is none
func (r *profileRepository) Save(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	attrs := newProfileAttrs(profile)

	existing, err := r.Get(ctx)
	switch {
	case apperror.IsNotFound(err):
		return createDocument[profileDoc, entity.BusinessProfile](ctx, r.d.c, "create configuracion",
			r.d.collections.Profile, attrs)
	case err != nil:
		return nil, err
	}

	data := map[string]interface{}{
		"nombreNegocio":  attrs.NombreNegocio,
		"ruc":            attrs.Ruc,
		"direccion":      attrs.Direccion,
		"telefono":       attrs.Telefono,
		"email":          attrs.Email,
		"moneda":         attrs.Moneda,
		"mensajeFactura": attrs.MensajeFactura,
	}
	return updateDocument[profileDoc, entity.BusinessProfile](ctx, r.d.c, "update configuracion",
		r.d.collections.Profile, existing.ID, data)
}

type printedInvoiceRepository struct {
	d *Driver
}

func (r *printedInvoiceRepository) List(ctx context.Context) ([]entity.PrintedInvoice, error) {
	return listDocuments[printedInvoiceDoc, entity.PrintedInvoice](ctx, r.d.c, "list facturas_impresas",
		r.d.collections.PrintedInvoices, orderDesc(attrCreatedAt), limit(r.d.pageSize))
}

func (r *printedInvoiceRepository) Create(ctx context.Context, invoice *entity.PrintedInvoice) (*entity.PrintedInvoice, error) {
	attrs := printedInvoiceAttrs{
		PedidoID:      invoice.OrderID,
		NumeroFactura: invoice.InvoiceNo,
		Cliente:       invoice.CustomerName,
		Total:         invoice.Total.Float64(),
		ImpresoEn:     invoice.PrintedAt.UTC().Format(time.RFC3339Nano),
	}
	return createDocument[printedInvoiceDoc, entity.PrintedInvoice](ctx, r.d.c, "create factura_impresa",
		r.d.collections.PrintedInvoices, attrs)
}
