package appwrite

import (
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/remote"
)

// meta holds the system attributes Appwrite adds to every document
type meta struct {
	ID        string    `json:"$id"`
	CreatedAt time.Time `json:"$createdAt"`
}

type serviceAttrs struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Unidad      string  `json:"unidad"`
	Activo      bool    `json:"activo"`
}

type serviceDoc struct {
	meta
	serviceAttrs
}

func newServiceAttrs(s *entity.Service) serviceAttrs {
	return serviceAttrs{
		Nombre:      s.Name,
		Descripcion: s.Description,
		Precio:      s.Price.Float64(),
		Unidad:      string(s.Unit),
		Activo:      s.Active,
	}
}

func (d *serviceDoc) entity() (entity.Service, error) {
	return entity.Service{
		ID:          d.ID,
		Name:        d.Nombre,
		Description: d.Descripcion,
		Price:       entity.NewMoney(d.Precio),
		Unit:        enum.PricingUnit(d.Unidad),
		Active:      d.Activo,
		CreatedAt:   d.CreatedAt,
	}, nil
}

// orderAttrs keeps the line items as JSON text; the collection has no
// nested attribute type for them
type orderAttrs struct {
	NumeroFactura  string  `json:"numeroFactura"`
	Cliente        string  `json:"cliente"`
	Telefono       string  `json:"telefono"`
	Servicios      string  `json:"servicios"`
	Subtotal       float64 `json:"subtotal"`
	Descuento      float64 `json:"descuento"`
	Total          float64 `json:"total"`
	Estado         string  `json:"estado"`
	MetodoPago     string  `json:"metodoPago"`
	Notas          string  `json:"notas"`
	FechaRecepcion string  `json:"fechaRecepcion"`
	FechaEntrega   string  `json:"fechaEntrega"`
}

type orderDoc struct {
	meta
	orderAttrs
}

func newOrderAttrs(o *entity.Order) (orderAttrs, error) {
	items, err := remote.NewLineItems(o.Items).Encode()
	if err != nil {
		return orderAttrs{}, err
	}
	return orderAttrs{
		NumeroFactura:  o.InvoiceNo,
		Cliente:        o.CustomerName,
		Telefono:       o.Phone,
		Servicios:      items,
		Subtotal:       o.Subtotal.Float64(),
		Descuento:      o.Discount.Float64(),
		Total:          o.Total.Float64(),
		Estado:         string(o.Status),
		MetodoPago:     string(o.PaymentMethod),
		Notas:          o.Notes,
		FechaRecepcion: o.ReceivedOn,
		FechaEntrega:   o.DeliveryDate,
	}, nil
}

func (d *orderDoc) entity() (entity.Order, error) {
	items, err := remote.DecodeLineItems(d.Servicios)
	if err != nil {
		return entity.Order{}, err
	}
	return entity.Order{
		ID:            d.ID,
		InvoiceNo:     d.NumeroFactura,
		CustomerName:  d.Cliente,
		Phone:         d.Telefono,
		Items:         items.Entity(),
		Subtotal:      entity.NewMoney(d.Subtotal),
		Discount:      entity.NewMoney(d.Descuento),
		Total:         entity.NewMoney(d.Total),
		Status:        enum.OrderStatus(d.Estado),
		PaymentMethod: enum.PaymentMethod(d.MetodoPago),
		Notes:         d.Notas,
		ReceivedOn:    d.FechaRecepcion,
		DeliveryDate:  d.FechaEntrega,
		CreatedAt:     d.CreatedAt,
	}, nil
}

type incomeAttrs struct {
	Concepto  string  `json:"concepto"`
	Monto     float64 `json:"monto"`
	Categoria string  `json:"categoria"`
	PedidoID  string  `json:"pedidoId"`
	Fecha     string  `json:"fecha"`
	Notas     string  `json:"notas"`
}

type incomeDoc struct {
	meta
	incomeAttrs
}

func newIncomeAttrs(i *entity.Income) incomeAttrs {
	return incomeAttrs{
		Concepto:  i.Concept,
		Monto:     i.Amount.Float64(),
		Categoria: string(i.Category),
		PedidoID:  i.OrderID,
		Fecha:     i.Date,
		Notas:     i.Notes,
	}
}

func (d *incomeDoc) entity() (entity.Income, error) {
	return entity.Income{
		ID:        d.ID,
		Concept:   d.Concepto,
		Amount:    entity.NewMoney(d.Monto),
		Category:  enum.IncomeCategory(d.Categoria),
		OrderID:   d.PedidoID,
		Date:      d.Fecha,
		Notes:     d.Notas,
		CreatedAt: d.CreatedAt,
	}, nil
}

type expenseAttrs struct {
	Concepto  string  `json:"concepto"`
	Monto     float64 `json:"monto"`
	Categoria string  `json:"categoria"`
	Fecha     string  `json:"fecha"`
	Notas     string  `json:"notas"`
}

type expenseDoc struct {
	meta
	expenseAttrs
}

func newExpenseAttrs(e *entity.Expense) expenseAttrs {
	return expenseAttrs{
		Concepto:  e.Concept,
		Monto:     e.Amount.Float64(),
		Categoria: string(e.Category),
		Fecha:     e.Date,
		Notas:     e.Notes,
	}
}

func (d *expenseDoc) entity() (entity.Expense, error) {
	return entity.Expense{
		ID:        d.ID,
		Concept:   d.Concepto,
		Amount:    entity.NewMoney(d.Monto),
		Category:  enum.ExpenseCategory(d.Categoria),
		Date:      d.Fecha,
		Notes:     d.Notas,
		CreatedAt: d.CreatedAt,
	}, nil
}

type profileAttrs struct {
	NombreNegocio  string `json:"nombreNegocio"`
	Ruc            string `json:"ruc"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
	Moneda         string `json:"moneda"`
	MensajeFactura string `json:"mensajeFactura"`
}

type profileDoc struct {
	meta
	profileAttrs
}

func newProfileAttrs(p *entity.BusinessProfile) profileAttrs {
	return profileAttrs{
		NombreNegocio:  p.BusinessName,
		Ruc:            p.TaxID,
		Direccion:      p.Address,
		Telefono:       p.Phone,
		Email:          p.Email,
		Moneda:         p.Currency,
		MensajeFactura: p.InvoiceFooter,
	}
}

func (d *profileDoc) entity() (entity.BusinessProfile, error) {
	return entity.BusinessProfile{
		ID:            d.ID,
		BusinessName:  d.NombreNegocio,
		TaxID:         d.Ruc,
		Address:       d.Direccion,
		Phone:         d.Telefono,
		Email:         d.Email,
		Currency:      d.Moneda,
		InvoiceFooter: d.MensajeFactura,
	}, nil
}

type printedInvoiceAttrs struct {
	PedidoID      string  `json:"pedidoId"`
	NumeroFactura string  `json:"numeroFactura"`
	Cliente       string  `json:"cliente"`
	Total         float64 `json:"total"`
	ImpresoEn     string  `json:"impresoEn"`
}

type printedInvoiceDoc struct {
	meta
	printedInvoiceAttrs
}

func (d *printedInvoiceDoc) entity() (entity.PrintedInvoice, error) {
	var printedAt time.Time
	if d.ImpresoEn != "" {
		t, err := time.Parse(time.RFC3339Nano, d.ImpresoEn)
		if err != nil {
			return entity.PrintedInvoice{}, err
		}
		printedAt = t
	}
	return entity.PrintedInvoice{
		ID:           d.ID,
		OrderID:      d.PedidoID,
		InvoiceNo:    d.NumeroFactura,
		CustomerName: d.Cliente,
		Total:        entity.NewMoney(d.Total),
		PrintedAt:    printedAt,
		CreatedAt:    d.CreatedAt,
	}, nil
}
