package supabase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/internal/domain/enum"
	"github.com/sangkips/laundrypro-api/internal/infrastructure/remote"
	"gorm.io/gorm"
)

// Rows mirror the Supabase tables. Column names are the Spanish snake_case
// names the dashboard project was created with.

type serviceRow struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Nombre      string    `gorm:"column:nombre;size:255;not null"`
	Descripcion string    `gorm:"column:descripcion;type:text"`
	Precio      float64   `gorm:"column:precio;type:numeric(10,2);not null"`
	Unidad      string    `gorm:"column:unidad;size:20;not null"`
	Activo      bool      `gorm:"column:activo;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index"`
}

func (serviceRow) TableName() string {
	return "servicios"
}

// BeforeCreate generates a UUID before inserting a new row
func (r *serviceRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func newServiceRow(s *entity.Service) *serviceRow {
	return &serviceRow{
		Nombre:      s.Name,
		Descripcion: s.Description,
		Precio:      s.Price.Float64(),
		Unidad:      string(s.Unit),
		Activo:      s.Active,
	}
}

func (r *serviceRow) entity() entity.Service {
	return entity.Service{
		ID:          r.ID,
		Name:        r.Nombre,
		Description: r.Descripcion,
		Price:       entity.NewMoney(r.Precio),
		Unit:        enum.PricingUnit(r.Unidad),
		Active:      r.Activo,
		CreatedAt:   r.CreatedAt,
	}
}

type orderRow struct {
	ID             string           `gorm:"type:uuid;primaryKey"`
	NumeroFactura  string           `gorm:"column:numero_factura;size:50;not null"`
	Cliente        string           `gorm:"column:cliente;size:255;not null"`
	Telefono       string           `gorm:"column:telefono;size:50"`
	Servicios      remote.LineItems `gorm:"column:servicios;type:jsonb"`
	Subtotal       float64          `gorm:"column:subtotal;type:numeric(10,2)"`
	Descuento      float64          `gorm:"column:descuento;type:numeric(10,2)"`
	Total          float64          `gorm:"column:total;type:numeric(10,2)"`
	Estado         string           `gorm:"column:estado;size:20;not null"`
	MetodoPago     string           `gorm:"column:metodo_pago;size:20"`
	Notas          string           `gorm:"column:notas;type:text"`
	FechaRecepcion remote.Date      `gorm:"column:fecha_recepcion;type:date"`
	FechaEntrega   remote.Date      `gorm:"column:fecha_entrega;type:date"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime;index"`
}

func (orderRow) TableName() string {
	return "pedidos"
}

func (r *orderRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func newOrderRow(o *entity.Order) *orderRow {
	return &orderRow{
		NumeroFactura:  o.InvoiceNo,
		Cliente:        o.CustomerName,
		Telefono:       o.Phone,
		Servicios:      remote.NewLineItems(o.Items),
		Subtotal:       o.Subtotal.Float64(),
		Descuento:      o.Discount.Float64(),
		Total:          o.Total.Float64(),
		Estado:         string(o.Status),
		MetodoPago:     string(o.PaymentMethod),
		Notas:          o.Notes,
		FechaRecepcion: remote.Date(o.ReceivedOn),
		FechaEntrega:   remote.Date(o.DeliveryDate),
	}
}

func (r *orderRow) entity() entity.Order {
	return entity.Order{
		ID:            r.ID,
		InvoiceNo:     r.NumeroFactura,
		CustomerName:  r.Cliente,
		Phone:         r.Telefono,
		Items:         r.Servicios.Entity(),
		Subtotal:      entity.NewMoney(r.Subtotal),
		Discount:      entity.NewMoney(r.Descuento),
		Total:         entity.NewMoney(r.Total),
		Status:        enum.OrderStatus(r.Estado),
		PaymentMethod: enum.PaymentMethod(r.MetodoPago),
		Notes:         r.Notas,
		ReceivedOn:    string(r.FechaRecepcion),
		DeliveryDate:  string(r.FechaEntrega),
		CreatedAt:     r.CreatedAt,
	}
}

type incomeRow struct {
	ID        string      `gorm:"type:uuid;primaryKey"`
	Concepto  string      `gorm:"column:concepto;size:255;not null"`
	Monto     float64     `gorm:"column:monto;type:numeric(10,2);not null"`
	Categoria string      `gorm:"column:categoria;size:20;not null"`
	PedidoID  *string     `gorm:"column:pedido_id;size:64"`
	Fecha     remote.Date `gorm:"column:fecha;type:date;index"`
	Notas     string      `gorm:"column:notas;type:text"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (incomeRow) TableName() string {
	return "ingresos"
}

func (r *incomeRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func newIncomeRow(i *entity.Income) *incomeRow {
	row := &incomeRow{
		Concepto:  i.Concept,
		Monto:     i.Amount.Float64(),
		Categoria: string(i.Category),
		Fecha:     remote.Date(i.Date),
		Notas:     i.Notes,
	}
	if i.OrderID != "" {
		orderID := i.OrderID
		row.PedidoID = &orderID
	}
	return row
}

func (r *incomeRow) entity() entity.Income {
	income := entity.Income{
		ID:        r.ID,
		Concept:   r.Concepto,
		Amount:    entity.NewMoney(r.Monto),
		Category:  enum.IncomeCategory(r.Categoria),
		Date:      string(r.Fecha),
		Notes:     r.Notas,
		CreatedAt: r.CreatedAt,
	}
	if r.PedidoID != nil {
		income.OrderID = *r.PedidoID
	}
	return income
}

type expenseRow struct {
	ID        string      `gorm:"type:uuid;primaryKey"`
	Concepto  string      `gorm:"column:concepto;size:255;not null"`
	Monto     float64     `gorm:"column:monto;type:numeric(10,2);not null"`
	Categoria string      `gorm:"column:categoria;size:20;not null"`
	Fecha     remote.Date `gorm:"column:fecha;type:date;index"`
	Notas     string      `gorm:"column:notas;type:text"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (expenseRow) TableName() string {
	return "egresos"
}

func (r *expenseRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func newExpenseRow(e *entity.Expense) *expenseRow {
	return &expenseRow{
		Concepto:  e.Concept,
		Monto:     e.Amount.Float64(),
		Categoria: string(e.Category),
		Fecha:     remote.Date(e.Date),
		Notas:     e.Notes,
	}
}

func (r *expenseRow) entity() entity.Expense {
	return entity.Expense{
		ID:        r.ID,
		Concept:   r.Concepto,
		Amount:    entity.NewMoney(r.Monto),
		Category:  enum.ExpenseCategory(r.Categoria),
		Date:      string(r.Fecha),
		Notes:     r.Notas,
		CreatedAt: r.CreatedAt,
	}
}

type profileRow struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	NombreNegocio  string    `gorm:"column:nombre_negocio;size:255;not null"`
	Ruc            string    `gorm:"column:ruc;size:20"`
	Direccion      string    `gorm:"column:direccion;size:255"`
	Telefono       string    `gorm:"column:telefono;size:50"`
	Email          string    `gorm:"column:email;size:255"`
	Moneda         string    `gorm:"column:moneda;size:10"`
	MensajeFactura string    `gorm:"column:mensaje_factura;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (profileRow) TableName() string {
	return "configuracion"
}

func (r *profileRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *profileRow) entity() entity.BusinessProfile {
	return entity.BusinessProfile{
		ID:            r.ID,
		BusinessName:  r.NombreNegocio,
		TaxID:         r.Ruc,
		Address:       r.Direccion,
		Phone:         r.Telefono,
		Email:         r.Email,
		Currency:      r.Moneda,
		InvoiceFooter: r.MensajeFactura,
	}
}

func newProfileRow(p *entity.BusinessProfile) *profileRow {
	return &profileRow{
		NombreNegocio:  p.BusinessName,
		Ruc:            p.TaxID,
		Direccion:      p.Address,
		Telefono:       p.Phone,
		Email:          p.Email,
		Moneda:         p.Currency,
		MensajeFactura: p.InvoiceFooter,
	}
}

// profileColumns returns the writable profile columns
func profileColumns(p *entity.BusinessProfile) map[string]interface{} {
	return map[string]interface{}{
		"nombre_negocio":  p.BusinessName,
		"ruc":             p.TaxID,
		"direccion":       p.Address,
		"telefono":        p.Phone,
		"email":           p.Email,
		"moneda":          p.Currency,
		"mensaje_factura": p.InvoiceFooter,
	}
}

type printedInvoiceRow struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	PedidoID      string    `gorm:"column:pedido_id;size:64;index"`
	NumeroFactura string    `gorm:"column:numero_factura;size:50"`
	Cliente       string    `gorm:"column:cliente;size:255"`
	Total         float64   `gorm:"column:total;type:numeric(10,2)"`
	ImpresoEn     time.Time `gorm:"column:impreso_en"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (printedInvoiceRow) TableName() string {
	return "facturas_impresas"
}

func (r *printedInvoiceRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *printedInvoiceRow) entity() entity.PrintedInvoice {
	return entity.PrintedInvoice{
		ID:           r.ID,
		OrderID:      r.PedidoID,
		InvoiceNo:    r.NumeroFactura,
		CustomerName: r.Cliente,
		Total:        entity.NewMoney(r.Total),
		PrintedAt:    r.ImpresoEn,
		CreatedAt:    r.CreatedAt,
	}
}
