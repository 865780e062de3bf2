package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/pkg/printer"
)

// PrinterService formats order tickets and sends them to the ticket printer.
type PrinterService struct {
	printer printer.Printer
	store   *store.Store
	orders  *OrderService
	width   int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, st *store.Store, orders *OrderService, width int) *PrinterService {
	if p == nil {
		p = printer.None()
	}
	return &PrinterService{printer: p, store: st, orders: orders, width: width}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printer.Kind() != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       s.printer.Kind(),
	}
}

// PrintResult is the outcome of printing one ticket
type PrintResult struct {
	Record  *entity.PrintedInvoice `json:"record"`
	Printer string                 `json:"printer"`
}

// PrintOrder prints the ticket of an order and records the print. Without a
// hardware printer the ticket is printed by the client and only recorded.
func (s *PrinterService) PrintOrder(ctx context.Context, orderID string) (*PrintResult, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	profile := s.store.GetProfile(ctx)

	data := FormatTicket(profile, order, s.width)
	if err := s.printer.Print(ctx, data); err != nil {
		log.Printf("Printer error (order %s): %v", order.InvoiceNo, err)
		return nil, fmt.Errorf("failed to print ticket: %w", err)
	}

	record, err := s.orders.RecordPrint(ctx, order)
	if err != nil {
		return nil, err
	}
	return &PrintResult{Record: record, Printer: s.printer.Kind()}, nil
}

// FormatTicket renders an order ticket as ESC/POS bytes
func FormatTicket(profile *entity.BusinessProfile, order *entity.Order, width int) []byte {
	doc := printer.NewDocument(width)
	currency := profile.Currency

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(profile.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if profile.TaxID != "" {
		doc.Text("RUC: " + profile.TaxID)
	}
	if profile.Address != "" {
		doc.Text(profile.Address)
	}
	if profile.Phone != "" {
		doc.Text("Tel: " + profile.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Ticket:", order.InvoiceNo).
		KeyValue("Fecha:", order.ReceivedOn).
		KeyValue("Cliente:", order.CustomerName)
	if order.Phone != "" {
		doc.KeyValue("Telefono:", order.Phone)
	}
	if order.DeliveryDate != "" {
		doc.KeyValue("Entrega:", order.DeliveryDate)
	}
	doc.Separator('-')

	for _, item := range order.Items {
		doc.ItemLine(item.Quantity, "x", item.ServiceName, item.Subtotal.String())
	}

	doc.Separator('-').
		KeyValue("Subtotal:", currency+" "+order.Subtotal.String())
	if order.Discount > 0 {
		doc.KeyValue("Descuento:", "-"+currency+" "+order.Discount.String())
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", currency+" "+order.Total.String()).
		SetBold(false).
		KeyValue("Pago:", string(order.PaymentMethod))
	if order.Notes != "" {
		doc.Separator('-').Text(order.Notes)
	}

	doc.Separator('-')
	if profile.InvoiceFooter != "" {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text(profile.InvoiceFooter).
			SetAlign(printer.AlignLeft)
	}

	return doc.FeedLines(3).PartialCut().Bytes()
}
