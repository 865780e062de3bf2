package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends raw ESC/POS data to a ticket printer.
type Printer interface {
	Print(ctx context.Context, data []byte) error
	// Kind is "usb", "network" or "none"
	Kind() string
	IsConnected(ctx context.Context) bool
}

// Config selects and addresses the ticket printer
type Config struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

// Open creates the printer described by cfg. An empty type means no printer.
func Open(cfg Config) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: usb path is required for usb printers")
		}
		return &devicePrinter{path: cfg.USBPath}, nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printers")
		}
		return &tcpPrinter{address: cfg.Address, dialTimeout: 5 * time.Second, writeTimeout: 10 * time.Second}, nil
	case "none", "":
		return None(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", cfg.Type)
	}
}

// devicePrinter writes to a character device such as /dev/usb/lp0
type devicePrinter struct {
	path string
}

func (p *devicePrinter) Print(_ context.Context, data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) Kind() string { return "usb" }

func (p *devicePrinter) IsConnected(context.Context) bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// tcpPrinter speaks raw port 9100
type tcpPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

func (p *tcpPrinter) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: p.dialTimeout}
	return d.DialContext(ctx, "tcp", p.address)
}

func (p *tcpPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dial(ctx)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *tcpPrinter) Kind() string { return "network" }

func (p *tcpPrinter) IsConnected(ctx context.Context) bool {
	conn, err := p.dial(ctx)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

type nonePrinter struct{}

// None returns a printer that discards tickets. Used when tickets are printed
// by the browser.
func None() Printer {
	return nonePrinter{}
}

func (nonePrinter) Print(context.Context, []byte) error { return nil }
func (nonePrinter) Kind() string                        { return "none" }
func (nonePrinter) IsConnected(context.Context) bool    { return false }
