package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "Lavanderia Espanola", Fold("Lavandería Española"))
	assert.Equal(t, "Gracias por su preferencia!", Fold("¡Gracias por su preferencia!"))
	assert.Equal(t, "Pte. Piedra", Fold("Pte. Piedra"))
}

func TestDocument_Lines(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("TOTAL:", "41.00").
		ItemLine(2.5, "kg", "Lavado por Kilo", "20.00").
		Text("una linea bastante larga para envolver")

	out := doc.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte{ESC, '@'}))
	assert.Contains(t, string(out), "TOTAL:         41.00\n")
	assert.Contains(t, string(out), "2.5kg Lavado p 20.00\n")
	assert.Contains(t, string(out), "una linea bastante\nlarga para envolver\n")
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "1.25", FormatQuantity(1.25))
}

func TestOpen(t *testing.T) {
	p, err := Open(Config{})
	require.NoError(t, err)
	assert.Equal(t, "none", p.Kind())
	assert.NoError(t, p.Print(context.Background(), []byte("x")))

	_, err = Open(Config{Type: "usb"})
	assert.Error(t, err)

	_, err = Open(Config{Type: "bluetooth"})
	assert.Error(t, err)

	p, err = Open(Config{Type: "network", Address: "127.0.0.1:9100"})
	require.NoError(t, err)
	assert.Equal(t, "network", p.Kind())
}
