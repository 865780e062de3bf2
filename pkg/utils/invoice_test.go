package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextInvoiceNo(t *testing.T) {
	jan2025 := time.Date(2025, time.January, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		latest string
		now    time.Time
		want   string
	}{
		{"increments trailing sequence", "FAC-2501-0007", jan2025, "FAC-2501-0008"},
		{"no previous invoice", "", jan2025, "FAC-2501-0001"},
		{"no trailing digits", "FAC-", jan2025, "FAC-2501-0001"},
		{"does not reset on new month", "FAC-2412-0041", jan2025, "FAC-2501-0042"},
		{"widens past four digits", "FAC-2501-9999", jan2025, "FAC-2501-10000"},
		{"local style number", "F202501-00003", jan2025, "FAC-2501-0004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextInvoiceNo(tt.latest, tt.now))
		})
	}
}

func TestLocalInvoiceNo(t *testing.T) {
	now := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "F202503-00004", LocalInvoiceNo(4, now))
}

func TestFallbackInvoiceNo(t *testing.T) {
	now := time.UnixMilli(1736851234567)
	assert.Equal(t, "FAC-234567", FallbackInvoiceNo(now))
}

func TestNewLocalID(t *testing.T) {
	now := time.UnixMilli(1736851234567)

	a := NewLocalID(now)
	b := NewLocalID(now)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "m5wcdpmv"), "id should start with base36 millis, got %s", a)
}
