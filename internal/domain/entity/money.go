package entity

import (
	"encoding/json"
	"math"
	"strconv"
)

// Money is an amount in cents. It is serialized as a decimal number so the
// wire format matches what every backend stores.
type Money int64

// NewMoney converts a decimal amount to cents, rounding half away from zero
func NewMoney(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float64 returns the amount as a decimal
func (m Money) Float64() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float64(), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float64(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = NewMoney(f)
	return nil
}

// Mul returns the amount multiplied by a (possibly fractional) quantity
func (m Money) Mul(quantity float64) Money {
	return Money(math.Round(float64(m) * quantity))
}
