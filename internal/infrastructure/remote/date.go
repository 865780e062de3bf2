package remote

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
)

// Date is a calendar date column. It always reads back as YYYY-MM-DD whatever
// the driver hands over, and an empty value is stored as NULL.
type Date string

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(entity.DateLayout))
	case string:
		*d = Date(trimDate(v))
	case []byte:
		*d = Date(trimDate(string(v)))
	default:
		return fmt.Errorf("unsupported date type %T", value)
	}
	return nil
}

func trimDate(s string) string {
	if len(s) > len(entity.DateLayout) {
		return s[:len(entity.DateLayout)]
	}
	return s
}
