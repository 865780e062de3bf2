package service

import (
	"time"

	"github.com/sangkips/laundrypro-api/internal/domain/entity"
	"github.com/sangkips/laundrypro-api/pkg/apperror"
)

// Calendar answers "what day is it" in the business timezone
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc, now: time.Now}
}

// WithNow returns a copy of c that reads the time from now
func (c Calendar) WithNow(now func() time.Time) Calendar {
	c.now = now
	return c
}

func (c Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current date as YYYY-MM-DD
func (c Calendar) Today() string {
	return c.Now().Format(entity.DateLayout)
}

// MonthBounds returns the first and last date of the month containing t
func MonthBounds(t time.Time) (from, to string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(entity.DateLayout), last.Format(entity.DateLayout)
}

// checkDate rejects values that are not YYYY-MM-DD calendar dates
func checkDate(field, value string) error {
	if _, err := time.Parse(entity.DateLayout, value); err != nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: field, Message: "must be a date in YYYY-MM-DD format"},
		})
	}
	return nil
}

func fieldError(field, message string) error {
	return apperror.NewValidationError([]apperror.FieldError{{Field: field, Message: message}})
}
