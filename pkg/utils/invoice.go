package utils

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"
)

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// NextInvoiceNo derives the invoice number that follows latest.
// The trailing digits of latest are incremented (1 when latest is empty or has
// none) and formatted as FAC-YYMM-NNNN for the month of now. The sequence does
// not restart with the month.
func NextInvoiceNo(latest string, now time.Time) string {
	seq := 1
	if m := trailingDigits.FindStringSubmatch(latest); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("FAC-%s-%04d", now.Format("0601"), seq)
}

// FallbackInvoiceNo is used when the latest remote invoice cannot be read
func FallbackInvoiceNo(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "FAC-" + ms
}

// LocalInvoiceNo formats the local counter value as F<YYYY><MM>-NNNNN
func LocalInvoiceNo(counter int64, now time.Time) string {
	return fmt.Sprintf("F%s-%05d", now.Format("200601"), counter)
}

// NewLocalID returns a time-ordered id with a random suffix for records
// created in the local store. Not coordinated with any remote id space.
func NewLocalID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}
