package utils

import (
	"fmt"
	"math"
	"time"

	"rentafleet-backend/internal/domain"
)

// DateLayout is the wire format for all calendar dates. No time-of-day
// component is ever exchanged.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC calendar date.
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return d, nil
}

// DaysInclusive returns the rental duration in whole days with both endpoints
// counted, so a same-day rental lasts 1 day. Returns 0 or a negative value
// when end precedes start.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Round2 rounds a monetary amount half-up to 2 decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ComputeRentalCost prices a rental: inclusive day count times the vehicle's
// daily rate, rounded to 2 decimals. Both dates must parse and the end date
// must not precede the start date.
func ComputeRentalCost(dailyRate float64, startStr, endStr string) (float64, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return 0, domain.ErrInvalidDateRange
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return 0, domain.ErrInvalidDateRange
	}

	days := DaysInclusive(start, end)
	if days < 1 {
		return 0, domain.ErrInvalidDateRange
	}

	return Round2(float64(days) * dailyRate), nil
}

// Overlaps reports whether two inclusive date intervals conflict under the
// non-strict rule: they overlap unless one ends strictly before the other
// starts. A shared boundary day counts as a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(aEnd.Before(bStart) || aStart.After(bEnd))
}
