package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentafleet-backend/internal/domain"
)

func TestComputeRentalCost(t *testing.T) {
	t.Run("Inclusive day count", func(t *testing.T) {
		// 3 calendar days, both endpoints counted
		cost, err := ComputeRentalCost(5000, "2025-03-01", "2025-03-03")
		assert.NoError(t, err)
		assert.Equal(t, 15000.0, cost)
	})

	t.Run("Single day rental costs one daily rate", func(t *testing.T) {
		cost, err := ComputeRentalCost(120.50, "2025-06-10", "2025-06-10")
		assert.NoError(t, err)
		assert.Equal(t, 120.50, cost)
	})

	t.Run("Result rounded to 2 decimals", func(t *testing.T) {
		// 3 days * 33.335 = 100.005 -> 100.01 half-up
		cost, err := ComputeRentalCost(33.335, "2025-01-01", "2025-01-03")
		assert.NoError(t, err)
		assert.Equal(t, 100.01, cost)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := ComputeRentalCost(5000, "2025-03-03", "2025-03-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("Malformed dates", func(t *testing.T) {
		_, err := ComputeRentalCost(5000, "03/01/2025", "2025-03-03")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		_, err = ComputeRentalCost(5000, "2025-03-01", "not-a-date")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("Zero rate is free", func(t *testing.T) {
		cost, err := ComputeRentalCost(0, "2025-03-01", "2025-03-05")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("Month boundary", func(t *testing.T) {
		// Jan 30 .. Feb 2 = 4 days
		cost, err := ComputeRentalCost(100, "2025-01-30", "2025-02-02")
		assert.NoError(t, err)
		assert.Equal(t, 400.0, cost)
	})
}

func TestDaysInclusive(t *testing.T) {
	d := func(s string) time.Time {
		parsed, err := ParseDate(s)
		assert.NoError(t, err)
		return parsed
	}

	assert.Equal(t, 1, DaysInclusive(d("2025-03-01"), d("2025-03-01")))
	assert.Equal(t, 3, DaysInclusive(d("2025-03-01"), d("2025-03-03")))
	assert.Equal(t, 31, DaysInclusive(d("2025-07-01"), d("2025-07-31")))
	assert.Equal(t, 0, DaysInclusive(d("2025-03-02"), d("2025-03-01")))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 100.01, Round2(100.005))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 15000.0, Round2(15000))
	assert.Equal(t, 33.33, Round2(33.334))
}

func TestOverlaps(t *testing.T) {
	d := func(s string) time.Time {
		parsed, err := ParseDate(s)
		assert.NoError(t, err)
		return parsed
	}

	cases := []struct {
		name                   string
		aStart, aEnd           string
		bStart, bEnd           string
		want                   bool
	}{
		{"Disjoint before", "2025-01-01", "2025-01-05", "2025-01-06", "2025-01-10", false},
		{"Disjoint after", "2025-01-06", "2025-01-10", "2025-01-01", "2025-01-05", false},
		{"Shared boundary day conflicts", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-10", true},
		{"Contained", "2025-01-01", "2025-01-31", "2025-01-10", "2025-01-12", true},
		{"Containing", "2025-01-10", "2025-01-12", "2025-01-01", "2025-01-31", true},
		{"Partial overlap", "2025-01-01", "2025-01-10", "2025-01-08", "2025-01-20", true},
		{"Identical intervals", "2025-01-01", "2025-01-05", "2025-01-01", "2025-01-05", true},
		{"Single day inside", "2025-01-05", "2025-01-05", "2025-01-01", "2025-01-10", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(d(tc.aStart), d(tc.aEnd), d(tc.bStart), d(tc.bEnd))
			assert.Equal(t, tc.want, got)

			// The relation is symmetric
			assert.Equal(t, got, Overlaps(d(tc.bStart), d(tc.bEnd), d(tc.aStart), d(tc.aEnd)))
		})
	}
}
