package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBooking_DurationHours(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{name: "whole hours", end: start.Add(4 * time.Hour), expected: 4},
		{name: "rounds up past half hour", end: start.Add(3*time.Hour + 40*time.Minute), expected: 4},
		{name: "rounds down under half hour", end: start.Add(3*time.Hour + 20*time.Minute), expected: 3},
		{name: "zero length", end: start, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{StartTime: start, EndTime: tt.end}
			assert.Equal(t, tt.expected, b.DurationHours())
		})
	}
}

func TestBooking_TotalCost(t *testing.T) {
	b := &Booking{DepositAmount: decimal.NewFromFloat(123.45)}
	assert.True(t, b.TotalCost().Equal(decimal.NewFromFloat(123.45)))
}
