package presenters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{49.99, "$49.99"},
		{1234.5, "$1,234.50"},
		{-12, "-$12.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.amount))
	}
}

func TestHoursAgo(t *testing.T) {
	now := time.Date(2025, 8, 12, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", HoursAgo(0, now))
	assert.Equal(t, "2 hours ago", HoursAgo(2, now))
	assert.Equal(t, "1 day ago", HoursAgo(24, now))
}

func TestPercentAndCount(t *testing.T) {
	assert.Equal(t, "10%", Percent(0.10))
	assert.Equal(t, "12,500", Count(12500))
}
