package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DukeRupert/felo-pricing/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   domain.CurrencyCode
		want   string
	}{
		{"yen grouped without symbol", 1234567, domain.CurrencyJPY, "1,234,567"},
		{"dollar grouped with symbol", 1234567, domain.CurrencyUSD, "$1,234,567"},
		{"small yen", 1200, domain.CurrencyJPY, "1,200"},
		{"yen below a thousand", 999, domain.CurrencyJPY, "999"},
		{"fractional dollars kept", 8.2, domain.CurrencyUSD, "$8.2"},
		{"fractional dollars kept 9.9", 9.9, domain.CurrencyUSD, "$9.9"},
		{"yuan", 1500, domain.CurrencyCNY, "¥1,500"},
		{"taiwan dollar", 19999, domain.CurrencyTWD, "NT$19,999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount, tt.code))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "99,999", FormatAmount(99999, domain.CurrencyJPY))
	assert.Equal(t, "660", FormatAmount(660, domain.CurrencyUSD))
	assert.Equal(t, "6,600", FormatAmount(6600, domain.CurrencyTWD))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "500", FormatCount(500))
	assert.Equal(t, "5,000", FormatCount(5000))
	assert.Equal(t, "20,000", FormatCount(20000))
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "JPY/月", UnitLabel(domain.CurrencyJPY))
	assert.Equal(t, "TWD/月", UnitLabel(domain.CurrencyTWD))
}

func TestPerHourRate(t *testing.T) {
	assert.Equal(t, 1100.0, PerHourRate(33000, 30))
	assert.Equal(t, 1000.0, PerHourRate(100000, 100))

	// Display rounding happens only in RoundedPerHour.
	assert.InDelta(t, 666.666, PerHourRate(4000, 6), 0.001)
	assert.Equal(t, 667.0, RoundedPerHour(4000, 6))
	assert.Equal(t, 720.0, RoundedPerHour(4320, 6))
}
