package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yalejo-dev/gyie_backend/internal/utils"
)

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "0"},
		{name: "below one group", amount: decimal.NewFromInt(999), want: "999"},
		{name: "exactly one group", amount: decimal.NewFromInt(1000), want: "1.000"},
		{name: "two million", amount: decimal.NewFromInt(2000000), want: "2.000.000"},
		{name: "uneven leading group", amount: decimal.NewFromInt(12345678), want: "12.345.678"},
		{name: "fraction truncated", amount: decimal.NewFromFloat(50000.75), want: "50.000"},
		{name: "negative amount", amount: decimal.NewFromInt(-1234567), want: "-1.234.567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatThousands(tt.amount))
		})
	}
}
