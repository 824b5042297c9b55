package payment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/infrastructure/payment"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"59.90", 5990},
		{"599.90", 59990},
		{"0.01", 1},
		{"100", 10000},
		{"10.005", 1001}, // meia unidade arredonda para cima
	}
	for _, tc := range cases {
		got := payment.MinorUnits(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "MinorUnits(%s)", tc.in)
	}
}
