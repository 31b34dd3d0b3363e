package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nexus-inventory/pkg/currency"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹67,883.66", currency.Format(decimal.RequireFromString("67883.66"), "INR"))
	assert.Equal(t, "$1,234.50", currency.Format(decimal.RequireFromString("1234.5"), "usd"))
	assert.Equal(t, "$0.01", currency.Format(decimal.RequireFromString("0.005"), "USD"))
}

func TestFormat_UnknownCode(t *testing.T) {
	assert.Equal(t, "12.30 XYZ", currency.Format(decimal.RequireFromString("12.3"), "xyz"))
	assert.False(t, currency.Known("XYZ"))
	assert.True(t, currency.Known("inr"))
	assert.Equal(t, "XYZ", currency.Symbol("xyz"))
	assert.Equal(t, "₹", currency.Symbol("INR"))
}
