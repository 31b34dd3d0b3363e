// Package currency formatea montos decimales con los símbolos y separadores ISO 4217
// de github.com/Rhymond/go-money.
package currency

import (
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Known indica si el código ISO 4217 es reconocido.
func Known(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// Format devuelve el monto con símbolo y separadores de la moneda (INR → "₹67,883.66").
// Un código desconocido se muestra como "<monto> <código>".
func Format(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// Symbol devuelve el grafema de la moneda o el código si no se conoce.
func Symbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if cur := money.GetCurrency(code); cur != nil {
		return cur.Grapheme
	}
	return code
}
