package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Anchos de los consecutivos.
const (
	InventorySeqWidth = 3 // INV001
	InvoiceSeqWidth   = 3 // INV2023001 (después del año)
)

// FormatSequenceID formatea un ID de ancho fijo: prefix + n con width dígitos (INV, 7, 3 → INV007).
// Si n no cabe en width dígitos se usa el número completo.
func FormatSequenceID(prefix string, n, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// InventoryID ID del artículo número n.
func InventoryID(n int) string {
	return FormatSequenceID(InventoryIDPrefix, n, InventorySeqWidth)
}

// InvoiceID ID de la factura número n del año dado.
func InvoiceID(year, n int) string {
	return FormatSequenceID(fmt.Sprintf("%s%04d", InvoiceIDPrefix, year), n, InvoiceSeqWidth)
}

// ParseSequence extrae el consecutivo de un ID. Para facturas se descarta el año (4 dígitos).
// Devuelve false si el ID no sigue el formato.
func ParseSequence(id, prefix string, yearDigits int) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	rest := id[len(prefix):]
	if len(rest) <= yearDigits {
		return 0, false
	}
	n, err := strconv.Atoi(rest[yearDigits:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
