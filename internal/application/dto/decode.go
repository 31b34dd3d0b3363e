package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/domain"
)

// UnmarshalJSON decodifica los importes aparte para reportar "costPrice":"abc" como campo inválido.
func (in *InventoryItemInput) UnmarshalJSON(b []byte) error {
	type alias InventoryItemInput
	aux := struct {
		*alias
		CostPrice    json.RawMessage `json:"costPrice"`
		SellingPrice json.RawMessage `json:"sellingPrice"`
	}{alias: (*alias)(in)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	var err error
	if in.CostPrice, err = decodeAmount("costPrice", aux.CostPrice); err != nil {
		return err
	}
	in.SellingPrice, err = decodeAmount("sellingPrice", aux.SellingPrice)
	return err
}

// UnmarshalJSON igual que InventoryItemInput; los errores de cada línea llevan la ruta items[i].campo.
func (in *InvoiceInput) UnmarshalJSON(b []byte) error {
	type alias InvoiceInput
	aux := struct {
		*alias
		Items    []json.RawMessage `json:"items"`
		Subtotal json.RawMessage   `json:"subtotal"`
		Tax      json.RawMessage   `json:"tax"`
		Discount json.RawMessage   `json:"discount"`
		Total    json.RawMessage   `json:"total"`
	}{alias: (*alias)(in)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	in.Items = nil
	if aux.Items != nil {
		in.Items = make([]InvoiceLineInput, len(aux.Items))
		for i, raw := range aux.Items {
			if err := json.Unmarshal(raw, &in.Items[i]); err != nil {
				return lineError(i, err)
			}
		}
	}

	amounts := []struct {
		field string
		raw   json.RawMessage
		dst   **decimal.Decimal
	}{
		{"subtotal", aux.Subtotal, &in.Subtotal},
		{"tax", aux.Tax, &in.Tax},
		{"discount", aux.Discount, &in.Discount},
		{"total", aux.Total, &in.Total},
	}
	for _, a := range amounts {
		d, err := decodeAmount(a.field, a.raw)
		if err != nil {
			return err
		}
		*a.dst = d
	}
	return nil
}

// UnmarshalJSON línea de factura con precio validado.
func (l *InvoiceLineInput) UnmarshalJSON(b []byte) error {
	type alias InvoiceLineInput
	aux := struct {
		*alias
		Price json.RawMessage `json:"price"`
	}{alias: (*alias)(l)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d, err := decodeAmount("price", aux.Price)
	if err != nil {
		return err
	}
	l.Price = decimal.Zero
	if d != nil {
		l.Price = *d
	}
	return nil
}

// decodeAmount ausente o null = nil. Acepta número o string numérico.
func decodeAmount(field string, raw json.RawMessage) (*decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil, domain.NewFieldError(field, "debe ser un número")
	}
	return &d, nil
}

func lineError(i int, err error) error {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return domain.NewFieldError(fmt.Sprintf("items[%d].%s", i, fe.Field), fe.Reason)
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return domain.NewFieldError(fmt.Sprintf("items[%d].%s", i, te.Field), "tipo inválido, se esperaba "+te.Type.String())
	}
	return err
}
