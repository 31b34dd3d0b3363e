// Package validation envuelve go-playground/validator y traduce sus errores a *domain.FieldError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
)

// Validator valida DTOs con tags `validate`.
type Validator struct {
	v *validator.Validate
}

// New crea el validador con las reglas propias: category, invoice_status y decimales comparables.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// decimal.Decimal se compara como float64 para min/max/gt.
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		fl, _ := d.Float64()
		return fl
	}, decimal.Decimal{})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || entity.IsCategory(s)
	})
	_ = v.RegisterValidation("invoice_status", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseInvoiceStatus(fl.Field().String())
		return ok
	})
	return &Validator{v: v}
}

// Validate valida la estructura. El primer campo rechazado se devuelve como *domain.FieldError.
func (x *Validator) Validate(i interface{}) error {
	err := x.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewFieldError(fieldPath(fe.Namespace()), reason(fe))
	}
	return fmt.Errorf("validación: %w", err)
}

// fieldPath quita el nombre del struct raíz: "InvoiceInput.items[0].quantity" -> "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min", "gte":
		return fmt.Sprintf("debe ser >= %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser > %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("debe ser <= %s", fe.Param())
	case "email":
		return "email inválido"
	case "category":
		return fmt.Sprintf("categoría desconocida %q", fe.Value())
	case "invoice_status":
		return fmt.Sprintf("estado desconocido %q", fe.Value())
	case "datetime":
		return fmt.Sprintf("fecha inválida, formato %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
