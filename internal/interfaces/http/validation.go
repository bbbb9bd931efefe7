package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/stock-manager/internal/domain"
)

var validate = newValidator()

// newValidator usa el nombre JSON del campo en los mensajes (product_id, no ProductID).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct aplica los tags `validate` del DTO y traduce el primer fallo a domain.ErrInvalidInput.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Invalid("%s", err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.Invalid("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "max":
		return fmt.Sprintf("%s excede %s caracteres", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	}
	return fmt.Sprintf("%s inválido (%s)", field, fe.Tag())
}
