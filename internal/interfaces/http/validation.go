package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Empresas-api/pkg/ruc"
)

// newValidator construye el validador de entrada con la regla "ruc" y nombres de campo JSON.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ruc", func(fl validator.FieldLevel) bool {
		return ruc.IsValid(fl.Field().String())
	})
	return v
}

// validationFields traduce los errores del validador a mensajes por campo.
// Devuelve nil si err no es de validación.
func validationFields(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "ruc":
		return "RUC inválido: se esperan 13 dígitos con provincia y establecimiento válidos"
	case "max":
		return fmt.Sprintf("no debe superar %s caracteres", fe.Param())
	default:
		return "valor inválido"
	}
}
