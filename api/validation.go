package api

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// BindingErrors traduce un error de binding de gin a errores por campo.
// Los errores que no vienen del validador (JSON malformado, tipos
// incompatibles) se reportan bajo la clave "request".
func BindingErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = "El cuerpo de la petición es inválido"
		return out
	}

	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		out[field] = fieldMessage(field, fe)
	}
	return out
}

// fieldMessage mensaje en español para una regla incumplida
func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", field)
	case "gte", "min":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor a %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("El campo %s no debe exceder %s caracteres", field, fe.Param())
	default:
		return fmt.Sprintf("El campo %s es inválido", field)
	}
}

// snakeCase convierte el nombre del campo de la estructura al nombre
// usado en el JSON (DueDate -> due_date)
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
