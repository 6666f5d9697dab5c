// Package ruc contiene reglas de formato del Registro Único de Contribuyentes (Ecuador).
package ruc

import (
	"fmt"
	"strings"
)

// Length es la longitud de un RUC: 10 dígitos de cédula/base + 3 de establecimiento.
const Length = 13

// provincia especial para ecuatorianos registrados en el exterior.
const foreignProvince = 30

// Normalize elimina espacios en los extremos. No altera los dígitos.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate comprueba el formato del RUC: 13 dígitos, código de provincia 01-24 o 30
// y establecimiento distinto de 000. No valida el dígito verificador.
func Validate(s string) error {
	s = Normalize(s)
	if len(s) != Length {
		return fmt.Errorf("ruc: debe tener %d dígitos, se recibieron %d", Length, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("ruc: carácter no numérico en la posición %d", i+1)
		}
	}
	province := int(s[0]-'0')*10 + int(s[1]-'0')
	if (province < 1 || province > 24) && province != foreignProvince {
		return fmt.Errorf("ruc: código de provincia inválido %02d", province)
	}
	if s[10:] == "000" {
		return fmt.Errorf("ruc: el código de establecimiento no puede ser 000")
	}
	return nil
}

// IsValid atajo booleano de Validate.
func IsValid(s string) bool {
	return Validate(s) == nil
}
