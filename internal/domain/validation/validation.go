// Package validation contiene las reglas de validación del CRM: campos
// obligatorios, formato de email y montos monetarios. Funciones puras, sin
// estado ni salida por consola; los mensajes al operador los pone la shell.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-clientes/internal/domain"
)

// emailPattern exige local@dominio.tld, con extensión de al menos dos letras.
// No se verifica DNS ni la existencia del buzón.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Required indica si el valor tiene contenido (no vacío ni solo espacios).
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidEmail indica si el email tiene un formato aceptable.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ParseAmount convierte el texto en un monto decimal estrictamente positivo.
// Texto no numérico o un valor <= 0 retornan domain.ErrInvalidAmount.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q no es un número", domain.ErrInvalidAmount, text)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: debe ser mayor que cero", domain.ErrInvalidAmount)
	}
	return amount, nil
}
