package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Los valores son los que se escriben en el archivo
// de datos, en español como los produce la herramienta original.
const (
	StatusPending   = "Pendiente"
	StatusPaid      = "Pagada"
	StatusCancelled = "Cancelada"
)

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Invoice representa una factura emitida a un cliente. El número (FAC###) lo
// asigna el repositorio al emitir; solo el estado es mutable después.
type Invoice struct {
	ID          string
	CustomerID  string
	Description string
	Amount      decimal.Decimal // siempre estrictamente positivo
	IssuedAt    time.Time
	Status      string
}
