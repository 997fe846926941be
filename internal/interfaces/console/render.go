package console

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-clientes/internal/application/dto"
	"github.com/tu-usuario/crm-clientes/internal/domain/validation"
)

// printCustomer imprime la ficha completa de un cliente.
func (s *Shell) printCustomer(c *dto.CustomerResponse) {
	s.printf("ID: %s\n", c.ID)
	s.printf("Nombre: %s\n", c.FullName)
	s.printf("Email: %s\n", c.Email)
	s.printf("Teléfono: %s\n", c.Phone)
	s.printf("Dirección: %s\n", c.Address)
	s.printf("Fecha de registro: %s\n", c.RegisteredAt)
}

// promptAmount reintenta hasta obtener un monto positivo válido.
func (s *Shell) promptAmount() (decimal.Decimal, bool) {
	for {
		raw, ok := s.prompt("Introduce el monto: ")
		if !ok {
			return decimal.Zero, false
		}
		amount, err := validation.ParseAmount(raw)
		if err != nil {
			s.printf("Error: introduce un monto válido (número positivo)\n")
			continue
		}
		return amount, true
	}
}
