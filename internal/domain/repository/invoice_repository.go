package repository

import "github.com/tu-usuario/crm-clientes/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// NextID reserva el siguiente número de factura (FAC###).
	NextID() string
	Create(invoice *entity.Invoice) error
	// GetByID retorna nil si la factura no existe.
	GetByID(id string) (*entity.Invoice, error)
	// ListByCustomer resuelve las facturas del cliente en orden de emisión.
	// Números de factura sin registro se omiten en silencio (tolerancia a
	// archivos editados a mano); un cliente inexistente es ErrNotFound.
	ListByCustomer(customerID string) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
}
