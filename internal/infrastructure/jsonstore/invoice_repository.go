package jsonstore

import (
	"fmt"

	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo adaptador de InvoiceRepository sobre el Store compartido.
type InvoiceRepo struct {
	store *Store
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(store *Store) *InvoiceRepo {
	return &InvoiceRepo{store: store}
}

// NextID reserva el siguiente número de factura FAC###.
func (r *InvoiceRepo) NextID() string {
	id := fmt.Sprintf("FAC%03d", r.store.invoiceSeq)
	r.store.invoiceSeq++
	return id
}

// Create guarda una factura nueva en memoria (Save la lleva a disco).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if _, ok := r.store.invoices[invoice.ID]; ok {
		return fmt.Errorf("%w: factura %s", domain.ErrDuplicate, invoice.ID)
	}
	r.store.invoices[invoice.ID] = invoice
	return nil
}

// GetByID obtiene una factura por número; nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.store.invoices[id], nil
}

// ListByCustomer resuelve la lista de facturas del cliente en su orden de
// emisión. Números sin registro en la colección se omiten en silencio.
func (r *InvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	customer, ok := r.store.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, customerID)
	}
	var list []*entity.Invoice
	for _, invoiceID := range customer.InvoiceIDs {
		if inv, ok := r.store.invoices[invoiceID]; ok {
			list = append(list, inv)
		}
	}
	return list, nil
}

// UpdateStatus cambia el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	invoice, ok := r.store.invoices[id]
	if !ok {
		return fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	invoice.Status = status
	return nil
}
