package crm

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/crm-clientes/internal/application/dto"
	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/domain/repository"
	"github.com/tu-usuario/crm-clientes/internal/domain/validation"
)

// InvoiceUseCase emisión y consulta de facturas.
type InvoiceUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	store     repository.Store
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	store repository.Store,
) *InvoiceUseCase {
	return &InvoiceUseCase{customers: customers, invoices: invoices, store: store}
}

// Create emite una factura para el cliente: valida, asigna el siguiente
// número FAC###, la guarda, la agrega a la lista del cliente y persiste.
// Un cliente inexistente retorna ErrNotFound sin tocar ninguna colección.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}
	if !validation.Required(in.Description) {
		return nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, in.Amount)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}

	invoice := &entity.Invoice{
		ID:          uc.invoices.NextID(),
		CustomerID:  customer.ID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		IssuedAt:    time.Now(),
		Status:      status,
	}
	if err := uc.invoices.Create(invoice); err != nil {
		return nil, err
	}
	if err := uc.customers.AppendInvoice(customer.ID, invoice.ID); err != nil {
		return nil, err
	}
	if err := uc.store.Save(); err != nil {
		return nil, err
	}
	return invoiceResponse(invoice), nil
}

// ForCustomer retorna las facturas del cliente en orden de emisión,
// omitiendo números colgantes sin registro.
func (uc *InvoiceUseCase) ForCustomer(customerID string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoices.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceResponse(inv))
	}
	return out, nil
}

// SetStatus cambia el estado de una factura ya emitida y persiste.
func (uc *InvoiceUseCase) SetStatus(invoiceID, status string) error {
	if !entity.ValidStatus(status) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	if err := uc.invoices.UpdateStatus(invoiceID, status); err != nil {
		return err
	}
	return uc.store.Save()
}

func invoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		Description: inv.Description,
		Amount:      inv.Amount,
		IssuedAt:    inv.IssuedAt.Format(entity.DateLayout),
		Status:      inv.Status,
	}
}
