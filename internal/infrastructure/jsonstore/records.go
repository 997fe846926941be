package jsonstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
)

// customerRecord forma persistida de un cliente. Las claves son las del
// formato de archivo histórico y se conservan tal cual.
type customerRecord struct {
	ID         string   `json:"id_cliente"`
	FirstName  string   `json:"nombre"`
	LastName   string   `json:"apellidos"`
	Email      string   `json:"email"`
	Phone      string   `json:"telefono"`
	Address    string   `json:"direccion"`
	Registered string   `json:"fecha_registro"`
	InvoiceIDs []string `json:"facturas"`
}

func encodeCustomer(c *entity.Customer) customerRecord {
	invoiceIDs := c.InvoiceIDs
	if invoiceIDs == nil {
		invoiceIDs = []string{}
	}
	return customerRecord{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Registered: c.RegisteredAt.Format(entity.DateLayout),
		InvoiceIDs: invoiceIDs,
	}
}

// toEntity valida los campos obligatorios y aplica los valores por defecto
// de los opcionales (telefono, direccion, fecha_registro, facturas).
func (r customerRecord) toEntity() (*entity.Customer, error) {
	if r.ID == "" || r.FirstName == "" || r.LastName == "" || r.Email == "" {
		return nil, fmt.Errorf("%w: cliente %q sin campo obligatorio", domain.ErrMalformedRecord, r.ID)
	}
	registered := time.Now()
	if r.Registered != "" {
		t, err := time.Parse(entity.DateLayout, r.Registered)
		if err != nil {
			return nil, fmt.Errorf("%w: cliente %s: fecha_registro %q", domain.ErrMalformedRecord, r.ID, r.Registered)
		}
		registered = t
	}
	return &entity.Customer{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        orNotSpecified(r.Phone),
		Address:      orNotSpecified(r.Address),
		RegisteredAt: registered,
		InvoiceIDs:   append([]string(nil), r.InvoiceIDs...),
	}, nil
}

// invoiceRecord forma persistida de una factura. El monto viaja como número
// JSON plano (sin comillas) para mantener el formato de archivo histórico.
type invoiceRecord struct {
	ID          string      `json:"numero_factura"`
	CustomerID  string      `json:"id_cliente"`
	Description string      `json:"descripcion"`
	Amount      json.Number `json:"monto"`
	Issued      string      `json:"fecha_emision"`
	Status      string      `json:"estado"`
}

func encodeInvoice(inv *entity.Invoice) invoiceRecord {
	return invoiceRecord{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		Description: inv.Description,
		Amount:      json.Number(inv.Amount.String()),
		Issued:      inv.IssuedAt.Format(entity.DateLayout),
		Status:      inv.Status,
	}
}

func (r invoiceRecord) toEntity() (*entity.Invoice, error) {
	if r.ID == "" || r.CustomerID == "" || r.Description == "" || r.Amount == "" {
		return nil, fmt.Errorf("%w: factura %q sin campo obligatorio", domain.ErrMalformedRecord, r.ID)
	}
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("%w: factura %s: monto %q", domain.ErrMalformedRecord, r.ID, r.Amount)
	}
	issued := time.Now()
	if r.Issued != "" {
		t, err := time.Parse(entity.DateLayout, r.Issued)
		if err != nil {
			return nil, fmt.Errorf("%w: factura %s: fecha_emision %q", domain.ErrMalformedRecord, r.ID, r.Issued)
		}
		issued = t
	}
	status := r.Status
	if status == "" {
		status = entity.StatusPending
	}
	return &entity.Invoice{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Description: r.Description,
		Amount:      amount,
		IssuedAt:    issued,
		Status:      status,
	}, nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return entity.NotSpecified
	}
	return s
}
