// Package crm contiene los casos de uso del sistema: registro y búsqueda de
// clientes, emisión de facturas, resumen financiero y exportación a PDF.
// Cada mutación persiste ambas colecciones inmediatamente vía el Store.
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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	store     repository.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, store repository.Store) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, store: store}
}

// Register valida los datos, verifica que el email no esté en uso, asigna el
// siguiente id USR###, guarda el cliente y persiste.
func (uc *CustomerUseCase) Register(in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	if !validation.Required(in.FirstName) || !validation.Required(in.LastName) || !validation.Required(in.Email) {
		return nil, fmt.Errorf("%w: nombre, apellidos y email son obligatorios", domain.ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	if !validation.ValidEmail(email) {
		return nil, fmt.Errorf("%w: email %q", domain.ErrInvalidInput, email)
	}
	exists, err := uc.customers.EmailExists(email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	customer := &entity.Customer{
		ID:           uc.customers.NextID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		Phone:        optional(in.Phone),
		Address:      optional(in.Address),
		RegisteredAt: time.Now(),
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	if err := uc.store.Save(); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// FindByEmail busca un cliente por email, sin distinguir mayúsculas.
func (uc *CustomerUseCase) FindByEmail(email string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: email %s", domain.ErrNotFound, strings.TrimSpace(email))
	}
	return customerResponse(customer), nil
}

// SearchByName busca clientes cuyo nombre, apellidos o nombre completo
// contengan el fragmento, sin distinguir mayúsculas.
func (uc *CustomerUseCase) SearchByName(fragment string) ([]*dto.CustomerResponse, error) {
	matches, err := uc.customers.SearchByName(fragment)
	if err != nil {
		return nil, err
	}
	return customerResponses(matches), nil
}

// List retorna todos los clientes en orden de registro.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	return customerResponses(customers), nil
}

func optional(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return entity.NotSpecified
	}
	return s
}

func customerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		FullName:     c.FullName(),
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		RegisteredAt: c.RegisteredAt.Format(entity.DateLayout),
		InvoiceIDs:   append([]string(nil), c.InvoiceIDs...),
	}
}

func customerResponses(customers []*entity.Customer) []*dto.CustomerResponse {
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerResponse(c))
	}
	return out
}
