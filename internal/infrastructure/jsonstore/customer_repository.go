package jsonstore

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// foldCaser pliega mayúsculas Unicode para comparar sin distinguir caso,
// también con acentos y ñ en nombres y direcciones de correo.
var foldCaser = cases.Fold()

func fold(s string) string { return foldCaser.String(s) }

// CustomerRepo adaptador de CustomerRepository sobre el Store compartido.
type CustomerRepo struct {
	store *Store
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// NextID reserva el siguiente identificador USR###.
func (r *CustomerRepo) NextID() string {
	id := fmt.Sprintf("USR%03d", r.store.customerSeq)
	r.store.customerSeq++
	return id
}

// Create guarda un cliente nuevo en memoria (Save lo lleva a disco).
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if _, ok := r.store.customers[customer.ID]; ok {
		return fmt.Errorf("%w: cliente %s", domain.ErrDuplicate, customer.ID)
	}
	r.store.customers[customer.ID] = customer
	return nil
}

// GetByID obtiene un cliente por id; nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.store.customers[id], nil
}

// FindByEmail busca el primer cliente con ese email, sin distinguir
// mayúsculas; nil si no hay coincidencia.
func (r *CustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	needle := fold(strings.TrimSpace(email))
	for _, c := range r.orderedCustomers() {
		if fold(c.Email) == needle {
			return c, nil
		}
	}
	return nil, nil
}

// SearchByName busca el fragmento en nombre, apellidos o nombre completo,
// sin distinguir mayúsculas. Retorna las coincidencias en orden de registro.
func (r *CustomerRepo) SearchByName(fragment string) ([]*entity.Customer, error) {
	needle := fold(strings.TrimSpace(fragment))
	var matches []*entity.Customer
	for _, c := range r.orderedCustomers() {
		if strings.Contains(fold(c.FirstName), needle) ||
			strings.Contains(fold(c.LastName), needle) ||
			strings.Contains(fold(c.FullName()), needle) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// List retorna todos los clientes en orden de registro.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.orderedCustomers(), nil
}

// EmailExists verifica si el email ya está en uso por un cliente distinto de
// excludingID, sin distinguir mayúsculas.
func (r *CustomerRepo) EmailExists(email, excludingID string) (bool, error) {
	needle := fold(strings.TrimSpace(email))
	for id, c := range r.store.customers {
		if id != excludingID && fold(c.Email) == needle {
			return true, nil
		}
	}
	return false, nil
}

// AppendInvoice agrega el número de factura a la lista del cliente.
func (r *CustomerRepo) AppendInvoice(customerID, invoiceID string) error {
	customer, ok := r.store.customers[customerID]
	if !ok {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, customerID)
	}
	customer.InvoiceIDs = append(customer.InvoiceIDs, invoiceID)
	return nil
}

func (r *CustomerRepo) orderedCustomers() []*entity.Customer {
	ids := mapKeys(r.store.customers)
	sortByID(ids)
	list := make([]*entity.Customer, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.store.customers[id])
	}
	return list
}
