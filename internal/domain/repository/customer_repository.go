package repository

import "github.com/tu-usuario/crm-clientes/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Las comparaciones de email y nombre no distinguen mayúsculas.
type CustomerRepository interface {
	// NextID reserva el siguiente identificador secuencial (USR###).
	NextID() string
	Create(customer *entity.Customer) error
	// GetByID retorna nil si el cliente no existe.
	GetByID(id string) (*entity.Customer, error)
	// FindByEmail retorna el primer cliente con ese email, o nil si no hay.
	FindByEmail(email string) (*entity.Customer, error)
	// SearchByName busca el fragmento en nombre, apellidos o nombre completo.
	SearchByName(fragment string) ([]*entity.Customer, error)
	// List retorna todos los clientes en orden de registro.
	List() ([]*entity.Customer, error)
	// EmailExists verifica si el email ya está en uso por algún cliente
	// distinto de excludingID (vacío = considerar todos).
	EmailExists(email, excludingID string) (bool, error)
	// AppendInvoice agrega el número de factura a la lista del cliente.
	AppendInvoice(customerID, invoiceID string) error
}
