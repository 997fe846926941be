package entity

import "time"

// DateLayout formato de fecha de los archivos de datos (DD/MM/AAAA).
const DateLayout = "02/01/2006"

// NotSpecified valor centinela para campos opcionales que el operador dejó vacíos.
const NotSpecified = "No especificado"

// Customer representa un cliente registrado en el CRM.
// El ID (USR###) lo asigna el repositorio al registrar y no cambia después.
type Customer struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // único entre todos los clientes, sin distinguir mayúsculas
	Phone        string // opcional; NotSpecified si no se indicó
	Address      string // opcional; NotSpecified si no se indicó
	RegisteredAt time.Time
	InvoiceIDs   []string // facturas del cliente en orden de emisión; solo crece
}

// FullName devuelve nombre y apellidos separados por un espacio.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
