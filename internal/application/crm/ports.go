package crm

import "github.com/tu-usuario/crm-clientes/internal/domain/entity"

// ReceiptGenerator genera la representación PDF de una factura.
type ReceiptGenerator interface {
	GenerateReceipt(invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
