package crm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/repository"
)

// PDFUseCase exporta una factura como recibo PDF en el directorio de
// exportación configurado.
type PDFUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	generator ReceiptGenerator
	exportDir string
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	generator ReceiptGenerator,
	exportDir string,
) *PDFUseCase {
	return &PDFUseCase{
		customers: customers,
		invoices:  invoices,
		generator: generator,
		exportDir: exportDir,
	}
}

// Export genera el PDF de la factura y lo escribe como factura_FAC###.pdf.
// Retorna la ruta del archivo creado.
func (uc *PDFUseCase) Export(invoiceID string) (string, error) {
	invoice, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return "", err
	}
	if invoice == nil {
		return "", fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoiceID)
	}
	customer, err := uc.customers.GetByID(invoice.CustomerID)
	if err != nil {
		return "", err
	}
	if customer == nil {
		return "", fmt.Errorf("%w: cliente %s", domain.ErrNotFound, invoice.CustomerID)
	}

	data, err := uc.generator.GenerateReceipt(invoice, customer)
	if err != nil {
		return "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	if err := os.MkdirAll(uc.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio de exportación: %w", err)
	}
	path := filepath.Join(uc.exportDir, fmt.Sprintf("factura_%s.pdf", invoice.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir %s: %w", path, err)
	}
	return path, nil
}
