package crm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-clientes/internal/application/crm"
	"github.com/tu-usuario/crm-clientes/internal/application/dto"
	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/infrastructure/jsonstore"
)

// stubGenerator evita depender del motor PDF real en estas pruebas; el
// contenido generado es irrelevante para el caso de uso.
type stubGenerator struct {
	lastInvoice *entity.Invoice
}

func (g *stubGenerator) GenerateReceipt(invoice *entity.Invoice, _ *entity.Customer) ([]byte, error) {
	g.lastInvoice = invoice
	return []byte("%PDF-stub"), nil
}

func newPDFFixture(t *testing.T, f *fixture) (*crm.PDFUseCase, *stubGenerator, string) {
	t.Helper()
	exportDir := filepath.Join(f.dir, "exports")
	gen := &stubGenerator{}
	store := f.store
	customerRepo := jsonstore.NewCustomerRepository(store)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)
	return crm.NewPDFUseCase(customerRepo, invoiceRepo, gen, exportDir), gen, exportDir
}

func TestExport_EscribeElArchivo(t *testing.T) {
	f := newFixture(t)
	ana := registerAna(t, f)
	invoice, err := f.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID:  ana.ID,
		Description: "Consultoría",
		Amount:      decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	pdfUC, gen, exportDir := newPDFFixture(t, f)
	path, err := pdfUC.Export(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, "factura_FAC001.pdf"), path)
	assert.Equal(t, invoice.ID, gen.lastInvoice.ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestExport_FacturaInexistente(t *testing.T) {
	f := newFixture(t)
	registerAna(t, f)

	pdfUC, _, _ := newPDFFixture(t, f)
	_, err := pdfUC.Export("FAC404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
