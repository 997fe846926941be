package crm_test

import (
	"path/filepath"
	"testing"

	"github.com/tu-usuario/crm-clientes/internal/application/crm"
	"github.com/tu-usuario/crm-clientes/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/crm-clientes/pkg/logger"
)

// fixture casos de uso cableados sobre un jsonstore en un directorio temporal,
// el mismo montaje que hace cmd/crm.
type fixture struct {
	dir       string
	store     *jsonstore.Store
	customers *crm.CustomerUseCase
	invoices  *crm.InvoiceUseCase
	summary   *crm.SummaryUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	store := jsonstore.New(
		filepath.Join(dir, "clientes.json"),
		filepath.Join(dir, "facturas.json"),
		logger.Nop(),
	)
	customerRepo := jsonstore.NewCustomerRepository(store)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)
	return &fixture{
		dir:       dir,
		store:     store,
		customers: crm.NewCustomerUseCase(customerRepo, store),
		invoices:  crm.NewInvoiceUseCase(customerRepo, invoiceRepo, store),
		summary:   crm.NewSummaryUseCase(customerRepo, invoiceRepo),
	}
}

// reopenFixture monta casos de uso nuevos sobre los archivos de otro fixture
// y carga su contenido, simulando un reinicio del programa.
func reopenFixture(t *testing.T, prev *fixture) *fixture {
	t.Helper()
	store := jsonstore.New(
		filepath.Join(prev.dir, "clientes.json"),
		filepath.Join(prev.dir, "facturas.json"),
		logger.Nop(),
	)
	if err := store.Load(); err != nil {
		t.Fatalf("recargar datos: %v", err)
	}
	customerRepo := jsonstore.NewCustomerRepository(store)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)
	return &fixture{
		dir:       prev.dir,
		store:     store,
		customers: crm.NewCustomerUseCase(customerRepo, store),
		invoices:  crm.NewInvoiceUseCase(customerRepo, invoiceRepo, store),
		summary:   crm.NewSummaryUseCase(customerRepo, invoiceRepo),
	}
}
