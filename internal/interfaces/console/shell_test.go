package console_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/crm-clientes/internal/application/crm"
	"github.com/tu-usuario/crm-clientes/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/crm-clientes/internal/interfaces/console"
	"github.com/tu-usuario/crm-clientes/pkg/logger"
)

// runSession ejecuta la shell con un guion de entradas y captura la salida.
func runSession(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	store := jsonstore.New(
		filepath.Join(dir, "clientes.json"),
		filepath.Join(dir, "facturas.json"),
		logger.Nop(),
	)
	customerRepo := jsonstore.NewCustomerRepository(store)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)

	var out bytes.Buffer
	shell := console.New(
		strings.NewReader(script),
		&out,
		logger.Nop(),
		crm.NewCustomerUseCase(customerRepo, store),
		crm.NewInvoiceUseCase(customerRepo, invoiceRepo, store),
		crm.NewSummaryUseCase(customerRepo, invoiceRepo),
		crm.NewPDFUseCase(customerRepo, invoiceRepo, nil, filepath.Join(dir, "exports")),
	)
	shell.Run()
	return out.String()
}

func TestRun_RegistroYSalida(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"1",         // registrar cliente
		"Ana",       // nombre
		"Gómez",     // apellidos
		"ana@x.com", // email
		"",          // teléfono (opcional)
		"",          // dirección (opcional)
		"8",         // salir
	}, "\n")+"\n")

	assert.Contains(t, out, "Cliente registrado correctamente")
	assert.Contains(t, out, "ID asignado: USR001")
	assert.Contains(t, out, "GRACIAS POR USAR EL SISTEMA")
}

func TestRun_EmailInvalidoReintenta(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"1",
		"Ana",
		"Gómez",
		"sin-arroba", // rechazado, vuelve a pedir
		"ana@x.com",
		"",
		"",
		"8",
	}, "\n")+"\n")

	assert.Contains(t, out, "Error: email no válido")
	assert.Contains(t, out, "ID asignado: USR001")
}

func TestRun_FacturaCompleta(t *testing.T) {
	out := runSession(t, strings.Join([]string{
		"1", "Ana", "Gómez", "ana@x.com", "", "", // registro
		"3",           // crear factura
		"ana@x.com",   // cliente por email
		"Consultoría", // descripción
		"abc",         // monto inválido, reintenta
		"200",         // monto
		"2",           // estado: Pagada
		"6",           // resumen financiero
		"8",
	}, "\n")+"\n")

	assert.Contains(t, out, "Número de factura: FAC001")
	assert.Contains(t, out, "Error: introduce un monto válido")
	assert.Contains(t, out, "Estado: Pagada")
	assert.Contains(t, out, "Ingresos recibidos: 200.00 €")
}

func TestRun_OpcionDesconocida(t *testing.T) {
	out := runSession(t, "9\n8\n")
	assert.Contains(t, out, "Opción no válida")
}
