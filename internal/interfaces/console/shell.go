// Package console implementa el menú interactivo del CRM. Toda la entrada y
// salida de terminal vive aquí: los casos de uso retornan valores y errores
// tipados, y esta capa los traduce a texto para el operador.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-clientes/internal/application/crm"
	"github.com/tu-usuario/crm-clientes/internal/application/dto"
	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/domain/validation"
	"github.com/tu-usuario/crm-clientes/pkg/logger"
)

// Shell menú interactivo sobre los casos de uso.
type Shell struct {
	in        *bufio.Scanner
	out       io.Writer
	log       *logger.Logger
	customers *crm.CustomerUseCase
	invoices  *crm.InvoiceUseCase
	summary   *crm.SummaryUseCase
	pdf       *crm.PDFUseCase
}

// New construye la shell. in y out suelen ser os.Stdin y os.Stdout.
func New(
	in io.Reader,
	out io.Writer,
	log *logger.Logger,
	customers *crm.CustomerUseCase,
	invoices *crm.InvoiceUseCase,
	summary *crm.SummaryUseCase,
	pdf *crm.PDFUseCase,
) *Shell {
	return &Shell{
		in:        bufio.NewScanner(in),
		out:       out,
		log:       log,
		customers: customers,
		invoices:  invoices,
		summary:   summary,
		pdf:       pdf,
	}
}

// Run ejecuta el bucle del menú hasta que el operador elija salir o se
// termine la entrada.
func (s *Shell) Run() {
	s.printf("BIENVENIDO AL SISTEMA CRM\n")
	s.printf("Sistema de gestión de relaciones con clientes\n")

	for {
		s.printMenu()
		option, ok := s.prompt("Selecciona una opción: ")
		if !ok {
			return
		}
		switch option {
		case "1":
			s.registerCustomer()
		case "2":
			s.searchCustomer()
		case "3":
			s.createInvoice()
		case "4":
			s.listCustomers()
		case "5":
			s.customerInvoices()
		case "6":
			s.financialSummary()
		case "7":
			s.exportPDF()
		case "8":
			s.printf("\nGRACIAS POR USAR EL SISTEMA\n")
			return
		default:
			s.printf("Opción no válida. Introduce una opción del 1 al 8\n")
		}
	}
}

func (s *Shell) printMenu() {
	s.printf("\n%s\n", strings.Repeat("=", 30))
	s.printf("=== SISTEMA CRM ===\n")
	s.printf("%s\n", strings.Repeat("=", 30))
	s.printf("1. Registrar cliente\n")
	s.printf("2. Buscar cliente\n")
	s.printf("3. Crear factura al cliente\n")
	s.printf("4. Mostrar todos los clientes\n")
	s.printf("5. Mostrar facturas de un cliente\n")
	s.printf("6. Resumen financiero por cliente\n")
	s.printf("7. Exportar factura a PDF\n")
	s.printf("8. Salir\n")
	s.printf("%s\n", strings.Repeat("=", 30))
}

// registerCustomer opción 1: pide los datos y reintenta mientras el email
// sea inválido o esté duplicado.
func (s *Shell) registerCustomer() {
	s.printf("\n===== REGISTRO DE CLIENTE =====\n")

	firstName, ok := s.prompt("Ingrese nombre: ")
	if !ok || !s.required(firstName, "nombre") {
		return
	}
	lastName, ok := s.prompt("Ingrese apellidos: ")
	if !ok || !s.required(lastName, "apellidos") {
		return
	}

	var email string
	for {
		email, ok = s.prompt("Ingrese email: ")
		if !ok || !s.required(email, "email") {
			return
		}
		if !validation.ValidEmail(email) {
			s.printf("Error: email no válido\n")
			continue
		}
		break
	}

	phone, ok := s.prompt("Ingrese teléfono (opcional): ")
	if !ok {
		return
	}
	address, ok := s.prompt("Ingrese dirección (opcional): ")
	if !ok {
		return
	}

	customer, err := s.customers.Register(dto.RegisterCustomerRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Address:   address,
	})
	if err != nil {
		s.printError(err)
		return
	}

	s.printf("\nCliente registrado correctamente\n")
	s.printf("ID asignado: %s\n", customer.ID)
	s.printf("Fecha de registro: %s\n", customer.RegisteredAt)
}

// searchCustomer opción 2: por email exacto o por fragmento de nombre.
func (s *Shell) searchCustomer() {
	s.printf("\n===== BUSCAR CLIENTE =====\n")
	s.printf("1. Buscar por email\n")
	s.printf("2. Buscar por nombre\n")

	method, ok := s.prompt("\nSelecciona un método de búsqueda: ")
	if !ok {
		return
	}
	switch method {
	case "1":
		email, ok := s.prompt("Ingresa email: ")
		if !ok {
			return
		}
		customer, err := s.customers.FindByEmail(email)
		if err != nil {
			s.printError(err)
			return
		}
		s.printf("\n--- CLIENTE ENCONTRADO ---\n")
		s.printCustomer(customer)
	case "2":
		fragment, ok := s.prompt("Ingresa nombre: ")
		if !ok {
			return
		}
		matches, err := s.customers.SearchByName(fragment)
		if err != nil {
			s.printError(err)
			return
		}
		if len(matches) == 0 {
			s.printf("No se encontraron clientes con ese nombre\n")
			return
		}
		s.printf("\n--- CLIENTES ENCONTRADOS (%d) ---\n", len(matches))
		for _, c := range matches {
			s.printCustomer(c)
			s.printf("%s\n", strings.Repeat("-", 50))
		}
	default:
		s.printf("Opción inválida: solo son válidas las opciones 1 y 2\n")
	}
}

// createInvoice opción 3: localiza el cliente por email, pide descripción,
// monto y estado inicial, y emite la factura.
func (s *Shell) createInvoice() {
	s.printf("\n===== CREAR FACTURA =====\n")

	email, ok := s.prompt("Ingresa email del cliente: ")
	if !ok {
		return
	}
	customer, err := s.customers.FindByEmail(email)
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("\nCliente encontrado: %s\n", customer.FullName)

	description, ok := s.prompt("Introduce la descripción del servicio o producto: ")
	if !ok || !s.required(description, "descripción") {
		return
	}

	amount, ok := s.promptAmount()
	if !ok {
		return
	}
	status, ok := s.promptStatus()
	if !ok {
		return
	}

	invoice, err := s.invoices.Create(dto.CreateInvoiceRequest{
		CustomerID:  customer.ID,
		Description: description,
		Amount:      amount,
		Status:      status,
	})
	if err != nil {
		s.printError(err)
		return
	}

	s.printf("\nFactura creada correctamente\n")
	s.printf("Número de factura: %s\n", invoice.ID)
	s.printf("Fecha de emisión: %s\n", invoice.IssuedAt)
	s.printf("Cliente: %s\n", customer.FullName)
	s.printf("Descripción: %s\n", invoice.Description)
	s.printf("Monto: %s €\n", invoice.Amount.StringFixed(2))
	s.printf("Estado: %s\n", invoice.Status)
}

// listCustomers opción 4.
func (s *Shell) listCustomers() {
	s.printf("\n===== LISTA DE CLIENTES =====\n")
	customers, err := s.customers.List()
	if err != nil {
		s.printError(err)
		return
	}
	if len(customers) == 0 {
		s.printf("No hay clientes registrados\n")
		return
	}
	for i, c := range customers {
		s.printf("\nCliente #%d:\n", i+1)
		s.printCustomer(c)
	}
	s.printf("\nTotal de clientes registrados: %d\n", len(customers))
}

// customerInvoices opción 5: facturas de un cliente con su total.
func (s *Shell) customerInvoices() {
	s.printf("\n===== FACTURAS DEL CLIENTE =====\n")
	customers, err := s.customers.List()
	if err != nil {
		s.printError(err)
		return
	}
	if len(customers) == 0 {
		s.printf("No hay clientes registrados\n")
		return
	}

	s.printf("\nClientes disponibles:\n")
	for _, c := range customers {
		s.printf("ID: %s - %s\n", c.ID, c.FullName)
	}

	id, ok := s.prompt("\nIngrese el ID del cliente: ")
	if !ok {
		return
	}
	invoices, err := s.invoices.ForCustomer(strings.ToUpper(id))
	if err != nil {
		s.printError(err)
		return
	}
	if len(invoices) == 0 {
		s.printf("Este cliente no tiene facturas\n")
		return
	}

	total := decimal.Zero
	for _, inv := range invoices {
		s.printf("\nFactura #%s\n", inv.ID)
		s.printf("Fecha: %s\n", inv.IssuedAt)
		s.printf("Descripción: %s\n", inv.Description)
		s.printf("Monto: %s €\n", inv.Amount.StringFixed(2))
		s.printf("Estado: %s\n", inv.Status)
		total = total.Add(inv.Amount)
	}
	s.printf("\nResumen:\n")
	s.printf("Total facturas: %d\n", len(invoices))
	s.printf("Monto total: %s €\n", total.StringFixed(2))
}

// financialSummary opción 6.
func (s *Shell) financialSummary() {
	s.printf("\n===== RESUMEN FINANCIERO =====\n")
	summary, err := s.summary.Financial()
	if err != nil {
		s.printError(err)
		return
	}
	if summary.CustomerCount == 0 {
		s.printf("No hay clientes registrados\n")
		return
	}

	for _, cs := range summary.PerCustomer {
		s.printf("\nCliente: %s (%s)\n", cs.FullName, cs.Email)
		s.printf("- Total facturas: %d\n", cs.InvoiceCount)
		s.printf("- Monto total: %s €\n", cs.Total.StringFixed(2))
		s.printf("- Facturas pagadas: %s €\n", cs.Paid.StringFixed(2))
		s.printf("- Facturas pendientes: %s €\n", cs.Pending.StringFixed(2))
	}

	s.printf("\n--- RESUMEN GENERAL ---\n")
	s.printf("Total clientes: %d\n", summary.CustomerCount)
	s.printf("Total facturas emitidas: %d\n", summary.InvoiceCount)
	s.printf("Ingresos totales: %s €\n", summary.Total.StringFixed(2))
	s.printf("Ingresos recibidos: %s €\n", summary.Paid.StringFixed(2))
	s.printf("Ingresos pendientes: %s €\n", summary.Pending.StringFixed(2))
}

// exportPDF opción 7.
func (s *Shell) exportPDF() {
	s.printf("\n===== EXPORTAR FACTURA A PDF =====\n")
	id, ok := s.prompt("Ingrese el número de factura: ")
	if !ok {
		return
	}
	path, err := s.pdf.Export(strings.ToUpper(id))
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("PDF generado: %s\n", path)
}

// promptStatus pide el estado inicial de la factura (1-3).
func (s *Shell) promptStatus() (string, bool) {
	s.printf("Selecciona estado de factura:\n")
	s.printf("1. Pendiente\n")
	s.printf("2. Pagada\n")
	s.printf("3. Cancelada\n")
	for {
		option, ok := s.prompt("Estado: ")
		if !ok {
			return "", false
		}
		switch option {
		case "1":
			return entity.StatusPending, true
		case "2":
			return entity.StatusPaid, true
		case "3":
			return entity.StatusCancelled, true
		}
		s.printf("Opción inválida, introduce 1, 2 o 3\n")
	}
}

func (s *Shell) required(value, field string) bool {
	if !validation.Required(value) {
		s.printf("Error: %s no puede estar vacío\n", field)
		return false
	}
	return true
}

// printError traduce errores de dominio a mensajes para el operador.
func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		s.printf("Error: el email ya existe\n")
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Cliente o factura no encontrado\n")
	case errors.Is(err, domain.ErrInvalidAmount):
		s.printf("Error: introduce un monto válido (número positivo)\n")
	case errors.Is(err, domain.ErrInvalidInput):
		s.printf("Error: %v\n", err)
	case errors.Is(err, domain.ErrSave):
		s.log.Error().Err(err).Msg("guardar datos")
		s.printf("Error al guardar los datos: %v\n", err)
	default:
		s.log.Error().Err(err).Msg("operación fallida")
		s.printf("Error inesperado: %v\n", err)
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// prompt imprime el texto y lee una línea recortada; false si terminó la
// entrada.
func (s *Shell) prompt(label string) (string, bool) {
	s.printf("%s", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
