package dto

import "github.com/shopspring/decimal"

// RegisterCustomerRequest datos para registrar un cliente.
// Phone y Address son opcionales.
type RegisterCustomerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           string
	FirstName    string
	LastName     string
	FullName     string
	Email        string
	Phone        string
	Address      string
	RegisteredAt string // DD/MM/AAAA
	InvoiceIDs   []string
}

// CreateInvoiceRequest datos para emitir una factura. Status es opcional;
// vacío equivale a Pendiente.
type CreateInvoiceRequest struct {
	CustomerID  string
	Description string
	Amount      decimal.Decimal
	Status      string
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID          string
	CustomerID  string
	Description string
	Amount      decimal.Decimal
	IssuedAt    string // DD/MM/AAAA
	Status      string
}

// CustomerSummary totales facturados de un cliente. Las facturas canceladas
// cuentan en Total pero no en Paid ni Pending.
type CustomerSummary struct {
	CustomerID   string
	FullName     string
	Email        string
	InvoiceCount int
	Total        decimal.Decimal
	Paid         decimal.Decimal
	Pending      decimal.Decimal
}

// FinancialSummaryResponse resumen financiero por cliente más los totales
// del sistema.
type FinancialSummaryResponse struct {
	PerCustomer   []CustomerSummary
	CustomerCount int
	InvoiceCount  int
	Total         decimal.Decimal
	Paid          decimal.Decimal
	Pending       decimal.Decimal
}
