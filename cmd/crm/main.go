package main

import (
	"os"

	"github.com/tu-usuario/crm-clientes/internal/application/crm"
	"github.com/tu-usuario/crm-clientes/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/crm-clientes/internal/infrastructure/pdf"
	"github.com/tu-usuario/crm-clientes/internal/interfaces/console"
	"github.com/tu-usuario/crm-clientes/pkg/config"
	"github.com/tu-usuario/crm-clientes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("clientes", cfg.Data.CustomersPath()).
		Str("facturas", cfg.Data.InvoicesPath()).
		Msg("iniciando CRM")

	store := jsonstore.New(cfg.Data.CustomersPath(), cfg.Data.InvoicesPath(), log)
	if err := store.Load(); err != nil {
		// Archivo dañado: se reporta y se continúa con esa colección vacía.
		log.Warn().Err(err).Msg("datos previos no recuperables")
	}

	customerRepo := jsonstore.NewCustomerRepository(store)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)

	customerUC := crm.NewCustomerUseCase(customerRepo, store)
	invoiceUC := crm.NewInvoiceUseCase(customerRepo, invoiceRepo, store)
	summaryUC := crm.NewSummaryUseCase(customerRepo, invoiceRepo)
	pdfUC := crm.NewPDFUseCase(customerRepo, invoiceRepo, pdf.NewReceiptGenerator(), cfg.Data.ExportDir)

	shell := console.New(os.Stdin, os.Stdout, log, customerUC, invoiceUC, summaryUC, pdfUC)
	shell.Run()

	// Cada mutación ya persistió; este guardado final cubre la salida limpia.
	if err := store.Save(); err != nil {
		log.Error().Err(err).Msg("guardado final")
	}
}
