package crm

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-clientes/internal/application/dto"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/domain/repository"
)

// SummaryUseCase resumen financiero por cliente y totales del sistema.
type SummaryUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository) *SummaryUseCase {
	return &SummaryUseCase{customers: customers, invoices: invoices}
}

// Financial agrega por cliente el monto total facturado y los montos en
// estado Pagada y Pendiente; las canceladas suman al total pero a ningún
// estado. Los totales del sistema son la suma sobre todos los clientes.
func (uc *SummaryUseCase) Financial() (*dto.FinancialSummaryResponse, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}

	out := &dto.FinancialSummaryResponse{
		Total:   decimal.Zero,
		Paid:    decimal.Zero,
		Pending: decimal.Zero,
	}
	for _, c := range customers {
		invoices, err := uc.invoices.ListByCustomer(c.ID)
		if err != nil {
			return nil, err
		}
		cs := dto.CustomerSummary{
			CustomerID: c.ID,
			FullName:   c.FullName(),
			Email:      c.Email,
			Total:      decimal.Zero,
			Paid:       decimal.Zero,
			Pending:    decimal.Zero,
		}
		for _, inv := range invoices {
			cs.InvoiceCount++
			cs.Total = cs.Total.Add(inv.Amount)
			switch inv.Status {
			case entity.StatusPaid:
				cs.Paid = cs.Paid.Add(inv.Amount)
			case entity.StatusPending:
				cs.Pending = cs.Pending.Add(inv.Amount)
			}
		}
		out.PerCustomer = append(out.PerCustomer, cs)
		out.CustomerCount++
		out.InvoiceCount += cs.InvoiceCount
		out.Total = out.Total.Add(cs.Total)
		out.Paid = out.Paid.Add(cs.Paid)
		out.Pending = out.Pending.Add(cs.Pending)
	}
	return out, nil
}
