// Package jsonstore implementa la persistencia del CRM sobre dos archivos
// JSON planos: uno de clientes y uno de facturas, cada uno un objeto cuyas
// claves son los ids. Los contadores secuenciales no se persisten; se
// recalculan al cargar a partir de los ids existentes, lo que tolera
// ediciones manuales de los archivos.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
	"github.com/tu-usuario/crm-clientes/internal/domain/repository"
	"github.com/tu-usuario/crm-clientes/pkg/logger"
)

var _ repository.Store = (*Store)(nil)

// Store colecciones en memoria más la lógica de carga y guardado. Los
// adaptadores CustomerRepo e InvoiceRepo operan sobre un Store compartido,
// de modo que Save escribe siempre el estado completo de ambas colecciones.
//
// Un solo proceso y un solo operador: no hay locking.
type Store struct {
	log           *logger.Logger
	customersPath string
	invoicesPath  string

	customers   map[string]*entity.Customer
	invoices    map[string]*entity.Invoice
	customerSeq int
	invoiceSeq  int
}

// New construye un Store vacío sobre las rutas dadas.
func New(customersPath, invoicesPath string, log *logger.Logger) *Store {
	return &Store{
		log:           log,
		customersPath: customersPath,
		invoicesPath:  invoicesPath,
		customers:     make(map[string]*entity.Customer),
		invoices:      make(map[string]*entity.Invoice),
		customerSeq:   1,
		invoiceSeq:    1,
	}
}

// Load lee ambos archivos si existen. Un archivo ausente equivale a una
// colección vacía y no es error. Un archivo mal formado produce ErrLoad y
// deja esa colección vacía; el otro archivo se procesa de todos modos.
func (s *Store) Load() error {
	var errs []error
	if err := s.loadCustomers(); err != nil {
		errs = append(errs, err)
	}
	if err := s.loadInvoices(); err != nil {
		errs = append(errs, err)
	}
	s.log.Debug().
		Int("clientes", len(s.customers)).
		Int("facturas", len(s.invoices)).
		Int("siguiente_cliente", s.customerSeq).
		Int("siguiente_factura", s.invoiceSeq).
		Msg("datos cargados")
	return errors.Join(errs...)
}

func (s *Store) loadCustomers() error {
	records := map[string]customerRecord{}
	if err := readJSON(s.customersPath, &records); err != nil {
		return fmt.Errorf("%w: clientes: %v", domain.ErrLoad, err)
	}
	customers := make(map[string]*entity.Customer, len(records))
	for id, rec := range records {
		c, err := rec.toEntity()
		if err != nil {
			return fmt.Errorf("%w: clientes: %w", domain.ErrLoad, err)
		}
		customers[id] = c
	}
	s.customers = customers
	s.customerSeq = nextSeq(mapKeys(customers))
	return nil
}

func (s *Store) loadInvoices() error {
	records := map[string]invoiceRecord{}
	if err := readJSON(s.invoicesPath, &records); err != nil {
		return fmt.Errorf("%w: facturas: %v", domain.ErrLoad, err)
	}
	invoices := make(map[string]*entity.Invoice, len(records))
	for id, rec := range records {
		inv, err := rec.toEntity()
		if err != nil {
			return fmt.Errorf("%w: facturas: %w", domain.ErrLoad, err)
		}
		invoices[id] = inv
	}
	s.invoices = invoices
	s.invoiceSeq = nextSeq(mapKeys(invoices))
	return nil
}

// Save reescribe por completo ambos archivos: UTF-8 sin escapar y sangría de
// dos espacios, el mismo formato que producía la herramienta original. Un
// fallo en cualquiera de los dos archivos se reporta como ErrSave.
func (s *Store) Save() error {
	customers := make(map[string]customerRecord, len(s.customers))
	for id, c := range s.customers {
		customers[id] = encodeCustomer(c)
	}
	invoices := make(map[string]invoiceRecord, len(s.invoices))
	for id, inv := range s.invoices {
		invoices[id] = encodeInvoice(inv)
	}

	var errs []error
	if err := writeJSON(s.customersPath, customers); err != nil {
		errs = append(errs, fmt.Errorf("%w: clientes: %v", domain.ErrSave, err))
	}
	if err := writeJSON(s.invoicesPath, invoices); err != nil {
		errs = append(errs, fmt.Errorf("%w: facturas: %v", domain.ErrSave, err))
	}
	return errors.Join(errs...)
}

// readJSON decodifica el archivo en v; un archivo inexistente deja v intacto.
func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// nextSeq calcula el siguiente valor del contador: máximo sufijo numérico de
// los ids existentes más uno, o 1 si la colección está vacía. Ids con sufijo
// no numérico se ignoran.
func nextSeq(ids []string) int {
	max := 0
	for _, id := range ids {
		if n := idSuffix(id); n > max {
			max = n
		}
	}
	return max + 1
}

// idSuffix extrae la parte numérica de un id USR###/FAC###; -1 si no la hay.
func idSuffix(id string) int {
	if len(id) <= 3 {
		return -1
	}
	n, err := strconv.Atoi(id[3:])
	if err != nil {
		return -1
	}
	return n
}

// sortByID ordena ids por sufijo numérico, que coincide con el orden de
// creación (los ids son secuenciales).
func sortByID(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return idSuffix(ids[i]) < idSuffix(ids[j]) })
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
