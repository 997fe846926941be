package repository

// Store persiste ambas colecciones (clientes y facturas) como una sola
// operación lógica. Los casos de uso llaman Save después de cada mutación,
// de modo que los archivos reflejan siempre el estado en memoria.
type Store interface {
	// Load lee los archivos si existen y recalcula los contadores de id a
	// partir de los datos cargados.
	Load() error
	// Save reescribe por completo ambos archivos. Un fallo en cualquiera de
	// los dos se reporta; no hay reintento automático.
	Save() error
}
