package reports

import "context"

type Repository interface {
	// Stats cuenta pacientes y visitas en una sola pasada. Una visita es
	// "upcoming" si su fecha es today o posterior.
	// today y monthPrefix llegan como strings YYYY-MM-DD / YYYY-MM porque
	// las fechas de visita se guardan como texto (comparación lexicográfica).
	Stats(ctx context.Context, today, monthPrefix string) (Stats, error)

	// ExportRows devuelve una fila por paciente con conteo y última visita,
	// en el orden default del listado (más recientes primero).
	ExportRows(ctx context.Context) ([]ExportRow, error)
}
