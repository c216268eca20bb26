package patients

import "time"

// Sort define el orden del listado de pacientes.
// El contrato de orden es explícito por request; el default es
// "más recientes primero" (created_at desc).
type Sort string

const (
	SortNewest   Sort = "date-desc"
	SortOldest   Sort = "date-asc"
	SortNameAsc  Sort = "name-asc"
	SortNameDesc Sort = "name-desc"
)

// ParseSort mapea el query param a un Sort válido.
// Valor desconocido o vacío cae al default (lenient, no 400).
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortOldest, SortNameAsc, SortNameDesc:
		return Sort(s)
	default:
		return SortNewest
	}
}

// Patient representa el registro demográfico de una persona bajo cuidado.
type Patient struct {
	ID      string
	Name    string
	DOB     string // YYYY-MM-DD
	Contact string

	BloodType string // opcional, uno de los 8 valores ABO/Rh
	Address   string // opcional, texto libre

	CreatedAt time.Time // asignado por el server al insertar, nunca se actualiza
}
