package visits

import "time"

// Visit representa un encuentro médico que pertenece a exactamente un paciente.
// Las visitas son create/list solamente: una vez registradas son permanentes
// (no hay update ni delete); solo desaparecen por cascada al borrar el paciente.
type Visit struct {
	ID        string
	PatientID string

	Date      string // YYYY-MM-DD
	Diagnosis string

	Medication string // opcional
	Notes      string // opcional, texto libre

	CreatedAt time.Time
}
