package memory

import (
	"sync"

	"health-records/internal/domain/patients"
	"health-records/internal/domain/reports"
	"health-records/internal/domain/visits"
)

// Store es el storage in-memory compartido (tests y modo dev sin DSN).
// Pacientes y visitas viven bajo el mismo mutex: la cascada del delete
// es una sola sección crítica, ningún lector ve un paciente borrado con
// visitas todavía colgando.
type Store struct {
	mu       sync.RWMutex
	patients map[string]patients.Patient
	visits   map[string]visits.Visit
}

func NewStore() *Store {
	return &Store{
		patients: make(map[string]patients.Patient),
		visits:   make(map[string]visits.Visit),
	}
}

func (s *Store) Patients() patients.Repository { return &patientRepo{s} }
func (s *Store) Visits() visits.Repository     { return &visitRepo{s} }
func (s *Store) Reports() reports.Repository   { return &reportsRepo{s} }
