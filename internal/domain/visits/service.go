package visits

import (
	"context"
	"errors"
	"strings"
	"time"

	"health-records/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPatientNotFound = errors.New("patient not found")
)

// PatientDirectory es lo mínimo que visits necesita del módulo de pacientes:
// saber si el paciente referenciado existe antes de insertar.
type PatientDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	now      func() time.Time
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		now:      time.Now,
	}
}

type CreateInput struct {
	ID         string // opcional
	PatientID  string
	Date       string
	Diagnosis  string
	Medication string
	Notes      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Visit, error) {
	patientID := strings.TrimSpace(in.PatientID)
	date := strings.TrimSpace(in.Date)
	diagnosis := strings.TrimSpace(in.Diagnosis)
	medication := strings.TrimSpace(in.Medication)

	if patientID == "" || date == "" || diagnosis == "" {
		return Visit{}, ErrInvalidInput
	}
	if !validate.Date(date) {
		return Visit{}, ErrInvalidInput
	}
	if !validate.VisitFields(diagnosis, medication) {
		return Visit{}, ErrInvalidInput
	}

	// Invariante: toda visita referencia un paciente existente al crearse.
	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return Visit{}, err
	}
	if !ok {
		return Visit{}, ErrPatientNotFound
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = "visit_" + uuid.NewString()
	}

	v := Visit{
		ID:         id,
		PatientID:  patientID,
		Date:       date,
		Diagnosis:  diagnosis,
		Medication: medication,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]Visit, error) {
	return s.repo.List(ctx)
}
