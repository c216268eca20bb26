package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"health-records/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	ID        string // opcional: si viene vacío, lo genera el server
	Name      string
	DOB       string
	Contact   string
	BloodType string
	Address   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	name := strings.TrimSpace(in.Name)
	dob := strings.TrimSpace(in.DOB)
	contact := strings.TrimSpace(in.Contact)
	bloodType := strings.TrimSpace(in.BloodType)

	if name == "" || dob == "" || contact == "" {
		return Patient{}, ErrInvalidInput
	}
	if !validate.PatientFields(name, contact) {
		return Patient{}, ErrInvalidInput
	}
	if !validate.DOB(dob, s.now()) {
		return Patient{}, ErrInvalidInput
	}
	if !validate.BloodType(bloodType) {
		return Patient{}, ErrInvalidInput
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		// Id opaco resistente a colisiones. El original usaba el timestamp
		// en milisegundos, que choca bajo requests concurrentes.
		id = "patient_" + uuid.NewString()
	}

	p := Patient{
		ID:        id,
		Name:      name,
		DOB:       dob,
		Contact:   contact,
		BloodType: bloodType,
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

type UpdateInput struct {
	Name      string
	DOB       string
	Contact   string
	BloodType string
	Address   string
}

// Update reemplaza todos los campos mutables (replace completo, no patch).
// No hay chequeo de existencia previo: actualizar un id ausente es no-op.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	name := strings.TrimSpace(in.Name)
	dob := strings.TrimSpace(in.DOB)
	contact := strings.TrimSpace(in.Contact)
	bloodType := strings.TrimSpace(in.BloodType)

	if name == "" || dob == "" || contact == "" {
		return ErrInvalidInput
	}
	if !validate.PatientFields(name, contact) {
		return ErrInvalidInput
	}
	if !validate.DOB(dob, s.now()) {
		return ErrInvalidInput
	}
	if !validate.BloodType(bloodType) {
		return ErrInvalidInput
	}

	return s.repo.Update(ctx, Patient{
		ID:        id,
		Name:      name,
		DOB:       dob,
		Contact:   contact,
		BloodType: bloodType,
		Address:   strings.TrimSpace(in.Address),
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, sort Sort) ([]Patient, error) {
	return s.repo.List(ctx, sort)
}
