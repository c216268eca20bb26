package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"health-records/internal/domain/patients"
)

type patientRepo struct {
	s *Store
}

func (r *patientRepo) Insert(ctx context.Context, p patients.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("patient id required")
	}
	if _, exists := r.s.patients[p.ID]; exists {
		return errors.New("patient already exists")
	}
	r.s.patients[p.ID] = p
	return nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, exists := r.s.patients[p.ID]
	if !exists {
		// id ausente: no-op, igual que cero filas afectadas en SQL
		return nil
	}

	// created_at no se toca nunca
	p.CreatedAt = current.CreatedAt
	r.s.patients[p.ID] = p
	return nil
}

func (r *patientRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.patients, id)

	// cascada: misma sección crítica que el delete del paciente
	for vid, v := range r.s.visits {
		if v.PatientID == id {
			delete(r.s.visits, vid)
		}
	}
	return nil
}

func (r *patientRepo) List(ctx context.Context, by patients.Sort) ([]patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		out = append(out, p)
	}

	switch by {
	case patients.SortNameAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case patients.SortNameDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	case patients.SortOldest:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	return out, nil
}

func (r *patientRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.patients[id]
	return ok, nil
}
