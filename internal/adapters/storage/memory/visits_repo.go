package memory

import (
	"context"
	"errors"
	"sort"

	"health-records/internal/domain/visits"
)

type visitRepo struct {
	s *Store
}

func (r *visitRepo) Insert(ctx context.Context, v visits.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v.ID == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.s.visits[v.ID]; exists {
		return errors.New("visit already exists")
	}
	if _, ok := r.s.patients[v.PatientID]; !ok {
		// espejo de la FK: el service ya chequeó existencia, esto cubre
		// la carrera delete-paciente / insert-visita
		return errors.New("patient does not exist")
	}

	r.s.visits[v.ID] = v
	return nil
}

func (r *visitRepo) List(ctx context.Context) ([]visits.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]visits.Visit, 0, len(r.s.visits))
	for _, v := range r.s.visits {
		out = append(out, v)
	}

	// fecha descendente; desempate por created_at para orden estable
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
