package memory

import (
	"context"
	"sort"
	"strings"

	"health-records/internal/domain/reports"
)

type reportsRepo struct {
	s *Store
}

func (r *reportsRepo) Stats(ctx context.Context, today, monthPrefix string) (reports.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st := reports.Stats{
		TotalPatients: len(r.s.patients),
		TotalVisits:   len(r.s.visits),
	}

	for _, v := range r.s.visits {
		// las fechas son YYYY-MM-DD: comparación lexicográfica alcanza
		if v.Date >= today {
			st.UpcomingVisits++
		}
		if strings.HasPrefix(v.Date, monthPrefix) {
			st.VisitsThisMonth++
		}
	}

	return st, nil
}

func (r *reportsRepo) ExportRows(ctx context.Context) ([]reports.ExportRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type agg struct {
		count int
		last  string
	}
	byPatient := make(map[string]agg, len(r.s.patients))
	for _, v := range r.s.visits {
		a := byPatient[v.PatientID]
		a.count++
		if v.Date > a.last {
			a.last = v.Date
		}
		byPatient[v.PatientID] = a
	}

	ps := make([]string, 0, len(r.s.patients))
	for id := range r.s.patients {
		ps = append(ps, id)
	}
	// mismo orden default que el listado de pacientes
	sort.Slice(ps, func(i, j int) bool {
		return r.s.patients[ps[i]].CreatedAt.After(r.s.patients[ps[j]].CreatedAt)
	})

	out := make([]reports.ExportRow, 0, len(ps))
	for _, id := range ps {
		p := r.s.patients[id]
		a := byPatient[id]
		out = append(out, reports.ExportRow{
			Name:        p.Name,
			DOB:         p.DOB,
			Contact:     p.Contact,
			BloodType:   p.BloodType,
			Address:     p.Address,
			TotalVisits: a.count,
			LastVisit:   a.last,
		})
	}

	return out, nil
}
