package postgres

import (
	"context"
	"database/sql"

	"health-records/internal/domain/reports"
)

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) Stats(ctx context.Context, today, monthPrefix string) (reports.Stats, error) {
	// una sola query: los contadores salen de un snapshot consistente
	var st reports.Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM visits),
			(SELECT COUNT(*) FROM visits WHERE date >= $1),
			(SELECT COUNT(*) FROM visits WHERE date LIKE $2 || '%')
	`, today, monthPrefix).Scan(
		&st.TotalPatients,
		&st.TotalVisits,
		&st.UpcomingVisits,
		&st.VisitsThisMonth,
	)
	return st, err
}

func (r *ReportsRepo) ExportRows(ctx context.Context) ([]reports.ExportRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.name, p.dob, p.contact,
			COALESCE(p.blood_type, ''),
			COALESCE(p.address, ''),
			COUNT(v.id),
			COALESCE(MAX(v.date), '')
		FROM patients p
		LEFT JOIN visits v ON v.patient_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.ExportRow, 0)
	for rows.Next() {
		var row reports.ExportRow
		if err := rows.Scan(
			&row.Name,
			&row.DOB,
			&row.Contact,
			&row.BloodType,
			&row.Address,
			&row.TotalVisits,
			&row.LastVisit,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
