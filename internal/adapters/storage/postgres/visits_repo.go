package postgres

import (
	"context"
	"database/sql"

	"health-records/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) Insert(ctx context.Context, v visits.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (
			id, patient_id,
			date, diagnosis,
			medication, notes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		v.ID,
		v.PatientID,
		v.Date,
		v.Diagnosis,
		toNullString(v.Medication),
		toNullString(v.Notes),
		v.CreatedAt,
	)
	return err
}

func (r *VisitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, patient_id,
			date, diagnosis,
			medication, notes,
			created_at
		FROM visits
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		var v visits.Visit
		var medication, notes sql.NullString
		if err := rows.Scan(
			&v.ID,
			&v.PatientID,
			&v.Date,
			&v.Diagnosis,
			&medication,
			&notes,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}

		v.Medication = medication.String
		v.Notes = notes.String

		out = append(out, v)
	}

	return out, rows.Err()
}
