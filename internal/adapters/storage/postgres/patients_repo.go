package postgres

import (
	"context"
	"database/sql"
	"strings"

	"health-records/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) Insert(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (
			id, name, dob, contact,
			blood_type, address,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Name,
		p.DOB,
		p.Contact,
		toNullString(p.BloodType),
		toNullString(p.Address),
		p.CreatedAt,
	)
	return err
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	// created_at no se toca. Cero filas afectadas no es error: actualizar
	// un id inexistente es un no-op por contrato.
	_, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			name = $2,
			dob = $3,
			contact = $4,
			blood_type = $5,
			address = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.DOB,
		p.Contact,
		toNullString(p.BloodType),
		toNullString(p.Address),
	)
	return err
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	// un solo statement: la cascada a visits la resuelve la FK,
	// ningún lector ve el estado intermedio
	_, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *PatientsRepo) List(ctx context.Context, by patients.Sort) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, dob, contact,
			blood_type, address,
			created_at
		FROM patients
		ORDER BY `+orderClause(by),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		var p patients.Patient
		var bloodType, address sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.DOB,
			&p.Contact,
			&bloodType,
			&address,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}

		p.BloodType = bloodType.String
		p.Address = address.String

		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PatientsRepo) Exists(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// orderClause mapea el Sort del dominio a un ORDER BY fijo.
// Nunca interpola input del caller: el switch es cerrado.
func orderClause(by patients.Sort) string {
	switch by {
	case patients.SortNameAsc:
		return "name ASC"
	case patients.SortNameDesc:
		return "name DESC"
	case patients.SortOldest:
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}

// blood_type y address son nullable; string vacío se guarda como NULL
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
