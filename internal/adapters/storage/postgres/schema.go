package postgres

import (
	"context"
	"database/sql"

	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema aplica el esquema al arrancar. Los statements son
// CREATE IF NOT EXISTS, así que es idempotente. El ON DELETE CASCADE
// de visits.patient_id es lo que hace atómico el borrado de un paciente
// con todas sus visitas.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
