package validate_test

import (
	"strings"
	"testing"
	"time"

	"health-records/internal/validate"

	"github.com/stretchr/testify/assert"
)

func TestPatientFields(t *testing.T) {
	// nombre demasiado corto
	assert.False(t, validate.PatientFields("A", "555-0100"))
	// nombre con charset completo permitido
	assert.True(t, validate.PatientFields("Jo Ann O'Brien-Smith", "555-0100"))
	// contacto inválido
	assert.False(t, validate.PatientFields("Jane Doe", "abc"))
	// contacto con puntuación telefónica
	assert.True(t, validate.PatientFields("Jane Doe", "+1 (555) 123-4567"))
	// nombre con dígitos
	assert.False(t, validate.PatientFields("Jane 2", "555-0100"))
	// límites de longitud
	assert.False(t, validate.PatientFields(strings.Repeat("a", 101), "555-0100"))
	assert.True(t, validate.PatientFields(strings.Repeat("a", 100), "555-0100"))
	assert.False(t, validate.PatientFields("Jane Doe", "1234"))
	assert.False(t, validate.PatientFields("Jane Doe", strings.Repeat("1", 51)))
}

func TestVisitFields(t *testing.T) {
	assert.True(t, validate.VisitFields("Flu", ""))
	assert.True(t, validate.VisitFields("Flu", "Paracetamol 500mg"))
	assert.False(t, validate.VisitFields("F", ""))
	assert.False(t, validate.VisitFields(strings.Repeat("x", 501), ""))
	assert.True(t, validate.VisitFields(strings.Repeat("x", 500), ""))
	// medication opcional pero con mínimos si viene
	assert.False(t, validate.VisitFields("Flu", "x"))

	// filtro defensivo de caracteres
	for _, bad := range []string{`Flu'`, `Flu"`, `Flu;`, `Flu\`} {
		assert.False(t, validate.VisitFields(bad, ""), "diagnosis %q", bad)
		assert.False(t, validate.VisitFields("Flu", bad), "medication %q", bad)
	}
}

func TestFieldLengthsCountRunes(t *testing.T) {
	// los límites son por caracteres, no por bytes
	assert.True(t, validate.VisitFields(strings.Repeat("á", 500), ""))
	assert.False(t, validate.VisitFields(strings.Repeat("á", 501), ""))
	assert.False(t, validate.VisitFields("á", ""))
	assert.True(t, validate.VisitFields("Flu", strings.Repeat("á", 500)))
}

func TestDOB(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, validate.DOB("1990-01-01", now))
	assert.True(t, validate.DOB("2024-06-01", now))
	// futuro
	assert.False(t, validate.DOB("2025-01-01", now))
	// más de 150 años
	assert.False(t, validate.DOB("1850-01-01", now))
	// formato inválido
	assert.False(t, validate.DOB("01/01/1990", now))
	assert.False(t, validate.DOB("", now))
}

func TestDate(t *testing.T) {
	assert.True(t, validate.Date("2024-01-01"))
	assert.False(t, validate.Date("2024-13-01"))
	assert.False(t, validate.Date("hoy"))
}

func TestBloodType(t *testing.T) {
	assert.True(t, validate.BloodType(""))
	for _, bt := range validate.BloodTypes {
		assert.True(t, validate.BloodType(bt))
	}
	assert.False(t, validate.BloodType("C+"))
	assert.False(t, validate.BloodType("a+"))
}
