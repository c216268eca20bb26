package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Reglas de formato para los campos de pacientes y visitas.
// Son predicados puros: sin estado, sin side effects. El handler colapsa
// cualquier fallo en un único "invalid format" (sin detalle por campo);
// el detalle fino queda del lado del cliente.

var (
	nameRe    = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	contactRe = regexp.MustCompile(`^[\d\s+()-]+$`)
)

// BloodTypes son los 8 valores ABO/Rh aceptados.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// PatientFields valida nombre y contacto.
// name: 2–100 chars, letras/espacios/guion/apóstrofe/punto.
// contact: 5–50 chars, dígitos y puntuación telefónica.
func PatientFields(name, contact string) bool {
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 || !nameRe.MatchString(name) {
		return false
	}
	if n := utf8.RuneCountInString(contact); n < 5 || n > 50 || !contactRe.MatchString(contact) {
		return false
	}
	return true
}

// VisitFields valida diagnóstico y medicación.
// diagnosis: 2–500 chars, obligatorio. medication: opcional, mismos límites.
// Ninguno puede traer comillas, punto y coma ni backslash (filtro defensivo,
// independiente de la parametrización del storage).
func VisitFields(diagnosis, medication string) bool {
	if n := utf8.RuneCountInString(diagnosis); n < 2 || n > 500 || hasForbiddenChars(diagnosis) {
		return false
	}
	if medication != "" {
		if n := utf8.RuneCountInString(medication); n < 2 || n > 500 || hasForbiddenChars(medication) {
			return false
		}
	}
	return true
}

func hasForbiddenChars(s string) bool {
	return strings.ContainsAny(s, `'";\`)
}

// DOB valida una fecha de nacimiento YYYY-MM-DD:
// no puede estar en el futuro ni implicar más de 150 años de edad.
func DOB(s string, now time.Time) bool {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	if t.After(now) {
		return false
	}
	return !t.Before(now.AddDate(-150, 0, 0))
}

// Date valida una fecha simple YYYY-MM-DD (fecha de visita).
func Date(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// BloodType acepta vacío (campo opcional) o uno de los 8 valores ABO/Rh.
func BloodType(s string) bool {
	if s == "" {
		return true
	}
	for _, bt := range BloodTypes {
		if s == bt {
			return true
		}
	}
	return false
}
