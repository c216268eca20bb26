package reports

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/stats", statsHandler(svc))
	r.Get("/api/export.csv", exportCSVHandler(svc))
}

func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// exportCSVHandler replica el export de la UI original:
// una fila por paciente con resumen de visitas, "N/A"/"None" para ausentes.
func exportCSVHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ExportRows(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+svc.ExportFilename()+`"`)
		w.WriteHeader(http.StatusOK)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"Name", "Date of Birth", "Contact", "Blood Type", "Address", "Total Visits", "Last Visit"})
		for _, row := range rows {
			_ = cw.Write([]string{
				row.Name,
				row.DOB,
				row.Contact,
				orNA(row.BloodType),
				orNA(row.Address),
				strconv.Itoa(row.TotalVisits),
				orNone(row.LastVisit),
			})
		}
		cw.Flush()
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// Duplicado intencional (ver nota en patients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
