package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(svc))
		vr.Post("/", createVisitHandler(svc))
	})
}

type createVisitRequest struct {
	ID         string `json:"id,omitempty"`
	PatientID  string `json:"patientId"`
	Date       string `json:"date"`
	Diagnosis  string `json:"diagnosis"`
	Medication string `json:"medication"`
	Notes      string `json:"notes"`
}

type visitResponse struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patientId"`
	Date       string    `json:"date"`
	Diagnosis  string    `json:"diagnosis"`
	Medication string    `json:"medication,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			ID:         req.ID,
			PatientID:  req.PatientID,
			Date:       req.Date,
			Diagnosis:  req.Diagnosis,
			Medication: req.Medication,
			Notes:      req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "invalid format")
			case errors.Is(err, ErrPatientNotFound):
				writeError(w, http.StatusNotFound, "patient not found")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"id": v.ID})
	}
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:         v.ID,
		PatientID:  v.PatientID,
		Date:       v.Date,
		Diagnosis:  v.Diagnosis,
		Medication: v.Medication,
		Notes:      v.Notes,
		CreatedAt:  v.CreatedAt,
	}
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
