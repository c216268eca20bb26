package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))
		pr.Put("/{patientID}", updatePatientHandler(svc))
		pr.Delete("/{patientID}", deletePatientHandler(svc))
	})
}

type patientPayload struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Contact   string `json:"contact"`
	BloodType string `json:"bloodType"`
	Address   string `json:"address"`
}

type patientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"`
	Contact   string    `json:"contact"`
	BloodType string    `json:"bloodType,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sort := ParseSort(r.URL.Query().Get("sort"))

		items, err := svc.List(r.Context(), sort)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			ID:        req.ID,
			Name:      req.Name,
			DOB:       req.DOB,
			Contact:   req.Contact,
			BloodType: req.BloodType,
			Address:   req.Address,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "invalid format")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"id": p.ID})
	}
}

func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "patientID")

		var req patientPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			DOB:       req.DOB,
			Contact:   req.Contact,
			BloodType: req.BloodType,
			Address:   req.Address,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "invalid format")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "patientID")

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "invalid format")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:        p.ID,
		Name:      p.Name,
		DOB:       p.DOB,
		Contact:   p.Contact,
		BloodType: p.BloodType,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON/writeError se duplican a propósito en los handlers de cada módulo
// (patients/visits/reports) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
