package attendance

import (
	"attendance-backend/lib/scrapers/profile"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type IngestRequest struct {
	URL string `json:"url"`
}

type IngestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return Handler{service: service}
}

func (h Handler) RegisterRoutes(r chi.Router) {
	r.Post("/in", h.In)
	r.Get("/export", h.Export)
	r.Get("/health", h.Health)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		slog.Error("failed to encode json response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Detail: err.Error()})
}

func statusFor(err error) int {
	if errors.Is(err, profile.ErrExtractionFailed) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrInvalidURL) || errors.Is(err, ErrInvalidRecord) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h Handler) In(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "request body must be {\"url\": string}"})
		return
	}

	result, err := h.service.Ingest(r.Context(), req.URL)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "ingest failed", "url", req.URL, "err", err)
		} else {
			slog.InfoContext(r.Context(), "ingest rejected", "url", req.URL, "err", err)
		}
		writeError(w, status, err)
		return
	}

	slog.InfoContext(
		r.Context(), "attendance recorded",
		"roll_num", result.Record.RollNum,
		"inserted", result.Inserted,
	)
	writeJSON(w, http.StatusOK, IngestResponse{
		Success: true,
		Message: "URL processed successfully",
		URL:     result.URL,
	})
}

func (h Handler) Export(w http.ResponseWriter, r *http.Request) {
	table := TableIn
	if name := r.URL.Query().Get("table"); name != "" {
		parsed, err := ParseTable(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		table = parsed
	}

	data, err := h.service.Export(r.Context(), table)
	if err != nil {
		slog.ErrorContext(r.Context(), "export failed", "table", table, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="export.csv"`)
	w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}
