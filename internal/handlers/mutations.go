package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/tracker"
)

type TrackerHandler struct {
	service *app.Service
}

func NewTrackerHandler(service *app.Service) *TrackerHandler {
	return &TrackerHandler{
		service: service,
	}
}

type assignmentPayload struct {
	ID         *int64 `json:"id,omitempty"`
	Name       string `json:"name"`
	SubjectKey string `json:"subjectKey"`
	Date       string `json:"date"`
}

type subjectPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *TrackerHandler) HandleUpsertAssignment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(duration)
	}()

	var payload assignmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.Tracker.UpsertAssignment(r.Context(), payload.ID, payload.Name, payload.SubjectKey, payload.Date)
	if err != nil {
		h.respondError(w, err)
		return
	}
	metrics.MutationsTotal.WithLabelValues("upsert_assignment").Inc()

	h.respondJSON(w, map[string]interface{}{
		"assignment": assignment,
		"view":       h.service.RenderCurrent(),
	})
}

func (h *TrackerHandler) HandleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid assignment id", http.StatusBadRequest)
		return
	}

	if err := h.service.Tracker.DeleteAssignment(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	metrics.MutationsTotal.WithLabelValues("delete_assignment").Inc()

	h.respondJSON(w, map[string]interface{}{
		"view": h.service.RenderCurrent(),
	})
}

func (h *TrackerHandler) HandleToggleAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid assignment id", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.Tracker.ToggleCompletion(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	metrics.MutationsTotal.WithLabelValues("toggle_completion").Inc()

	h.respondJSON(w, map[string]interface{}{
		"assignment": assignment,
		"view":       h.service.RenderCurrent(),
	})
}

func (h *TrackerHandler) HandleUpsertSubject(w http.ResponseWriter, r *http.Request) {
	var payload subjectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	key, subject, err := h.service.Tracker.UpsertSubject(r.Context(), payload.Name, payload.Color)
	if err != nil {
		h.respondError(w, err)
		return
	}
	metrics.MutationsTotal.WithLabelValues("upsert_subject").Inc()

	h.respondJSON(w, map[string]interface{}{
		"key":     key,
		"subject": subject,
		"view":    h.service.RenderCurrent(),
	})
}

func (h *TrackerHandler) HandleDeleteSubject(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		http.Error(w, "Invalid subject key", http.StatusBadRequest)
		return
	}

	if err := h.service.Tracker.DeleteSubject(r.Context(), key); err != nil {
		h.respondError(w, err)
		return
	}
	metrics.MutationsTotal.WithLabelValues("delete_subject").Inc()

	h.respondJSON(w, map[string]interface{}{
		"view": h.service.RenderCurrent(),
	})
}

func (h *TrackerHandler) HandleBannerColor(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Tracker.SetBannerColor(r.Context(), payload.Color); err != nil {
		h.respondError(w, err)
		return
	}
	metrics.MutationsTotal.WithLabelValues("set_banner_color").Inc()

	h.respondJSON(w, map[string]interface{}{
		"bannerColor": h.service.Tracker.BannerColor(),
	})
}

func (h *TrackerHandler) respondJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *TrackerHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracker.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, tracker.ErrStorage):
		logger.Error.Printf("Storage failure: %v", err)
		metrics.StorageSaveFailures.Inc()
		http.Error(w, "Failed to persist changes", http.StatusInternalServerError)
	default:
		logger.Error.Printf("Unexpected error: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
