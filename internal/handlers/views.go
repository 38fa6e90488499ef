package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/views"
)

func (h *TrackerHandler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(duration)
	}()

	h.respondJSON(w, h.service.RenderCurrent())
}

func (h *TrackerHandler) HandleSetView(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Views.SetView(views.View(payload.View)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respondJSON(w, h.service.RenderCurrent())
}

func (h *TrackerHandler) HandleViewPrev(w http.ResponseWriter, r *http.Request) {
	h.service.Views.Prev()
	h.respondJSON(w, h.service.RenderCurrent())
}

func (h *TrackerHandler) HandleViewNext(w http.ResponseWriter, r *http.Request) {
	h.service.Views.Next()
	h.respondJSON(w, h.service.RenderCurrent())
}
