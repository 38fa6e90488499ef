package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to init service: %v", err)
	}
	defer service.Close()

	trackerHandler := handlers.NewTrackerHandler(service)

	http.HandleFunc("POST /api/v1/assignments", trackerHandler.HandleUpsertAssignment)
	http.HandleFunc("DELETE /api/v1/assignments/{id}", trackerHandler.HandleDeleteAssignment)
	http.HandleFunc("POST /api/v1/assignments/{id}/toggle", trackerHandler.HandleToggleAssignment)

	http.HandleFunc("POST /api/v1/subjects", trackerHandler.HandleUpsertSubject)
	http.HandleFunc("DELETE /api/v1/subjects/{key}", trackerHandler.HandleDeleteSubject)

	http.HandleFunc("PUT /api/v1/theme/banner", trackerHandler.HandleBannerColor)

	http.HandleFunc("GET /api/v1/view", trackerHandler.HandleGetView)
	http.HandleFunc("PUT /api/v1/view", trackerHandler.HandleSetView)
	http.HandleFunc("POST /api/v1/view/prev", trackerHandler.HandleViewPrev)
	http.HandleFunc("POST /api/v1/view/next", trackerHandler.HandleViewNext)

	http.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting semla server on %s", service.Config.Server.Port)
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Semla server failed: %v", err)
	}
}
