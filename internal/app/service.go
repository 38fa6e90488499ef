package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/store"
	"github.com/shrimpsizemoose/semla/internal/tracker"
	"github.com/shrimpsizemoose/semla/internal/views"
)

type Service struct {
	Config  *Config
	Gateway *store.Gateway
	Tracker *tracker.Tracker
	Views   *views.Coordinator
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := NewKV(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	gateway := store.NewGateway(kv)

	trk := tracker.New(gateway, time.Now)
	if err := trk.Hydrate(context.Background()); err != nil {
		gateway.Close()
		return nil, fmt.Errorf("failed to hydrate tracker: %w", err)
	}

	return &Service{
		Config:  config,
		Gateway: gateway,
		Tracker: trk,
		Views:   views.NewCoordinator(time.Now, config.Checklist.RecentDoneLimit),
	}, nil
}

// RenderCurrent re-derives the active projection from a fresh snapshot.
// Called after every mutation and every navigation event.
func (s *Service) RenderCurrent() views.Projection {
	assignments, subjects := s.Tracker.Snapshot()
	projection := s.Views.Render(assignments, subjects)
	metrics.ViewRendersTotal.WithLabelValues(string(projection.View)).Inc()
	return projection
}

func (s *Service) Close() error {
	if err := s.Gateway.Close(); err != nil {
		return fmt.Errorf("errors while closing: %v", err)
	}
	return nil
}
