package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// Storage keys. The values are JSON strings; the layout is a compatibility
// contract with earlier versions of the tracker, do not rename fields.
const (
	KeyAssignments = "assignments"
	KeySubjects    = "subjects"
	KeyBannerColor = "bannerColor"

	DefaultBannerColor = "#4a90e2"
)

// Gateway serializes the two root collections plus the banner color into the
// underlying KV. It holds no state of its own: the in-memory session owns the
// collections, the KV only ever sees full snapshots.
type Gateway struct {
	kv KV
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

func (g *Gateway) Close() error {
	return g.kv.Close()
}

// Load reads the persisted snapshot. Absent keys are not an error: they mean
// a fresh install and come back as empty collections. Records written before
// completion tracking existed lack isComplete/completionDate, those are
// defaulted here on every load so nothing past this boundary deals with
// partially-populated assignments.
func (g *Gateway) Load(ctx context.Context) ([]models.Assignment, map[models.SubjectKey]models.Subject, string, error) {
	assignments := []models.Assignment{}
	raw, ok, err := g.kv.Get(ctx, KeyAssignments)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load assignments: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &assignments); err != nil {
			return nil, nil, "", fmt.Errorf("failed to decode assignments: %w", err)
		}
		migrateAssignments(assignments)
	}

	subjects := map[models.SubjectKey]models.Subject{}
	raw, ok, err = g.kv.Get(ctx, KeySubjects)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load subjects: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &subjects); err != nil {
			return nil, nil, "", fmt.Errorf("failed to decode subjects: %w", err)
		}
	}

	bannerColor, ok, err := g.kv.Get(ctx, KeyBannerColor)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load banner color: %w", err)
	}
	if !ok || bannerColor == "" {
		bannerColor = DefaultBannerColor
	}

	logger.Debug.Printf("Loaded %d assignments, %d subjects", len(assignments), len(subjects))

	return assignments, subjects, bannerColor, nil
}

// Save writes the full snapshot. A failed write is reported to the caller;
// the in-memory state that triggered it is already applied, so the caller
// decides whether to retry or surface an unsaved-changes warning.
func (g *Gateway) Save(ctx context.Context, assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject, bannerColor string) error {
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	if subjects == nil {
		subjects = map[models.SubjectKey]models.Subject{}
	}

	rawAssignments, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("failed to encode assignments: %w", err)
	}
	rawSubjects, err := json.Marshal(subjects)
	if err != nil {
		return fmt.Errorf("failed to encode subjects: %w", err)
	}

	if err := g.kv.Set(ctx, KeyAssignments, string(rawAssignments)); err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}
	if err := g.kv.Set(ctx, KeySubjects, string(rawSubjects)); err != nil {
		return fmt.Errorf("failed to save subjects: %w", err)
	}
	if err := g.kv.Set(ctx, KeyBannerColor, bannerColor); err != nil {
		return fmt.Errorf("failed to save banner color: %w", err)
	}

	return nil
}

func migrateAssignments(assignments []models.Assignment) {
	for i := range assignments {
		// zero used to mean "never completed" in old snapshots
		if assignments[i].CompletionDate != nil && *assignments[i].CompletionDate == 0 {
			assignments[i].CompletionDate = nil
		}
		if !assignments[i].IsComplete {
			assignments[i].CompletionDate = nil
		}
	}
}
