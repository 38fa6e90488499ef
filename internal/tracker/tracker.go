package tracker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// Gateway is the persistence contract the tracker writes through on every
// mutation. Satisfied by *store.Gateway.
type Gateway interface {
	Load(ctx context.Context) ([]models.Assignment, map[models.SubjectKey]models.Subject, string, error)
	Save(ctx context.Context, assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject, bannerColor string) error
}

// Tracker owns the two root collections. It is the only writer; projections
// read a copied snapshot. The mutex is there because the HTTP layer is
// concurrent even though the model itself is single-writer.
type Tracker struct {
	mu          sync.Mutex
	assignments []models.Assignment
	subjects    map[models.SubjectKey]models.Subject
	bannerColor string

	gateway Gateway
	now     func() time.Time
}

func New(gateway Gateway, now func() time.Time) *Tracker {
	return &Tracker{
		assignments: []models.Assignment{},
		subjects:    map[models.SubjectKey]models.Subject{},
		bannerColor: "",
		gateway:     gateway,
		now:         now,
	}
}

// Hydrate replaces the in-memory state with the persisted snapshot. Called
// once at startup, before the tracker is handed to anything concurrent.
func (t *Tracker) Hydrate(ctx context.Context) error {
	assignments, subjects, bannerColor, err := t.gateway.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.assignments = assignments
	t.subjects = subjects
	t.bannerColor = bannerColor
	return nil
}

// Snapshot returns copies of both collections, safe to hand to projections
// while mutations continue.
func (t *Tracker) Snapshot() ([]models.Assignment, map[models.SubjectKey]models.Subject) {
	t.mu.Lock()
	defer t.mu.Unlock()

	assignments := make([]models.Assignment, len(t.assignments))
	copy(assignments, t.assignments)

	subjects := make(map[models.SubjectKey]models.Subject, len(t.subjects))
	for k, v := range t.subjects {
		subjects[k] = v
	}

	return assignments, subjects
}

func (t *Tracker) BannerColor() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bannerColor
}

// UpsertAssignment inserts when id is nil, replaces in place otherwise.
// Completion state is carried forward on edits: the form never touches it.
// Rejects unknown subject keys so a dangling reference can only ever appear
// through subject deletion, never through creation.
func (t *Tracker) UpsertAssignment(ctx context.Context, id *int64, name, subjectKey, dueDate string) (models.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := models.NewSubjectKey(subjectKey)
	if _, ok := t.subjects[key]; !ok {
		return models.Assignment{}, fmt.Errorf("%w: subject %q is not known", ErrValidation, subjectKey)
	}

	assignment := models.Assignment{
		Name:       strings.TrimSpace(name),
		SubjectKey: key,
		DueDate:    dueDate,
	}
	if id != nil {
		assignment.ID = *id
	} else {
		assignment.ID = t.now().UnixMilli()
	}

	existing := t.findAssignment(assignment.ID)
	if existing >= 0 {
		assignment.IsComplete = t.assignments[existing].IsComplete
		assignment.CompletionDate = t.assignments[existing].CompletionDate
	}

	if err := assignment.Validate(); err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if existing >= 0 {
		t.assignments[existing] = assignment
	} else {
		t.assignments = append(t.assignments, assignment)
	}

	if err := t.persist(ctx); err != nil {
		return assignment, err
	}
	return assignment, nil
}

// DeleteAssignment removes the matching record. Missing id is a no-op.
func (t *Tracker) DeleteAssignment(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.findAssignment(id)
	if idx < 0 {
		logger.Debug.Printf("Delete for unknown assignment %d, ignoring", id)
		return nil
	}

	t.assignments = append(t.assignments[:idx], t.assignments[idx+1:]...)
	return t.persist(ctx)
}

// ToggleCompletion flips completion state, stamping or clearing the
// completion time. Returns nil without error when the id is unknown.
func (t *Tracker) ToggleCompletion(ctx context.Context, id int64) (*models.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.findAssignment(id)
	if idx < 0 {
		logger.Debug.Printf("Toggle for unknown assignment %d, ignoring", id)
		return nil, nil
	}

	a := &t.assignments[idx]
	a.IsComplete = !a.IsComplete
	if a.IsComplete {
		ts := t.now().UnixMilli()
		a.CompletionDate = &ts
	} else {
		a.CompletionDate = nil
	}

	result := *a
	if err := t.persist(ctx); err != nil {
		return &result, err
	}
	return &result, nil
}

// UpsertSubject inserts or overwrites the entry at lowercase(trim(name)).
// Re-adding "MATH" over "math" updates display name and color, it never
// creates a second entry.
func (t *Tracker) UpsertSubject(ctx context.Context, name, color string) (models.SubjectKey, models.Subject, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", models.Subject{}, fmt.Errorf("%w: subject name is required", ErrValidation)
	}

	key := models.NewSubjectKey(trimmed)
	subject := models.Subject{Name: trimmed, Color: color}
	t.subjects[key] = subject

	if err := t.persist(ctx); err != nil {
		return key, subject, err
	}
	return key, subject, nil
}

// DeleteSubject removes the subject entry only. Assignments referencing it
// are left alone and become dangling; projections substitute a placeholder.
// Cascading the delete would silently destroy user data.
func (t *Tracker) DeleteSubject(ctx context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	normalized := models.NewSubjectKey(key)
	if _, ok := t.subjects[normalized]; !ok {
		logger.Debug.Printf("Delete for unknown subject %q, ignoring", key)
		return nil
	}

	delete(t.subjects, normalized)
	return t.persist(ctx)
}

func (t *Tracker) SetBannerColor(ctx context.Context, color string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(color) == "" {
		return fmt.Errorf("%w: banner color is required", ErrValidation)
	}

	t.bannerColor = color
	return t.persist(ctx)
}

func (t *Tracker) findAssignment(id int64) int {
	for i := range t.assignments {
		if t.assignments[i].ID == id {
			return i
		}
	}
	return -1
}

// persist write-throughs the whole state. Caller holds the lock. The
// in-memory change is NOT rolled back on failure.
func (t *Tracker) persist(ctx context.Context) error {
	if err := t.gateway.Save(ctx, t.assignments, t.subjects, t.bannerColor); err != nil {
		logger.Error.Printf("Failed to persist state: %v", err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
