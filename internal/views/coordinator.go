package views

import (
	"fmt"
	"sync"
	"time"

	"github.com/shrimpsizemoose/semla/internal/models"
)

type View string

const (
	ViewList    View = "list"
	ViewSubject View = "subject"
	ViewMonth   View = "month"
	ViewWeek    View = "week"
)

// Projection is the rendered output of whichever view is active. Exactly one
// of Checklist/Groups/Grid is populated.
type Projection struct {
	View      View           `json:"view"`
	Anchor    string         `json:"anchor,omitempty"`
	Checklist *Checklist     `json:"checklist,omitempty"`
	Groups    []SubjectGroup `json:"groups,omitempty"`
	Grid      *Grid          `json:"grid,omitempty"`
}

// Coordinator tracks which view is active and which calendar anchor is in
// effect. Transitions happen only on explicit selection or prev/next
// navigation. Switching to a non-calendar view resets the anchor, so coming
// back to a calendar always lands on today rather than the last-viewed
// period.
type Coordinator struct {
	mu     sync.Mutex
	view   View
	anchor time.Time

	now             func() time.Time
	recentDoneLimit int
}

func NewCoordinator(now func() time.Time, recentDoneLimit int) *Coordinator {
	return &Coordinator{
		view:            ViewList,
		anchor:          now(),
		now:             now,
		recentDoneLimit: recentDoneLimit,
	}
}

func (c *Coordinator) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Coordinator) Anchor() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anchor
}

func (c *Coordinator) SetView(view View) error {
	switch view {
	case ViewList, ViewSubject, ViewMonth, ViewWeek:
	default:
		return fmt.Errorf("unknown view %q", view)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.view = view
	if view != ViewMonth && view != ViewWeek {
		c.anchor = c.now()
	}
	return nil
}

// Prev shifts the anchor one month back (month view) or 14 days back (week
// view). No-op for list/subject.
func (c *Coordinator) Prev() {
	c.shift(-1)
}

// Next is Prev in the other direction.
func (c *Coordinator) Next() {
	c.shift(1)
}

func (c *Coordinator) shift(direction int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.view {
	case ViewMonth:
		c.anchor = c.anchor.AddDate(0, direction, 0)
	case ViewWeek:
		c.anchor = c.anchor.AddDate(0, 0, direction*14)
	}
}

// Render fully re-derives the active projection. Cheap by construction: the
// projections are pure and the collections are tiny, so no incremental
// diffing is attempted.
func (c *Coordinator) Render(assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject) Projection {
	c.mu.Lock()
	view := c.view
	anchor := c.anchor
	limit := c.recentDoneLimit
	today := c.now()
	c.mu.Unlock()

	switch view {
	case ViewSubject:
		return Projection{
			View:   view,
			Groups: ProjectBySubject(assignments, subjects),
		}
	case ViewMonth:
		grid := ProjectMonthGrid(anchor, today, assignments, subjects)
		return Projection{
			View:   view,
			Anchor: anchor.Format(models.DueDateFormat),
			Grid:   &grid,
		}
	case ViewWeek:
		grid := ProjectTwoWeekGrid(anchor, today, assignments, subjects)
		return Projection{
			View:   view,
			Anchor: anchor.Format(models.DueDateFormat),
			Grid:   &grid,
		}
	default:
		checklist := ProjectChecklist(assignments, subjects, limit)
		return Projection{
			View:      view,
			Checklist: &checklist,
		}
	}
}
