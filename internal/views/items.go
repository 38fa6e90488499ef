// Package views derives the four display projections from the domain model.
// Everything here is a pure function: same assignments, subjects and anchor
// in, same projection out, so re-rendering is always a full re-derivation.
package views

import (
	"sort"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// Placeholder shown for assignments whose subject was deleted. Subjects are
// resolved at projection time, never cached on the assignment, so re-adding
// or recoloring a subject shows up everywhere on the next render.
var unknownSubject = models.Subject{Name: "Unknown Subject", Color: "#aaaaaa"}

type Item struct {
	Assignment models.Assignment `json:"assignment"`
	Subject    models.Subject    `json:"subject"`
}

func resolveSubject(subjects map[models.SubjectKey]models.Subject, key models.SubjectKey) models.Subject {
	if subject, ok := subjects[key]; ok {
		return subject
	}
	return unknownSubject
}

func newItems(assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject) []Item {
	items := make([]Item, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, Item{
			Assignment: a,
			Subject:    resolveSubject(subjects, a.SubjectKey),
		})
	}
	return items
}

// sortByDueDate orders ascending by due date. Dates are fixed-width
// YYYY-MM-DD so plain string comparison is chronological; ties keep their
// original relative order.
func sortByDueDate(assignments []models.Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].DueDate < assignments[j].DueDate
	})
}

// sortByCompletion orders most recently completed first.
func sortByCompletion(assignments []models.Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		return completedAt(assignments[i]) > completedAt(assignments[j])
	})
}

func completedAt(a models.Assignment) int64 {
	if a.CompletionDate == nil {
		return 0
	}
	return *a.CompletionDate
}
