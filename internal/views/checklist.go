package views

import "github.com/shrimpsizemoose/semla/internal/models"

// DefaultRecentDoneLimit caps the "Recently Completed" tail of the checklist.
const DefaultRecentDoneLimit = 5

type ChecklistState string

const (
	// ChecklistEmpty: nothing tracked at all
	ChecklistEmpty ChecklistState = "empty"
	// ChecklistAllCaughtUp: nothing left to do, but completed items exist
	ChecklistAllCaughtUp ChecklistState = "all_caught_up"
	ChecklistNormal      ChecklistState = "normal"
)

type Checklist struct {
	State ChecklistState `json:"state"`
	Todo  []Item         `json:"todo"`
	Done  []Item         `json:"done"`
}

// ProjectChecklist partitions assignments into todo (ascending by due date)
// and done (most recently completed first, truncated to limit).
func ProjectChecklist(assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject, limit int) Checklist {
	if limit <= 0 {
		limit = DefaultRecentDoneLimit
	}

	var todo, done []models.Assignment
	for _, a := range assignments {
		if a.IsComplete {
			done = append(done, a)
		} else {
			todo = append(todo, a)
		}
	}

	sortByDueDate(todo)
	sortByCompletion(done)
	if len(done) > limit {
		done = done[:limit]
	}

	state := ChecklistNormal
	switch {
	case len(todo) == 0 && len(done) == 0:
		state = ChecklistEmpty
	case len(todo) == 0:
		state = ChecklistAllCaughtUp
	}

	return Checklist{
		State: state,
		Todo:  newItems(todo, subjects),
		Done:  newItems(done, subjects),
	}
}
