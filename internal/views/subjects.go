package views

import (
	"sort"

	"github.com/shrimpsizemoose/semla/internal/models"
)

type SubjectGroup struct {
	Key     models.SubjectKey `json:"key"`
	Subject models.Subject    `json:"subject"`
	Items   []Item            `json:"items"`
}

// ProjectBySubject groups incomplete assignments by subject key. Groups are
// ordered by key, not display name, so "zebra studies" saved as key "zebra
// studies" sorts after a subject displayed as "Álgebra" with key "álgebra";
// this matches the original behavior and is kept as-is.
func ProjectBySubject(assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject) []SubjectGroup {
	grouped := map[models.SubjectKey][]models.Assignment{}
	for _, a := range assignments {
		if a.IsComplete {
			continue
		}
		grouped[a.SubjectKey] = append(grouped[a.SubjectKey], a)
	}

	keys := make([]models.SubjectKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	groups := make([]SubjectGroup, 0, len(keys))
	for _, k := range keys {
		members := grouped[k]
		sortByDueDate(members)
		groups = append(groups, SubjectGroup{
			Key:     k,
			Subject: resolveSubject(subjects, k),
			Items:   newItems(members, subjects),
		})
	}

	return groups
}
