package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/semla/internal/models"
)

func TestProjectBySubject(t *testing.T) {
	assignments := []models.Assignment{
		{ID: 1, Name: "Essay", SubjectKey: "history", DueDate: "2024-05-10"},
		{ID: 2, Name: "Quiz prep", SubjectKey: "math", DueDate: "2024-05-08", IsComplete: true, CompletionDate: ms(100)},
		{ID: 3, Name: "Problem set", SubjectKey: "math", DueDate: "2024-05-02"},
		{ID: 4, Name: "Reading", SubjectKey: "history", DueDate: "2024-05-01"},
		{ID: 5, Name: "Derivatives", SubjectKey: "math", DueDate: "2024-04-28"},
	}

	groups := ProjectBySubject(assignments, testSubjects())

	t.Run("groups ordered alphabetically by key", func(t *testing.T) {
		require.Len(t, groups, 2)
		assert.Equal(t, models.SubjectKey("history"), groups[0].Key)
		assert.Equal(t, models.SubjectKey("math"), groups[1].Key)
	})

	t.Run("completed assignments filtered out", func(t *testing.T) {
		for _, group := range groups {
			for _, item := range group.Items {
				assert.False(t, item.Assignment.IsComplete)
			}
		}
		assert.Len(t, groups[1].Items, 2) // quiz prep (id 2) excluded
	})

	t.Run("items within a group ascending by due date", func(t *testing.T) {
		assert.Equal(t, int64(4), groups[0].Items[0].Assignment.ID)
		assert.Equal(t, int64(1), groups[0].Items[1].Assignment.ID)
		assert.Equal(t, int64(5), groups[1].Items[0].Assignment.ID)
		assert.Equal(t, int64(3), groups[1].Items[1].Assignment.ID)
	})

	t.Run("group carries resolved subject metadata", func(t *testing.T) {
		assert.Equal(t, "History", groups[0].Subject.Name)
		assert.Equal(t, "#123456", groups[0].Subject.Color)
	})
}

func TestProjectBySubject_Empty(t *testing.T) {
	groups := ProjectBySubject(nil, testSubjects())
	assert.Empty(t, groups)

	onlyDone := []models.Assignment{
		{ID: 1, Name: "Essay", SubjectKey: "history", DueDate: "2024-05-10", IsComplete: true, CompletionDate: ms(100)},
	}
	groups = ProjectBySubject(onlyDone, testSubjects())
	assert.Empty(t, groups)
}

func TestProjectBySubject_DanglingGroup(t *testing.T) {
	assignments := []models.Assignment{
		{ID: 1, Name: "Orphaned", SubjectKey: "zoology", DueDate: "2024-05-10"},
		{ID: 2, Name: "Essay", SubjectKey: "history", DueDate: "2024-05-10"},
	}

	groups := ProjectBySubject(assignments, testSubjects())

	require.Len(t, groups, 2)
	// "zoology" sorts after "history" and resolves to the placeholder
	assert.Equal(t, models.SubjectKey("zoology"), groups[1].Key)
	assert.Equal(t, "Unknown Subject", groups[1].Subject.Name)
	assert.Equal(t, "#aaaaaa", groups[1].Subject.Color)
}
