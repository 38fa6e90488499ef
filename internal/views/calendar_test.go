package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/semla/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectMonthGrid_Length(t *testing.T) {
	testCases := []struct {
		name          string
		anchor        time.Time
		leadingBlanks int
		daysInMonth   int
	}{
		{
			name:          "May 2024 starts on Wednesday",
			anchor:        date(2024, time.May, 15),
			leadingBlanks: 3,
			daysInMonth:   31,
		},
		{
			name:          "February 2024 is a leap month starting Thursday",
			anchor:        date(2024, time.February, 1),
			leadingBlanks: 4,
			daysInMonth:   29,
		},
		{
			name:          "September 2024 starts on Sunday, no leading blanks",
			anchor:        date(2024, time.September, 30),
			leadingBlanks: 0,
			daysInMonth:   30,
		},
		{
			name:          "February 2025 starts on Saturday",
			anchor:        date(2025, time.February, 10),
			leadingBlanks: 6,
			daysInMonth:   28,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			grid := ProjectMonthGrid(tc.anchor, tc.anchor, nil, testSubjects())

			require.Len(t, grid.Cells, tc.leadingBlanks+tc.daysInMonth)

			for i := 0; i < tc.leadingBlanks; i++ {
				assert.True(t, grid.Cells[i].Placeholder, "cell %d should be a placeholder", i)
				assert.Empty(t, grid.Cells[i].Date)
			}

			first := grid.Cells[tc.leadingBlanks]
			assert.False(t, first.Placeholder)
			assert.Equal(t, 1, first.Day)

			last := grid.Cells[len(grid.Cells)-1]
			assert.False(t, last.Placeholder, "no trailing padding, last cell is the last day")
			assert.Equal(t, tc.daysInMonth, last.Day)
		})
	}
}

func TestProjectMonthGrid_Buckets(t *testing.T) {
	assignments := []models.Assignment{
		{ID: 1, Name: "Essay", SubjectKey: "history", DueDate: "2024-05-10"},
		{ID: 2, Name: "Problem set", SubjectKey: "math", DueDate: "2024-05-10"},
		{ID: 3, Name: "Finished early", SubjectKey: "math", DueDate: "2024-05-10", IsComplete: true, CompletionDate: ms(100)},
		{ID: 4, Name: "Next month", SubjectKey: "math", DueDate: "2024-06-10"},
	}

	anchor := date(2024, time.May, 1)
	grid := ProjectMonthGrid(anchor, anchor, assignments, testSubjects())

	var may10 *DayCell
	for i := range grid.Cells {
		if grid.Cells[i].Date == "2024-05-10" {
			may10 = &grid.Cells[i]
			break
		}
	}
	require.NotNil(t, may10)

	require.Len(t, may10.Items, 2, "completed and out-of-month assignments excluded")
	assert.Equal(t, int64(1), may10.Items[0].Assignment.ID)
	assert.Equal(t, int64(2), may10.Items[1].Assignment.ID)
	assert.Equal(t, "History", may10.Items[0].Subject.Name)
}

func TestProjectMonthGrid_TodayMarker(t *testing.T) {
	anchor := date(2024, time.May, 1)
	today := date(2024, time.May, 17)

	grid := ProjectMonthGrid(anchor, today, nil, testSubjects())

	var marked []string
	for _, cell := range grid.Cells {
		if cell.IsToday {
			marked = append(marked, cell.Date)
		}
	}
	assert.Equal(t, []string{"2024-05-17"}, marked)
}

func TestProjectMonthGrid_Title(t *testing.T) {
	grid := ProjectMonthGrid(date(2024, time.February, 29), date(2024, time.February, 29), nil, nil)
	assert.Equal(t, "February 2024", grid.Title)
}

func TestProjectTwoWeekGrid_AlwaysFourteen(t *testing.T) {
	testCases := []struct {
		name    string
		anchor  time.Time
		padding int
	}{
		{
			name:    "Sunday anchor needs no padding",
			anchor:  date(2024, time.May, 5),
			padding: 0,
		},
		{
			name:    "Wednesday anchor pads three slots",
			anchor:  date(2024, time.May, 1),
			padding: 3,
		},
		{
			name:    "Saturday anchor pads six slots",
			anchor:  date(2024, time.May, 4),
			padding: 6,
		},
		{
			name:    "anchor spanning a month boundary",
			anchor:  date(2024, time.May, 28),
			padding: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			grid := ProjectTwoWeekGrid(tc.anchor, tc.anchor, nil, testSubjects())

			require.Len(t, grid.Cells, 14)

			for i := 0; i < tc.padding; i++ {
				assert.True(t, grid.Cells[i].Placeholder, "cell %d should be a placeholder", i)
			}

			// the rest are consecutive days starting at the anchor
			for i := tc.padding; i < 14; i++ {
				cell := grid.Cells[i]
				require.False(t, cell.Placeholder)
				expected := tc.anchor.AddDate(0, 0, i-tc.padding).Format(models.DueDateFormat)
				assert.Equal(t, expected, cell.Date)
			}
		})
	}
}

func TestProjectTwoWeekGrid_Buckets(t *testing.T) {
	assignments := []models.Assignment{
		{ID: 1, Name: "Essay", SubjectKey: "history", DueDate: "2024-05-03"},
		{ID: 2, Name: "Too far out", SubjectKey: "math", DueDate: "2024-05-20"},
		{ID: 3, Name: "Already done", SubjectKey: "math", DueDate: "2024-05-03", IsComplete: true, CompletionDate: ms(100)},
	}

	anchor := date(2024, time.May, 1) // Wednesday
	grid := ProjectTwoWeekGrid(anchor, anchor, assignments, testSubjects())

	var found []int64
	for _, cell := range grid.Cells {
		for _, item := range cell.Items {
			found = append(found, item.Assignment.ID)
		}
	}

	// May 20 falls outside anchor+13 (May 14), completed items never appear
	assert.Equal(t, []int64{1}, found)
}

func TestProjectTwoWeekGrid_Title(t *testing.T) {
	grid := ProjectTwoWeekGrid(date(2024, time.May, 1), date(2024, time.May, 1), nil, nil)
	assert.Equal(t, "May 1 - May 14, 2024", grid.Title)
}
