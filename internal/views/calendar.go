package views

import (
	"fmt"
	"time"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// DayCell is one slot of a calendar grid. Placeholder cells carry no date and
// no assignments; they exist only to keep real days aligned to weekday
// columns.
type DayCell struct {
	Placeholder bool   `json:"placeholder"`
	Date        string `json:"date,omitempty"`
	Day         int    `json:"day,omitempty"`
	IsToday     bool   `json:"isToday,omitempty"`
	Items       []Item `json:"items,omitempty"`
}

type Grid struct {
	Title string    `json:"title"`
	Cells []DayCell `json:"cells"`
}

// ProjectMonthGrid builds the month view for the anchor's month: leading
// placeholder cells up to the weekday of the 1st, then one cell per calendar
// day. No trailing padding, so the grid length is weekday(1st) + daysInMonth
// and the final row may be partial. Days are constructed from date
// components, not by adding 24h increments, so DST transitions cannot shift
// a day.
func ProjectMonthGrid(anchor, today time.Time, assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject) Grid {
	year, month, _ := anchor.Date()
	loc := anchor.Location()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Placeholder: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cells = append(cells, newDayCell(date, today, assignments, subjects))
	}

	return Grid{
		Title: first.Format("January 2006"),
		Cells: cells,
	}
}

// ProjectTwoWeekGrid builds 14 consecutive days starting at the anchor, then
// left-pads with placeholders back to the most recent Sunday and truncates
// the result to exactly 14 slots. The grid therefore always starts on a week
// boundary and always has length 14, with the padded head non-interactive.
func ProjectTwoWeekGrid(anchor, today time.Time, assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject) Grid {
	year, month, day := anchor.Date()
	loc := anchor.Location()

	cells := make([]DayCell, 0, 14)
	for i := 0; i < 14; i++ {
		date := time.Date(year, month, day+i, 0, 0, 0, 0, loc)
		cells = append(cells, newDayCell(date, today, assignments, subjects))
	}

	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	for wd := start.Weekday(); wd != time.Sunday; wd-- {
		cells = append([]DayCell{{Placeholder: true}}, cells...)
	}
	cells = cells[:14]

	end := time.Date(year, month, day+13, 0, 0, 0, 0, loc)
	title := fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))

	return Grid{
		Title: title,
		Cells: cells,
	}
}

// newDayCell buckets incomplete assignments onto the day by exact ISO-date
// match. Completed assignments never show up on calendars.
func newDayCell(date, today time.Time, assignments []models.Assignment, subjects map[models.SubjectKey]models.Subject) DayCell {
	iso := date.Format(models.DueDateFormat)

	var due []models.Assignment
	for _, a := range assignments {
		if !a.IsComplete && a.DueDate == iso {
			due = append(due, a)
		}
	}

	return DayCell{
		Date:    iso,
		Day:     date.Day(),
		IsToday: iso == today.Format(models.DueDateFormat),
		Items:   newItems(due, subjects),
	}
}
