package models

import (
	"github.com/go-playground/validator/v10"
)

// DueDateFormat is the wire format for due dates. Fixed-width, so plain
// string comparison sorts chronologically and matches calendar day keys.
const DueDateFormat = "2006-01-02"

type Assignment struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name" validate:"required"`
	SubjectKey SubjectKey `json:"subjectKey" validate:"required"`
	DueDate    string     `json:"date" validate:"required,datetime=2006-01-02"`
	IsComplete bool       `json:"isComplete"`
	// CompletionDate is a unix-millisecond timestamp, nil while incomplete.
	CompletionDate *int64 `json:"completionDate"`
}

func (a *Assignment) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
