package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SubjectKey is the normalized join key between assignments and subjects.
// Build one with NewSubjectKey rather than casting a raw string, otherwise
// a differently-cased name silently misses the lookup.
type SubjectKey string

func NewSubjectKey(name string) SubjectKey {
	return SubjectKey(strings.ToLower(strings.TrimSpace(name)))
}

type Subject struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

func (s *Subject) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
