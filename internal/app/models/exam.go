package models

import "strings"

// Exam represents a scheduled exam in the database
type Exam struct {
	ID         int64      `json:"id"`
	Faculty    string     `json:"faculty"`
	ModuleName string     `json:"moduleName"`
	Title      string     `json:"title"`
	Date       Date       `json:"date" swaggertype:"string" example:"01-05-2024"`
	StartTime  *TimeOfDay `json:"startTime" swaggertype:"string" example:"09:00"`
	EndTime    *TimeOfDay `json:"endTime" swaggertype:"string" example:"11:00"`
	Format     *string    `json:"format" example:"in-person"`
}

// Key returns the composite natural key of the exam.
func (e *Exam) Key() ExamKey {
	return ExamKey{
		Faculty:    e.Faculty,
		ModuleName: e.ModuleName,
		Title:      e.Title,
	}
}

// ExamKey is the (faculty, module name, title) tuple that identifies an exam
// independently of its surrogate ID.
type ExamKey struct {
	Faculty    string
	ModuleName string
	Title      string
}

// Normalize trims surrounding whitespace from every key component.
func (k ExamKey) Normalize() ExamKey {
	return ExamKey{
		Faculty:    strings.TrimSpace(k.Faculty),
		ModuleName: strings.TrimSpace(k.ModuleName),
		Title:      strings.TrimSpace(k.Title),
	}
}

// IsComplete reports whether every key component is non-blank.
func (k ExamKey) IsComplete() bool {
	n := k.Normalize()
	return n.Faculty != "" && n.ModuleName != "" && n.Title != ""
}

// ExamSearch holds case-insensitive substring filters; empty fields are ignored.
type ExamSearch struct {
	Title      string
	Faculty    string
	ModuleName string
}

// IsEmpty reports whether no filter is set.
func (s ExamSearch) IsEmpty() bool {
	return s.Title == "" && s.Faculty == "" && s.ModuleName == ""
}
