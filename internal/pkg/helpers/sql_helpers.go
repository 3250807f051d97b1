package helpers

import (
	"database/sql"
	"fmt"

	"github.com/yigit/examscheduler/internal/app/models"
)

// GetNullString converts a string pointer to sql.NullString.
// If the pointer is nil, returns an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr is the inverse of GetNullString.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// GetNullTimeOfDay encodes an optional time of day as HH:mm text.
func GetNullTimeOfDay(t *models.TimeOfDay) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.String(), Valid: true}
}

// TimeOfDayPtr decodes a column written by GetNullTimeOfDay.
func TimeOfDayPtr(ns sql.NullString) (*models.TimeOfDay, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := models.ParseTimeOfDay(ns.String)
	if err != nil {
		return nil, fmt.Errorf("invalid stored time %q: %w", ns.String, err)
	}
	return &t, nil
}
