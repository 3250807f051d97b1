package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_exams_composite_key"}
	notNull := &pgconn.PgError{Code: "23502"}

	if !IsDuplicateKeyError(fmt.Errorf("insert: %w", unique)) {
		t.Error("wrapped unique violation should be detected")
	}
	if IsDuplicateKeyError(notNull) {
		t.Error("not-null violation is not a duplicate key")
	}
	if IsDuplicateKeyError(errors.New("boom")) {
		t.Error("plain errors are not duplicate keys")
	}
	if IsDuplicateKeyError(nil) {
		t.Error("nil is not a duplicate key")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_exams_composite_key"}

	if !IsDuplicateConstraintError(err, "uq_exams_composite_key") {
		t.Error("expected match on constraint name")
	}
	if IsDuplicateConstraintError(err, "exams_pkey") {
		t.Error("different constraint should not match")
	}
}
