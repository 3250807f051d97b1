package repositories

import (
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yigit/examscheduler/internal/app/models"
)

// stubRow hands preset column values to Scan in order.
type stubRow []any

func (r stubRow) Scan(dest ...any) error {
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r[i]))
	}
	return nil
}

func TestPgTimeConversions(t *testing.T) {
	tests := []struct {
		name string
		in   *models.TimeOfDay
	}{
		{"null", nil},
		{"midnight", models.NewTimeOfDay(0, 0)},
		{"afternoon", models.NewTimeOfDay(13, 30)},
		{"last minute", models.NewTimeOfDay(23, 59)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := pgTime(tt.in)
			if tt.in == nil {
				if encoded.Valid {
					t.Fatal("nil time should encode as NULL")
				}
				if timeOfDayFromPg(encoded) != nil {
					t.Fatal("NULL should decode to nil")
				}
				return
			}

			want := int64(tt.in.Hour)*int64(time.Hour/time.Microsecond) + int64(tt.in.Minute)*int64(time.Minute/time.Microsecond)
			if !encoded.Valid || encoded.Microseconds != want {
				t.Fatalf("expected %d microseconds, got %+v", want, encoded)
			}
			decoded := timeOfDayFromPg(encoded)
			if decoded == nil || *decoded != *tt.in {
				t.Fatalf("round trip: got %v, want %v", decoded, tt.in)
			}
		})
	}
}

func TestPgExamValues(t *testing.T) {
	exam := sampleExam()
	exam.EndTime = nil
	exam.Format = nil

	values := pgExamValues(exam)

	if got := values["exam_date"].(pgtype.Date); !got.Valid || !got.Time.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected exam_date %+v", got)
	}
	if got := values["start_time"].(pgtype.Time); !got.Valid || got.Microseconds != exam.StartTime.Microseconds() {
		t.Errorf("unexpected start_time %+v", got)
	}
	if got := values["end_time"].(pgtype.Time); got.Valid {
		t.Errorf("missing end time should be NULL, got %+v", got)
	}
	if got := values["format"].(*string); got != nil {
		t.Errorf("missing format should be NULL, got %q", *got)
	}
	if len(values) != len(examColumns)-1 {
		t.Errorf("expected every column except id, got %v", values)
	}
}

func TestScanPgExam(t *testing.T) {
	date := pgtype.Date{Time: time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), Valid: true}

	t.Run("all fields", func(t *testing.T) {
		row := stubRow{
			int64(7), "Engineering", "CS101", "Final", date,
			pgtype.Time{Microseconds: models.NewTimeOfDay(13, 30).Microseconds(), Valid: true},
			pgtype.Time{Microseconds: models.NewTimeOfDay(16, 0).Microseconds(), Valid: true},
			pgtype.Text{String: "online", Valid: true},
		}

		exam, err := scanPgExam(row)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if exam.ID != 7 || exam.Title != "Final" || exam.Date != models.NewDate(2024, time.June, 14) {
			t.Fatalf("unexpected exam %+v", exam)
		}
		if exam.StartTime == nil || exam.StartTime.String() != "13:30" || exam.EndTime == nil || exam.EndTime.String() != "16:00" {
			t.Fatalf("unexpected times %v-%v", exam.StartTime, exam.EndTime)
		}
		if exam.Format == nil || *exam.Format != "online" {
			t.Fatalf("unexpected format %v", exam.Format)
		}
	})

	t.Run("null optional fields", func(t *testing.T) {
		row := stubRow{
			int64(8), "Science", "MATH201", "Quiz 1", date,
			pgtype.Time{}, pgtype.Time{}, pgtype.Text{},
		}

		exam, err := scanPgExam(row)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if exam.StartTime != nil || exam.EndTime != nil || exam.Format != nil {
			t.Fatalf("NULL columns should decode to nil, got %v %v %v", exam.StartTime, exam.EndTime, exam.Format)
		}
	})
}
