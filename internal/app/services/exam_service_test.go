package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/yigit/examscheduler/internal/app/migrations"
	"github.com/yigit/examscheduler/internal/app/models"
	"github.com/yigit/examscheduler/internal/app/repositories"
	"github.com/yigit/examscheduler/internal/config"
	"github.com/yigit/examscheduler/internal/db"
	"github.com/yigit/examscheduler/internal/pkg/apperrors"
)

func newTestService(t *testing.T) ExamService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxOpenConns = 4
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "1h"

	database, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(database.Close)

	if _, err := migrations.NewMigrator(database).Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo, err := repositories.NewExamRepository(database)
	if err != nil {
		t.Fatalf("failed to build repository: %v", err)
	}
	return NewExamService(repo)
}

func midterm() *models.Exam {
	format := "in-person"
	return &models.Exam{
		Faculty:    "Engineering",
		ModuleName: "CS101",
		Title:      "Midterm",
		Date:       models.NewDate(2024, time.May, 1),
		StartTime:  models.NewTimeOfDay(9, 0),
		EndTime:    models.NewTimeOfDay(11, 0),
		Format:     &format,
	}
}

func TestExamService_Lifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateExam(ctx, midterm())
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", created.ID)
	}

	byID, err := svc.GetExamByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetExamByID returned error: %v", err)
	}
	byKey, err := svc.GetExamByKey(ctx, models.ExamKey{Faculty: "Engineering", ModuleName: "CS101", Title: "Midterm"})
	if err != nil {
		t.Fatalf("GetExamByKey returned error: %v", err)
	}
	if byID.ID != byKey.ID || byID.Date != byKey.Date || *byID.Format != "in-person" {
		t.Fatalf("lookups disagree: %+v vs %+v", byID, byKey)
	}

	newValues := midterm()
	online := "online"
	newValues.Format = &online
	updated, err := svc.UpdateExam(ctx, created.ID, newValues)
	if err != nil {
		t.Fatalf("UpdateExam returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed the id: %d -> %d", created.ID, updated.ID)
	}

	got, err := svc.GetExamByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetExamByID returned error: %v", err)
	}
	if *got.Format != "online" || got.Title != "Midterm" || got.Date != created.Date ||
		*got.StartTime != *created.StartTime || *got.EndTime != *created.EndTime {
		t.Fatalf("unexpected exam after update: %+v", got)
	}

	if err := svc.DeleteExam(ctx, created.ID); err != nil {
		t.Fatalf("DeleteExam returned error: %v", err)
	}
	if _, err := svc.GetExamByID(ctx, created.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestExamService_NotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	key := models.ExamKey{Faculty: "Law", ModuleName: "LAW100", Title: "Final"}

	checks := map[string]error{}
	_, checks["GetExamByID"] = svc.GetExamByID(ctx, 99)
	_, checks["GetExamByKey"] = svc.GetExamByKey(ctx, key)
	_, checks["UpdateExam"] = svc.UpdateExam(ctx, 99, midterm())
	_, checks["UpdateExamByKey"] = svc.UpdateExamByKey(ctx, key, midterm())
	checks["DeleteExam"] = svc.DeleteExam(ctx, 99)
	checks["DeleteExamByKey"] = svc.DeleteExamByKey(ctx, key)
	checks["DeleteExam zero id"] = svc.DeleteExam(ctx, 0)

	for op, err := range checks {
		if !errors.Is(err, apperrors.ErrExamNotFound) {
			t.Errorf("%s: expected ErrExamNotFound, got %v", op, err)
		}
	}
}

func TestExamService_CreateNormalizesAndValidates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	exam := midterm()
	exam.Faculty = "  Engineering  "
	exam.ID = 1234
	created, err := svc.CreateExam(ctx, exam)
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}
	if created.Faculty != "Engineering" {
		t.Fatalf("expected trimmed faculty, got %q", created.Faculty)
	}
	if created.ID == 1234 {
		t.Fatal("client supplied id must be ignored")
	}

	blank := midterm()
	blank.Title = "   "
	if _, err := svc.CreateExam(ctx, blank); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	noDate := midterm()
	noDate.Title = "Resit"
	noDate.Date = models.Date{}
	if _, err := svc.CreateExam(ctx, noDate); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for missing date, got %v", err)
	}

	if _, err := svc.CreateExam(ctx, midterm()); !errors.Is(err, apperrors.ErrExamAlreadyExists) {
		t.Fatalf("expected ErrExamAlreadyExists, got %v", err)
	}
}

func TestExamService_UpdateExamByKey(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateExam(ctx, midterm())
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}

	newValues := midterm()
	newValues.Date = models.NewDate(2024, time.May, 8)
	newValues.StartTime = nil
	updated, err := svc.UpdateExamByKey(ctx, models.ExamKey{Faculty: " Engineering", ModuleName: "CS101", Title: "Midterm "}, newValues)
	if err != nil {
		t.Fatalf("UpdateExamByKey returned error: %v", err)
	}
	if updated.ID != created.ID || updated.Date != newValues.Date || updated.StartTime != nil {
		t.Fatalf("unexpected update result %+v", updated)
	}
}

func TestExamService_SearchReturnsEmptySlice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateExam(ctx, midterm()); err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}

	found, err := svc.SearchByTitle(ctx, "TERM")
	if err != nil {
		t.Fatalf("SearchByTitle returned error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 match, got %d", len(found))
	}

	for name, search := range map[string]func() ([]*models.Exam, error){
		"title":      func() ([]*models.Exam, error) { return svc.SearchByTitle(ctx, "oral") },
		"faculty":    func() ([]*models.Exam, error) { return svc.SearchByFaculty(ctx, "medicine") },
		"moduleName": func() ([]*models.Exam, error) { return svc.SearchByModuleName(ctx, "BIO") },
		"combined": func() ([]*models.Exam, error) {
			return svc.SearchExams(ctx, models.ExamSearch{Title: "mid", Faculty: "law"})
		},
	} {
		got, err := search()
		if err != nil {
			t.Fatalf("%s search returned error: %v", name, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%s search: expected empty slice, got %#v", name, got)
		}
	}
}
