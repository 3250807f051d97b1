package seed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/examscheduler/internal/app/migrations"
	"github.com/yigit/examscheduler/internal/app/models"
	"github.com/yigit/examscheduler/internal/app/repositories"
	"github.com/yigit/examscheduler/internal/app/services"
	"github.com/yigit/examscheduler/internal/config"
	"github.com/yigit/examscheduler/internal/db"
)

func newTestService(t *testing.T) services.ExamService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "seed.db")
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
	return services.NewExamService(repo)
}

func TestCreateDefaultDataSkipsExistingExams(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for run := 1; run <= 2; run++ {
		if err := CreateDefaultData(ctx, svc, zerolog.Nop()); err != nil {
			t.Fatalf("run %d returned error: %v", run, err)
		}

		all, err := svc.GetAllExams(ctx)
		if err != nil {
			t.Fatalf("GetAllExams returned error: %v", err)
		}
		if len(all) != len(DefaultExams()) {
			t.Fatalf("run %d: expected %d exams, got %d", run, len(DefaultExams()), len(all))
		}
	}
}

type failingService struct {
	services.ExamService
	err error
}

func (s failingService) CreateExam(context.Context, *models.Exam) (*models.Exam, error) {
	return nil, s.err
}

func TestCreateDefaultDataReportsOtherErrors(t *testing.T) {
	errDown := errors.New("database is locked")

	err := CreateDefaultData(context.Background(), failingService{err: errDown}, zerolog.Nop())
	if !errors.Is(err, errDown) {
		t.Fatalf("expected joined create errors, got %v", err)
	}
}
