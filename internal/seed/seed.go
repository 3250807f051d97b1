package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/examscheduler/internal/app/models"
	"github.com/yigit/examscheduler/internal/app/services"
	"github.com/yigit/examscheduler/internal/pkg/apperrors"
)

// DefaultExams returns the sample timetable created on first start.
func DefaultExams() []*models.Exam {
	inPerson := "in-person"
	online := "online"

	return []*models.Exam{
		{
			Faculty:    "Engineering",
			ModuleName: "CS101",
			Title:      "Midterm",
			Date:       models.NewDate(2024, time.May, 1),
			StartTime:  models.NewTimeOfDay(9, 0),
			EndTime:    models.NewTimeOfDay(11, 0),
			Format:     &inPerson,
		},
		{
			Faculty:    "Engineering",
			ModuleName: "CS101",
			Title:      "Final",
			Date:       models.NewDate(2024, time.June, 14),
			StartTime:  models.NewTimeOfDay(13, 30),
			EndTime:    models.NewTimeOfDay(16, 30),
			Format:     &inPerson,
		},
		{
			Faculty:    "Science",
			ModuleName: "MATH201",
			Title:      "Quiz 1",
			Date:       models.NewDate(2024, time.March, 12),
			Format:     &online,
		},
	}
}

// CreateDefaultData creates the sample exams that don't exist yet.
func CreateDefaultData(ctx context.Context, examService services.ExamService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Exams)...")
	var finalErr error // collect errors without stopping the process

	created := 0
	for _, exam := range DefaultExams() {
		_, err := examService.CreateExam(ctx, exam)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrResourceAlreadyExists):
			lgr.Debug().Str("module", exam.ModuleName).Str("title", exam.Title).Msg("Default exam already exists")
		default:
			lgr.Error().Err(err).Str("module", exam.ModuleName).Str("title", exam.Title).Msg("Error creating default exam")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check complete.")
	return finalErr
}
