package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/examscheduler/internal/app/models"
	"github.com/yigit/examscheduler/internal/app/repositories"
	"github.com/yigit/examscheduler/internal/pkg/apperrors"
)

// ExamService defines the interface for exam-related operations
type ExamService interface {
	CreateExam(ctx context.Context, exam *models.Exam) (*models.Exam, error)
	GetAllExams(ctx context.Context) ([]*models.Exam, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	GetExamByKey(ctx context.Context, key models.ExamKey) (*models.Exam, error)
	UpdateExam(ctx context.Context, id int64, newValues *models.Exam) (*models.Exam, error)
	UpdateExamByKey(ctx context.Context, key models.ExamKey, newValues *models.Exam) (*models.Exam, error)
	DeleteExam(ctx context.Context, id int64) error
	DeleteExamByKey(ctx context.Context, key models.ExamKey) error
	SearchExams(ctx context.Context, filter models.ExamSearch) ([]*models.Exam, error)
	SearchByTitle(ctx context.Context, title string) ([]*models.Exam, error)
	SearchByFaculty(ctx context.Context, faculty string) ([]*models.Exam, error)
	SearchByModuleName(ctx context.Context, moduleName string) ([]*models.Exam, error)
}

// examServiceImpl implements the ExamService interface
type examServiceImpl struct {
	examRepo repositories.ExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo repositories.ExamRepository) ExamService {
	return &examServiceImpl{
		examRepo: examRepo,
	}
}

// normalizeExam trims the key fields in place and checks the required ones
func normalizeExam(exam *models.Exam) error {
	if exam == nil {
		return fmt.Errorf("%w: exam is nil", apperrors.ErrValidationFailed)
	}

	exam.Faculty = strings.TrimSpace(exam.Faculty)
	exam.ModuleName = strings.TrimSpace(exam.ModuleName)
	exam.Title = strings.TrimSpace(exam.Title)

	if !exam.Key().IsComplete() {
		return fmt.Errorf("%w: faculty, moduleName and title cannot be empty", apperrors.ErrValidationFailed)
	}
	if exam.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidationFailed)
	}

	return nil
}

func normalizeKey(key models.ExamKey) (models.ExamKey, error) {
	key = key.Normalize()
	if !key.IsComplete() {
		return key, fmt.Errorf("%w: faculty, moduleName and title cannot be empty", apperrors.ErrValidationFailed)
	}
	return key, nil
}

// translateError maps repository sentinels onto application errors
func translateError(err error, action string) error {
	switch {
	case errors.Is(err, repositories.ErrExamNotFound):
		return apperrors.ErrExamNotFound
	case errors.Is(err, repositories.ErrExamAlreadyExists):
		return apperrors.ErrExamAlreadyExists
	}
	return fmt.Errorf("error %s: %w", action, err)
}

// CreateExam stores a new exam; the store assigns its ID
func (s *examServiceImpl) CreateExam(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	if err := normalizeExam(exam); err != nil {
		return nil, err
	}
	exam.ID = 0

	created, err := s.examRepo.Create(ctx, exam)
	if err != nil {
		return nil, translateError(err, "creating exam")
	}
	return created, nil
}

// GetAllExams retrieves all exams
func (s *examServiceImpl) GetAllExams(ctx context.Context) ([]*models.Exam, error) {
	exams, err := s.examRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exams: %w", err)
	}
	return nonNil(exams), nil
}

// GetExamByID retrieves an exam by ID
func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	if id <= 0 {
		return nil, apperrors.ErrExamNotFound
	}

	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "retrieving exam")
	}
	return exam, nil
}

// GetExamByKey retrieves an exam by its composite key
func (s *examServiceImpl) GetExamByKey(ctx context.Context, key models.ExamKey) (*models.Exam, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}

	exam, err := s.examRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, translateError(err, "retrieving exam")
	}
	return exam, nil
}

// UpdateExam replaces every mutable field of the exam with the given ID
func (s *examServiceImpl) UpdateExam(ctx context.Context, id int64, newValues *models.Exam) (*models.Exam, error) {
	if err := normalizeExam(newValues); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.ErrExamNotFound
	}
	newValues.ID = id

	updated, err := s.examRepo.Update(ctx, newValues)
	if err != nil {
		return nil, translateError(err, "updating exam")
	}
	return updated, nil
}

// UpdateExamByKey replaces every mutable field of the exam addressed by key
func (s *examServiceImpl) UpdateExamByKey(ctx context.Context, key models.ExamKey, newValues *models.Exam) (*models.Exam, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	if err := normalizeExam(newValues); err != nil {
		return nil, err
	}

	updated, err := s.examRepo.UpdateByKey(ctx, key, newValues)
	if err != nil {
		return nil, translateError(err, "updating exam")
	}
	return updated, nil
}

// DeleteExam deletes an exam by ID
func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrExamNotFound
	}

	if err := s.examRepo.DeleteByID(ctx, id); err != nil {
		return translateError(err, "deleting exam")
	}
	return nil
}

// DeleteExamByKey deletes an exam by its composite key
func (s *examServiceImpl) DeleteExamByKey(ctx context.Context, key models.ExamKey) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	if err := s.examRepo.DeleteByKey(ctx, key); err != nil {
		return translateError(err, "deleting exam")
	}
	return nil
}

// SearchExams returns exams matching every non-empty filter field
func (s *examServiceImpl) SearchExams(ctx context.Context, filter models.ExamSearch) ([]*models.Exam, error) {
	exams, err := s.examRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching exams: %w", err)
	}
	return nonNil(exams), nil
}

// SearchByTitle returns exams whose title contains the given text
func (s *examServiceImpl) SearchByTitle(ctx context.Context, title string) ([]*models.Exam, error) {
	exams, err := repositories.SearchByTitle(ctx, s.examRepo, title)
	if err != nil {
		return nil, fmt.Errorf("error searching exams by title: %w", err)
	}
	return nonNil(exams), nil
}

// SearchByFaculty returns exams whose faculty contains the given text
func (s *examServiceImpl) SearchByFaculty(ctx context.Context, faculty string) ([]*models.Exam, error) {
	exams, err := repositories.SearchByFaculty(ctx, s.examRepo, faculty)
	if err != nil {
		return nil, fmt.Errorf("error searching exams by faculty: %w", err)
	}
	return nonNil(exams), nil
}

// SearchByModuleName returns exams whose module name contains the given text
func (s *examServiceImpl) SearchByModuleName(ctx context.Context, moduleName string) ([]*models.Exam, error) {
	exams, err := repositories.SearchByModuleName(ctx, s.examRepo, moduleName)
	if err != nil {
		return nil, fmt.Errorf("error searching exams by module name: %w", err)
	}
	return nonNil(exams), nil
}

func nonNil(exams []*models.Exam) []*models.Exam {
	if exams == nil {
		return []*models.Exam{}
	}
	return exams
}
