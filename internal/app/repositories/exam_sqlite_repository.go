package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/examscheduler/internal/app/models"
	appdb "github.com/yigit/examscheduler/internal/db"
	"github.com/yigit/examscheduler/internal/pkg/dberrors"
	"github.com/yigit/examscheduler/internal/pkg/helpers"
	"github.com/yigit/examscheduler/internal/pkg/logger"
)

// SQLiteExamRepository handles exam database operations on an embedded SQLite file.
// Dates are stored as YYYY-MM-DD text and times as HH:MM text.
type SQLiteExamRepository struct {
	db *sql.DB
	q  examQueries
}

// NewSQLiteExamRepository creates a new SQLiteExamRepository
func NewSQLiteExamRepository(db *sql.DB) *SQLiteExamRepository {
	return &SQLiteExamRepository{
		db: db,
		q:  newExamQueries(squirrel.Question, appdb.SQLiteLowerFunc),
	}
}

var _ ExamRepository = (*SQLiteExamRepository)(nil)

func sqliteExamValues(exam *models.Exam) map[string]interface{} {
	return map[string]interface{}{
		"faculty":     exam.Faculty,
		"module_name": exam.ModuleName,
		"title":       exam.Title,
		"exam_date":   exam.Date.Time().Format(models.DateStorageLayout),
		"start_time":  helpers.GetNullTimeOfDay(exam.StartTime),
		"end_time":    helpers.GetNullTimeOfDay(exam.EndTime),
		"format":      helpers.GetNullString(exam.Format),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteExam(row rowScanner) (*models.Exam, error) {
	var (
		exam      models.Exam
		date      string
		startTime sql.NullString
		endTime   sql.NullString
		format    sql.NullString
	)

	if err := row.Scan(
		&exam.ID, &exam.Faculty, &exam.ModuleName, &exam.Title,
		&date, &startTime, &endTime, &format,
	); err != nil {
		return nil, err
	}

	d, err := models.ParseDate(models.DateStorageLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	exam.Date = d

	if exam.StartTime, err = helpers.TimeOfDayPtr(startTime); err != nil {
		return nil, err
	}
	if exam.EndTime, err = helpers.TimeOfDayPtr(endTime); err != nil {
		return nil, err
	}
	exam.Format = helpers.StringPtr(format)

	return &exam, nil
}

func (r *SQLiteExamRepository) queryOne(ctx context.Context, query string, args []interface{}) (*models.Exam, error) {
	exam, err := scanSQLiteExam(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return exam, nil
}

func (r *SQLiteExamRepository) queryMany(ctx context.Context, query string, args []interface{}) ([]*models.Exam, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := []*models.Exam{}
	for rows.Next() {
		exam, err := scanSQLiteExam(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam row: %w", err)
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam rows: %w", err)
	}
	return exams, nil
}

// Create inserts a new exam and returns the stored row
func (r *SQLiteExamRepository) Create(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	query, args, err := r.q.insert(sqliteExamValues(exam))
	if err != nil {
		logger.Error().Err(err).Msg("Error building create exam SQL")
		return nil, fmt.Errorf("failed to build create exam query: %w", err)
	}

	created, err := r.queryOne(ctx, query, args)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return nil, ErrExamAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create exam query")
		return nil, fmt.Errorf("error inserting exam: %w", err)
	}

	logger.Info().Int64("examID", created.ID).Msg("Exam created successfully")
	return created, nil
}

// GetByID retrieves an exam by its ID
func (r *SQLiteExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query, args, err := r.q.selectByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}

	exam, err := r.queryOne(ctx, query, args)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			logger.Warn().Int64("examID", id).Msg("Exam not found by ID")
			return nil, err
		}
		logger.Error().Err(err).Int64("examID", id).Msg("Error querying exam by ID")
		return nil, fmt.Errorf("error querying exam ID=%d: %w", id, err)
	}
	return exam, nil
}

// GetAll retrieves every exam ordered by ID
func (r *SQLiteExamRepository) GetAll(ctx context.Context) ([]*models.Exam, error) {
	query, args, err := r.q.selectAll()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all exams query: %w", err)
	}

	exams, err := r.queryMany(ctx, query, args)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all exams query")
		return nil, fmt.Errorf("error querying exams: %w", err)
	}
	return exams, nil
}

// GetByKey retrieves an exam by its composite key
func (r *SQLiteExamRepository) GetByKey(ctx context.Context, key models.ExamKey) (*models.Exam, error) {
	query, args, err := r.q.selectByKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam by key query: %w", err)
	}

	exam, err := r.queryOne(ctx, query, args)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			logger.Warn().Str("faculty", key.Faculty).Str("moduleName", key.ModuleName).Str("title", key.Title).Msg("Exam not found by key")
			return nil, err
		}
		logger.Error().Err(err).Msg("Error querying exam by key")
		return nil, fmt.Errorf("error querying exam by key: %w", err)
	}
	return exam, nil
}

// Search retrieves exams matching every non-empty filter as a case-insensitive substring
func (r *SQLiteExamRepository) Search(ctx context.Context, filter models.ExamSearch) ([]*models.Exam, error) {
	query, args, err := r.q.search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build search exams query: %w", err)
	}

	exams, err := r.queryMany(ctx, query, args)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search exams query")
		return nil, fmt.Errorf("error searching exams: %w", err)
	}
	return exams, nil
}

// Update replaces every mutable field of the exam with the given ID
func (r *SQLiteExamRepository) Update(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	return r.update(ctx, squirrel.Eq{"id": exam.ID}, exam, fmt.Sprintf("ID=%d", exam.ID))
}

// UpdateByKey replaces every mutable field of the exam addressed by key
func (r *SQLiteExamRepository) UpdateByKey(ctx context.Context, key models.ExamKey, exam *models.Exam) (*models.Exam, error) {
	return r.update(ctx, keyCondition(key), exam, fmt.Sprintf("key=%s/%s/%s", key.Faculty, key.ModuleName, key.Title))
}

func (r *SQLiteExamRepository) update(ctx context.Context, where squirrel.Sqlizer, exam *models.Exam, target string) (*models.Exam, error) {
	query, args, err := r.q.updateWhere(sqliteExamValues(exam), where)
	if err != nil {
		return nil, fmt.Errorf("failed to build update exam query: %w", err)
	}

	updated, err := r.queryOne(ctx, query, args)
	if err != nil {
		switch {
		case errors.Is(err, ErrExamNotFound):
			logger.Warn().Str("exam", target).Msg("Attempted to update non-existent exam")
			return nil, err
		case dberrors.IsDuplicateKeyError(err):
			return nil, ErrExamAlreadyExists
		}
		logger.Error().Err(err).Str("exam", target).Msg("Error executing update exam query")
		return nil, fmt.Errorf("error updating exam %s: %w", target, err)
	}

	logger.Info().Int64("examID", updated.ID).Msg("Exam updated successfully")
	return updated, nil
}

// DeleteByID removes the exam with the given ID
func (r *SQLiteExamRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.delete(ctx, squirrel.Eq{"id": id}, fmt.Sprintf("ID=%d", id))
}

// DeleteByKey removes the exam addressed by key
func (r *SQLiteExamRepository) DeleteByKey(ctx context.Context, key models.ExamKey) error {
	return r.delete(ctx, keyCondition(key), fmt.Sprintf("key=%s/%s/%s", key.Faculty, key.ModuleName, key.Title))
}

func (r *SQLiteExamRepository) delete(ctx context.Context, where squirrel.Sqlizer, target string) error {
	query, args, err := r.q.deleteWhere(where)
	if err != nil {
		return fmt.Errorf("failed to build delete exam query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("exam", target).Msg("Error executing delete exam query")
		return fmt.Errorf("error deleting exam %s: %w", target, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		logger.Warn().Str("exam", target).Msg("Attempted to delete non-existent exam")
		return ErrExamNotFound
	}

	logger.Info().Str("exam", target).Msg("Exam deleted successfully")
	return nil
}
