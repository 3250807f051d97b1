package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examscheduler/internal/app/models"
	"github.com/yigit/examscheduler/internal/pkg/dberrors"
	"github.com/yigit/examscheduler/internal/pkg/logger"
)

// PostgresExamRepository handles exam database operations on PostgreSQL
type PostgresExamRepository struct {
	db *pgxpool.Pool
	q  examQueries
}

// NewPostgresExamRepository creates a new PostgresExamRepository
func NewPostgresExamRepository(db *pgxpool.Pool) *PostgresExamRepository {
	return &PostgresExamRepository{
		db: db,
		q:  newExamQueries(squirrel.Dollar, "LOWER"),
	}
}

var _ ExamRepository = (*PostgresExamRepository)(nil)

// pgExamValues encodes the mutable columns with pgx's native date/time types.
func pgExamValues(exam *models.Exam) map[string]interface{} {
	return map[string]interface{}{
		"faculty":     exam.Faculty,
		"module_name": exam.ModuleName,
		"title":       exam.Title,
		"exam_date":   pgtype.Date{Time: exam.Date.Time(), Valid: true},
		"start_time":  pgTime(exam.StartTime),
		"end_time":    pgTime(exam.EndTime),
		"format":      exam.Format,
	}
}

func pgTime(t *models.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

func timeOfDayFromPg(t pgtype.Time) *models.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := models.TimeOfDayFromMicroseconds(t.Microseconds)
	return &tod
}

// scanPgExam scans one row in examColumns order
func scanPgExam(row pgx.Row) (*models.Exam, error) {
	var (
		exam      models.Exam
		date      pgtype.Date
		startTime pgtype.Time
		endTime   pgtype.Time
		format    pgtype.Text
	)

	if err := row.Scan(
		&exam.ID, &exam.Faculty, &exam.ModuleName, &exam.Title,
		&date, &startTime, &endTime, &format,
	); err != nil {
		return nil, err
	}

	if date.Valid {
		exam.Date = models.DateOf(date.Time)
	}
	exam.StartTime = timeOfDayFromPg(startTime)
	exam.EndTime = timeOfDayFromPg(endTime)
	if format.Valid {
		f := format.String
		exam.Format = &f
	}

	return &exam, nil
}

func (r *PostgresExamRepository) queryOne(ctx context.Context, sql string, args []interface{}) (*models.Exam, error) {
	exam, err := scanPgExam(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return exam, nil
}

func (r *PostgresExamRepository) queryMany(ctx context.Context, sql string, args []interface{}) ([]*models.Exam, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := []*models.Exam{}
	for rows.Next() {
		exam, err := scanPgExam(rows)
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

func isPgDuplicateExam(err error) bool {
	return dberrors.IsDuplicateConstraintError(err, examKeyConstraint) || dberrors.IsDuplicateKeyError(err)
}

// Create inserts a new exam and returns the stored row
func (r *PostgresExamRepository) Create(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	sql, args, err := r.q.insert(pgExamValues(exam))
	if err != nil {
		logger.Error().Err(err).Msg("Error building create exam SQL")
		return nil, fmt.Errorf("failed to build create exam query: %w", err)
	}

	created, err := r.queryOne(ctx, sql, args)
	if err != nil {
		if isPgDuplicateExam(err) {
			return nil, ErrExamAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create exam query")
		return nil, fmt.Errorf("error inserting exam: %w", err)
	}

	logger.Info().Int64("examID", created.ID).Msg("Exam created successfully")
	return created, nil
}

// GetByID retrieves an exam by its ID
func (r *PostgresExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	sql, args, err := r.q.selectByID(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building get exam by ID SQL")
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}

	exam, err := r.queryOne(ctx, sql, args)
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
func (r *PostgresExamRepository) GetAll(ctx context.Context) ([]*models.Exam, error) {
	sql, args, err := r.q.selectAll()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all exams SQL")
		return nil, fmt.Errorf("failed to build get all exams query: %w", err)
	}

	exams, err := r.queryMany(ctx, sql, args)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all exams query")
		return nil, fmt.Errorf("error querying exams: %w", err)
	}
	return exams, nil
}

// GetByKey retrieves an exam by its composite key
func (r *PostgresExamRepository) GetByKey(ctx context.Context, key models.ExamKey) (*models.Exam, error) {
	sql, args, err := r.q.selectByKey(key)
	if err != nil {
		logger.Error().Err(err).Msg("Error building get exam by key SQL")
		return nil, fmt.Errorf("failed to build get exam by key query: %w", err)
	}

	exam, err := r.queryOne(ctx, sql, args)
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
func (r *PostgresExamRepository) Search(ctx context.Context, filter models.ExamSearch) ([]*models.Exam, error) {
	sql, args, err := r.q.search(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building search exams SQL")
		return nil, fmt.Errorf("failed to build search exams query: %w", err)
	}

	exams, err := r.queryMany(ctx, sql, args)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search exams query")
		return nil, fmt.Errorf("error searching exams: %w", err)
	}
	return exams, nil
}

// Update replaces every mutable field of the exam with the given ID
func (r *PostgresExamRepository) Update(ctx context.Context, exam *models.Exam) (*models.Exam, error) {
	return r.update(ctx, squirrel.Eq{"id": exam.ID}, exam, fmt.Sprintf("ID=%d", exam.ID))
}

// UpdateByKey replaces every mutable field of the exam addressed by key
func (r *PostgresExamRepository) UpdateByKey(ctx context.Context, key models.ExamKey, exam *models.Exam) (*models.Exam, error) {
	return r.update(ctx, keyCondition(key), exam, fmt.Sprintf("key=%s/%s/%s", key.Faculty, key.ModuleName, key.Title))
}

func (r *PostgresExamRepository) update(ctx context.Context, where squirrel.Sqlizer, exam *models.Exam, target string) (*models.Exam, error) {
	sql, args, err := r.q.updateWhere(pgExamValues(exam), where)
	if err != nil {
		logger.Error().Err(err).Str("exam", target).Msg("Error building update exam SQL")
		return nil, fmt.Errorf("failed to build update exam query: %w", err)
	}

	updated, err := r.queryOne(ctx, sql, args)
	if err != nil {
		switch {
		case errors.Is(err, ErrExamNotFound):
			logger.Warn().Str("exam", target).Msg("Attempted to update non-existent exam")
			return nil, err
		case isPgDuplicateExam(err):
			return nil, ErrExamAlreadyExists
		}
		logger.Error().Err(err).Str("exam", target).Msg("Error executing update exam query")
		return nil, fmt.Errorf("error updating exam %s: %w", target, err)
	}

	logger.Info().Int64("examID", updated.ID).Msg("Exam updated successfully")
	return updated, nil
}

// DeleteByID removes the exam with the given ID
func (r *PostgresExamRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.delete(ctx, squirrel.Eq{"id": id}, fmt.Sprintf("ID=%d", id))
}

// DeleteByKey removes the exam addressed by key
func (r *PostgresExamRepository) DeleteByKey(ctx context.Context, key models.ExamKey) error {
	return r.delete(ctx, keyCondition(key), fmt.Sprintf("key=%s/%s/%s", key.Faculty, key.ModuleName, key.Title))
}

func (r *PostgresExamRepository) delete(ctx context.Context, where squirrel.Sqlizer, target string) error {
	sql, args, err := r.q.deleteWhere(where)
	if err != nil {
		logger.Error().Err(err).Str("exam", target).Msg("Error building delete exam SQL")
		return fmt.Errorf("failed to build delete exam query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("exam", target).Msg("Error executing delete exam query")
		return fmt.Errorf("error deleting exam %s: %w", target, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Str("exam", target).Msg("Attempted to delete non-existent exam")
		return ErrExamNotFound
	}

	logger.Info().Str("exam", target).Msg("Exam deleted successfully")
	return nil
}
