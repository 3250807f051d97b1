package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/examscheduler/internal/app/models"
)

// Exam error types
var (
	// ErrExamNotFound is returned when no exam matches the given ID or key.
	ErrExamNotFound = errors.New("exam not found")
	// ErrExamAlreadyExists is returned when the (faculty, module name, title) key is taken.
	ErrExamAlreadyExists = errors.New("exam with this faculty, module name and title already exists")
)

// examKeyConstraint is the unique index backing the composite key.
const examKeyConstraint = "uq_exams_composite_key"

// ExamRepository is the persistence contract for exams. Update and delete
// run as single conditional statements, so a missing row is reported by the
// statement itself rather than by a separate existence check.
type ExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) (*models.Exam, error)
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
	GetAll(ctx context.Context) ([]*models.Exam, error)
	GetByKey(ctx context.Context, key models.ExamKey) (*models.Exam, error)
	Search(ctx context.Context, filter models.ExamSearch) ([]*models.Exam, error)
	Update(ctx context.Context, exam *models.Exam) (*models.Exam, error)
	UpdateByKey(ctx context.Context, key models.ExamKey, exam *models.Exam) (*models.Exam, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByKey(ctx context.Context, key models.ExamKey) error
}

// SearchByTitle returns exams whose title contains text, ignoring case.
func SearchByTitle(ctx context.Context, repo ExamRepository, text string) ([]*models.Exam, error) {
	return repo.Search(ctx, models.ExamSearch{Title: text})
}

// SearchByFaculty returns exams whose faculty contains text, ignoring case.
func SearchByFaculty(ctx context.Context, repo ExamRepository, text string) ([]*models.Exam, error) {
	return repo.Search(ctx, models.ExamSearch{Faculty: text})
}

// SearchByModuleName returns exams whose module name contains text, ignoring case.
func SearchByModuleName(ctx context.Context, repo ExamRepository, text string) ([]*models.Exam, error) {
	return repo.Search(ctx, models.ExamSearch{ModuleName: text})
}

const examsTable = "exams"

var examColumns = []string{
	"id", "faculty", "module_name", "title", "exam_date", "start_time", "end_time", "format",
}

// examQueries builds the SQL shared by the PostgreSQL and SQLite repositories.
// Placeholders, the lower-casing function and value encoding differ between the two.
type examQueries struct {
	sb    squirrel.StatementBuilderType
	lower string
}

func newExamQueries(format squirrel.PlaceholderFormat, lower string) examQueries {
	return examQueries{
		sb:    squirrel.StatementBuilder.PlaceholderFormat(format),
		lower: lower,
	}
}

func returningColumns() string {
	return "RETURNING " + strings.Join(examColumns, ", ")
}

func keyCondition(key models.ExamKey) squirrel.Eq {
	return squirrel.Eq{
		"faculty":     key.Faculty,
		"module_name": key.ModuleName,
		"title":       key.Title,
	}
}

func (q examQueries) insert(values map[string]interface{}) (string, []interface{}, error) {
	return q.sb.Insert(examsTable).
		SetMap(values).
		Suffix(returningColumns()).
		ToSql()
}

func (q examQueries) selectWhere(where interface{}) squirrel.SelectBuilder {
	b := q.sb.Select(examColumns...).From(examsTable)
	if where != nil {
		b = b.Where(where)
	}
	return b
}

func (q examQueries) selectByID(id int64) (string, []interface{}, error) {
	return q.selectWhere(squirrel.Eq{"id": id}).Limit(1).ToSql()
}

func (q examQueries) selectAll() (string, []interface{}, error) {
	return q.selectWhere(nil).OrderBy("id ASC").ToSql()
}

// selectByKey takes the lowest id so lookups stay deterministic even if the
// unique index is missing.
func (q examQueries) selectByKey(key models.ExamKey) (string, []interface{}, error) {
	return q.selectWhere(keyCondition(key)).OrderBy("id ASC").Limit(1).ToSql()
}

func (q examQueries) search(filter models.ExamSearch) (string, []interface{}, error) {
	if filter.IsEmpty() {
		return q.selectAll()
	}

	conditions := squirrel.And{}
	for _, f := range []struct{ column, text string }{
		{"title", filter.Title},
		{"faculty", filter.Faculty},
		{"module_name", filter.ModuleName},
	} {
		if f.text == "" {
			continue
		}
		conditions = append(conditions, q.containsIgnoreCase(f.column, f.text))
	}
	return q.selectWhere(conditions).OrderBy("id ASC").ToSql()
}

func (q examQueries) updateWhere(values map[string]interface{}, where interface{}) (string, []interface{}, error) {
	return q.sb.Update(examsTable).
		SetMap(values).
		Where(where).
		Suffix(returningColumns()).
		ToSql()
}

func (q examQueries) deleteWhere(where interface{}) (string, []interface{}, error) {
	return q.sb.Delete(examsTable).Where(where).ToSql()
}

// containsIgnoreCase matches rows whose column contains text, ignoring case.
// Both sides are folded by the same SQL function. LIKE wildcards in text are
// matched literally.
func (q examQueries) containsIgnoreCase(column, text string) squirrel.Sqlizer {
	pattern := "%" + escapeLike(text) + "%"
	return squirrel.Expr(q.lower+"("+column+") LIKE "+q.lower+"(?) ESCAPE '\\'", pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
