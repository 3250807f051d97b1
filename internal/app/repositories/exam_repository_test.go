package repositories

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/examscheduler/internal/app/models"
)

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":     "plain",
		"50%":       `50\%`,
		"cs_101":    `cs\_101`,
		`back\path`: `back\\path`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSearchQueryCombinesFilters(t *testing.T) {
	q := newExamQueries(squirrel.Dollar, "LOWER")

	sql, args, err := q.search(models.ExamSearch{Title: "Mid", ModuleName: "CS_1"})
	if err != nil {
		t.Fatalf("build search: %v", err)
	}

	if !strings.Contains(sql, "LOWER(title) LIKE LOWER($1) ESCAPE '\\'") {
		t.Errorf("title condition missing or misnumbered: %s", sql)
	}
	if !strings.Contains(sql, "LOWER(module_name) LIKE LOWER($2) ESCAPE '\\'") {
		t.Errorf("module name condition missing or misnumbered: %s", sql)
	}
	if strings.Contains(sql, "faculty) LIKE") {
		t.Errorf("empty faculty filter should be skipped: %s", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY id ASC") {
		t.Errorf("search should order by id: %s", sql)
	}

	if len(args) != 2 || args[0] != "%Mid%" || args[1] != `%CS\_1%` {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestSearchQueryFoldsBothSidesWithDialectFunction(t *testing.T) {
	q := newExamQueries(squirrel.Question, "unicode_lower")

	sql, args, err := q.search(models.ExamSearch{Faculty: "Économie"})
	if err != nil {
		t.Fatalf("build search: %v", err)
	}
	if !strings.Contains(sql, "unicode_lower(faculty) LIKE unicode_lower(?)") {
		t.Errorf("faculty condition should fold column and pattern: %s", sql)
	}
	if strings.Contains(sql, "LOWER(") {
		t.Errorf("built-in LOWER should not be used: %s", sql)
	}
	if len(args) != 1 || args[0] != "%Économie%" {
		t.Fatalf("pattern should be passed unfolded, got %v", args)
	}
}

func TestSearchQueryWithoutFiltersSelectsAll(t *testing.T) {
	q := newExamQueries(squirrel.Question, "unicode_lower")

	sql, args, err := q.search(models.ExamSearch{})
	if err != nil {
		t.Fatalf("build search: %v", err)
	}
	if strings.Contains(sql, "WHERE") || len(args) != 0 {
		t.Fatalf("expected unfiltered select, got %s %v", sql, args)
	}
}

func TestUpdateByKeyQueryIsSingleStatement(t *testing.T) {
	q := newExamQueries(squirrel.Question, "unicode_lower")
	key := models.ExamKey{Faculty: "Engineering", ModuleName: "CS101", Title: "Midterm"}

	sql, args, err := q.updateWhere(map[string]interface{}{"format": "online"}, keyCondition(key))
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	if !strings.HasPrefix(sql, "UPDATE exams SET format = ? WHERE ") {
		t.Errorf("unexpected update statement: %s", sql)
	}
	if !strings.HasSuffix(sql, "RETURNING "+strings.Join(examColumns, ", ")) {
		t.Errorf("update should return the stored row: %s", sql)
	}
	if len(args) != 4 {
		t.Fatalf("expected 1 value and 3 key args, got %v", args)
	}
}
