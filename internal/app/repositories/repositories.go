package repositories

import (
	"fmt"

	"github.com/yigit/examscheduler/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	ExamRepository ExamRepository
}

// NewRepositories initializes all repositories for the given database handle
func NewRepositories(database db.Database) (*Repositories, error) {
	examRepo, err := NewExamRepository(database)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		ExamRepository: examRepo,
	}, nil
}

// NewExamRepository picks the exam store matching the database driver
func NewExamRepository(database db.Database) (ExamRepository, error) {
	switch d := database.(type) {
	case *db.PostgresDB:
		return NewPostgresExamRepository(d.Pool), nil
	case *db.SQLiteDB:
		return NewSQLiteExamRepository(d.DB), nil
	default:
		return nil, fmt.Errorf("no exam repository for dialect %q", database.Dialect())
	}
}
