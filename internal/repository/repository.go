package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"schoolfeedback/internal/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrConflict         = errors.New("record conflicts with an existing one")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	UpdateEmail(ctx context.Context, id int64, email string) (*models.Student, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) (*models.Student, error)
	UpdateName(ctx context.Context, id int64, firstName, lastName string) (*models.Student, error)
	SetAdmin(ctx context.Context, id int64) (*models.Student, error)
	Replace(ctx context.Context, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, id int64) (*models.Student, error)
}

type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	List(ctx context.Context) ([]models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) (*models.Teacher, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) (*models.Comment, error)
}

type VoteRepository interface {
	Upsert(ctx context.Context, commentID, voterID int64, isUpvote bool) (*models.Vote, error)
	Delete(ctx context.Context, commentID, voterID int64) (*models.Vote, error)
	Score(ctx context.Context, commentID int64) (int64, error)
}

type SchemaRepository interface {
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	Student  StudentRepository
	Teacher  TeacherRepository
	Comments map[models.CommentKind]CommentRepository
	Votes    map[models.CommentKind]VoteRepository
	Schema   SchemaRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	repo := &Repository{
		Student:  NewStudentRepository(db),
		Teacher:  NewTeacherRepository(db),
		Comments: make(map[models.CommentKind]CommentRepository, len(models.CommentKinds)),
		Votes:    make(map[models.CommentKind]VoteRepository, len(models.CommentKinds)),
		Schema:   NewSchemaRepository(db),
	}
	for _, kind := range models.CommentKinds {
		repo.Comments[kind] = NewCommentRepository(db, kind)
		repo.Votes[kind] = NewVoteRepository(db, kind)
	}
	return repo
}

// classify turns driver errors into the package sentinels so callers never
// need to look at store error text.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case "23503":
			return fmt.Errorf("%s: %w", op, ErrInvalidReference)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
