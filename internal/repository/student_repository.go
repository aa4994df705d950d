package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"schoolfeedback/internal/models"
)

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, email, first_name, last_name, password_hash, is_admin`

// Create inserts student and fills in the generated id. The password hash
// must already be set.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (email, first_name, last_name, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		student.Email, student.FirstName, student.LastName, student.PasswordHash, student.IsAdmin,
	).Scan(&student.ID)
	return classify(err, "create student")
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, classify(err, "get student")
	}
	return &student, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student

	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	if err := r.db.GetContext(ctx, &student, query, email); err != nil {
		return nil, classify(err, "get student by email")
	}
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}

	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, classify(err, "list students")
	}
	return students, nil
}

func (r *studentRepository) UpdateEmail(ctx context.Context, id int64, email string) (*models.Student, error) {
	return r.updateOne(ctx, "update student email",
		`UPDATE students SET email = $1 WHERE id = $2 RETURNING `+studentColumns, email, id)
}

func (r *studentRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) (*models.Student, error) {
	return r.updateOne(ctx, "update student password",
		`UPDATE students SET password_hash = $1 WHERE id = $2 RETURNING `+studentColumns, passwordHash, id)
}

func (r *studentRepository) UpdateName(ctx context.Context, id int64, firstName, lastName string) (*models.Student, error) {
	return r.updateOne(ctx, "update student name",
		`UPDATE students SET first_name = $1, last_name = $2 WHERE id = $3 RETURNING `+studentColumns,
		firstName, lastName, id)
}

func (r *studentRepository) SetAdmin(ctx context.Context, id int64) (*models.Student, error) {
	return r.updateOne(ctx, "make student admin",
		`UPDATE students SET is_admin = TRUE WHERE id = $1 RETURNING `+studentColumns, id)
}

func (r *studentRepository) Replace(ctx context.Context, student *models.Student) (*models.Student, error) {
	return r.updateOne(ctx, "reset student",
		`UPDATE students
		SET email = $1, first_name = $2, last_name = $3, password_hash = $4, is_admin = $5
		WHERE id = $6
		RETURNING `+studentColumns,
		student.Email, student.FirstName, student.LastName, student.PasswordHash, student.IsAdmin, student.ID)
}

func (r *studentRepository) Delete(ctx context.Context, id int64) (*models.Student, error) {
	return r.updateOne(ctx, "delete student",
		`DELETE FROM students WHERE id = $1 RETURNING `+studentColumns, id)
}

// updateOne runs a single-row statement with a RETURNING clause; no row means
// ErrNotFound.
func (r *studentRepository) updateOne(ctx context.Context, op, query string, args ...interface{}) (*models.Student, error) {
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, args...); err != nil {
		return nil, classify(err, op)
	}
	return &student, nil
}
