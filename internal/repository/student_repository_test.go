package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolfeedback/internal/models"
)

var studentRowColumns = []string{"id", "email", "first_name", "last_name", "password_hash", "is_admin"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestStudentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	query := `
		INSERT INTO students (email, first_name, last_name, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	t.Run("assigns generated id", func(t *testing.T) {
		student := &models.Student{
			Email:        "ann@example.com",
			FirstName:    "Ann",
			LastName:     "Lee",
			PasswordHash: "hash",
		}

		mock.ExpectQuery(query).
			WithArgs("ann@example.com", "Ann", "Lee", "hash", false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, student)

		require.NoError(t, err)
		assert.Equal(t, int64(7), student.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		student := &models.Student{Email: "ann@example.com", FirstName: "Ann", LastName: "Lee", PasswordHash: "hash"}

		mock.ExpectQuery(query).
			WithArgs("ann@example.com", "Ann", "Lee", "hash", false).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, student)

		assert.ErrorIs(t, err, ErrConflict)
		assert.Zero(t, student.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStudentRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	query := `SELECT id, email, first_name, last_name, password_hash, is_admin FROM students WHERE id = $1`

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(studentRowColumns).
				AddRow(3, "bob@example.com", "Bob", "Ray", "hash", true))

		student, err := repo.GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, &models.Student{
			ID:           3,
			Email:        "bob@example.com",
			FirstName:    "Bob",
			LastName:     "Ray",
			PasswordHash: "hash",
			IsAdmin:      true,
		}, student)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(4)).
			WillReturnError(sql.ErrNoRows)

		student, err := repo.GetByID(ctx, 4)

		assert.Nil(t, student)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("driver failure is passed through", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(5)).
			WillReturnError(errors.New("connection reset"))

		student, err := repo.GetByID(ctx, 5)

		assert.Nil(t, student)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "get student")
	})
}

func TestStudentRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT id, email, first_name, last_name, password_hash, is_admin FROM students WHERE email = $1`).
		WithArgs("bob@example.com").
		WillReturnRows(sqlmock.NewRows(studentRowColumns).
			AddRow(3, "bob@example.com", "Bob", "Ray", "hash", false))

	student, err := repo.GetByEmail(context.Background(), "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(3), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	query := `SELECT id, email, first_name, last_name, password_hash, is_admin FROM students ORDER BY id`

	t.Run("rows in id order", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows(studentRowColumns).
				AddRow(1, "a@example.com", "A", "One", "h1", false).
				AddRow(2, "b@example.com", "B", "Two", "h2", true))

		students, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, int64(1), students[0].ID)
		assert.True(t, students[1].IsAdmin)
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(studentRowColumns))

		students, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, students)
		assert.Empty(t, students)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Updates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	returned := func() *sqlmock.Rows {
		return sqlmock.NewRows(studentRowColumns).AddRow(2, "new@example.com", "New", "Name", "newhash", true)
	}

	tests := []struct {
		name   string
		expect func()
		call   func() (*models.Student, error)
	}{
		{
			name: "email",
			expect: func() {
				mock.ExpectQuery(`UPDATE students SET email = $1 WHERE id = $2 RETURNING id, email, first_name, last_name, password_hash, is_admin`).
					WithArgs("new@example.com", int64(2)).
					WillReturnRows(returned())
			},
			call: func() (*models.Student, error) { return repo.UpdateEmail(ctx, 2, "new@example.com") },
		},
		{
			name: "password hash",
			expect: func() {
				mock.ExpectQuery(`UPDATE students SET password_hash = $1 WHERE id = $2 RETURNING id, email, first_name, last_name, password_hash, is_admin`).
					WithArgs("newhash", int64(2)).
					WillReturnRows(returned())
			},
			call: func() (*models.Student, error) { return repo.UpdatePasswordHash(ctx, 2, "newhash") },
		},
		{
			name: "name",
			expect: func() {
				mock.ExpectQuery(`UPDATE students SET first_name = $1, last_name = $2 WHERE id = $3 RETURNING id, email, first_name, last_name, password_hash, is_admin`).
					WithArgs("New", "Name", int64(2)).
					WillReturnRows(returned())
			},
			call: func() (*models.Student, error) { return repo.UpdateName(ctx, 2, "New", "Name") },
		},
		{
			name: "admin flag",
			expect: func() {
				mock.ExpectQuery(`UPDATE students SET is_admin = TRUE WHERE id = $1 RETURNING id, email, first_name, last_name, password_hash, is_admin`).
					WithArgs(int64(2)).
					WillReturnRows(returned())
			},
			call: func() (*models.Student, error) { return repo.SetAdmin(ctx, 2) },
		},
		{
			name: "full replace",
			expect: func() {
				mock.ExpectQuery(`UPDATE students
					SET email = $1, first_name = $2, last_name = $3, password_hash = $4, is_admin = $5
					WHERE id = $6
					RETURNING id, email, first_name, last_name, password_hash, is_admin`).
					WithArgs("new@example.com", "New", "Name", "newhash", true, int64(2)).
					WillReturnRows(returned())
			},
			call: func() (*models.Student, error) {
				return repo.Replace(ctx, &models.Student{
					ID:           2,
					Email:        "new@example.com",
					FirstName:    "New",
					LastName:     "Name",
					PasswordHash: "newhash",
					IsAdmin:      true,
				})
			},
		},
		{
			name: "delete",
			expect: func() {
				mock.ExpectQuery(`DELETE FROM students WHERE id = $1 RETURNING id, email, first_name, last_name, password_hash, is_admin`).
					WithArgs(int64(2)).
					WillReturnRows(returned())
			},
			call: func() (*models.Student, error) { return repo.Delete(ctx, 2) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			student, err := tt.call()

			require.NoError(t, err)
			assert.Equal(t, int64(2), student.ID)
			assert.Equal(t, "new@example.com", student.Email)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStudentRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`UPDATE students SET email = $1 WHERE id = $2 RETURNING id, email, first_name, last_name, password_hash, is_admin`).
		WithArgs("x@example.com", int64(99)).
		WillReturnRows(sqlmock.NewRows(studentRowColumns))

	student, err := repo.UpdateEmail(context.Background(), 99, "x@example.com")

	assert.Nil(t, student)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
