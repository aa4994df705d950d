package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"schoolfeedback/internal/models"
)

type teacherRepository struct {
	db *sqlx.DB
}

func NewTeacherRepository(db *sqlx.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `INSERT INTO teachers (name, prefix) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, teacher.Name, teacher.Prefix).Scan(&teacher.ID)
	return classify(err, "create teacher")
}

func (r *teacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher

	query := `SELECT id, name, prefix FROM teachers WHERE id = $1`

	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, classify(err, "get teacher")
	}
	return &teacher, nil
}

func (r *teacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	teachers := []models.Teacher{}

	query := `SELECT id, name, prefix FROM teachers ORDER BY id`

	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, classify(err, "list teachers")
	}
	return teachers, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	var updated models.Teacher

	query := `UPDATE teachers SET name = $1, prefix = $2 WHERE id = $3 RETURNING id, name, prefix`

	if err := r.db.GetContext(ctx, &updated, query, teacher.Name, teacher.Prefix, teacher.ID); err != nil {
		return nil, classify(err, "update teacher")
	}
	return &updated, nil
}

func (r *teacherRepository) Delete(ctx context.Context, id int64) (*models.Teacher, error) {
	var deleted models.Teacher

	query := `DELETE FROM teachers WHERE id = $1 RETURNING id, name, prefix`

	if err := r.db.GetContext(ctx, &deleted, query, id); err != nil {
		return nil, classify(err, "delete teacher")
	}
	return &deleted, nil
}
