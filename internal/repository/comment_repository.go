package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"schoolfeedback/internal/models"
)

// commentRepository serves one comment kind. Student and teacher comments
// share a schema and differ only in table.
type commentRepository struct {
	db    *sqlx.DB
	kind  models.CommentKind
	table string
}

// NewCommentRepository panics on an unknown kind; kinds are fixed at compile
// time and never come from requests.
func NewCommentRepository(db *sqlx.DB, kind models.CommentKind) CommentRepository {
	if !kind.Valid() {
		panic(fmt.Sprintf("repository: unknown comment kind %q", kind))
	}
	return &commentRepository{
		db:    db,
		kind:  kind,
		table: string(kind) + "_comments",
	}
}

const commentColumns = `id, author_id, receiver_id, body, published_at`

// Create stores comment, stamping PublishedAt when it is zero.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.PublishedAt.IsZero() {
		comment.PublishedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (author_id, receiver_id, body, published_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, r.table)

	err := r.db.QueryRowxContext(ctx, query,
		comment.AuthorID, comment.ReceiverID, comment.Body, comment.PublishedAt,
	).Scan(&comment.ID)
	return classify(err, "create "+string(r.kind)+" comment")
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, commentColumns, r.table)

	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		return nil, classify(err, "get "+string(r.kind)+" comment")
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	comments := []models.Comment{}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY published_at DESC, id DESC`, commentColumns, r.table)

	if err := r.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, classify(err, "list "+string(r.kind)+" comments")
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING %s`, r.table, commentColumns)

	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		return nil, classify(err, "delete "+string(r.kind)+" comment")
	}
	return &comment, nil
}
