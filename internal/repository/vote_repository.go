package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"schoolfeedback/internal/models"
)

type voteRepository struct {
	db    *sqlx.DB
	kind  models.CommentKind
	table string
}

func NewVoteRepository(db *sqlx.DB, kind models.CommentKind) VoteRepository {
	return &voteRepository{
		db:    db,
		kind:  kind,
		table: string(kind) + "_comment_votes",
	}
}

const voteColumns = `id, comment_id, voter_id, is_upvote`

// Upsert records the voter's direction in one statement. The unique index on
// (comment_id, voter_id) resolves concurrent casts as last-write-wins.
func (r *voteRepository) Upsert(ctx context.Context, commentID, voterID int64, isUpvote bool) (*models.Vote, error) {
	var vote models.Vote

	query := fmt.Sprintf(`
		INSERT INTO %s (comment_id, voter_id, is_upvote)
		VALUES ($1, $2, $3)
		ON CONFLICT (comment_id, voter_id) DO UPDATE SET is_upvote = EXCLUDED.is_upvote
		RETURNING %s
	`, r.table, voteColumns)

	if err := r.db.GetContext(ctx, &vote, query, commentID, voterID, isUpvote); err != nil {
		return nil, classify(err, "cast "+string(r.kind)+" comment vote")
	}
	return &vote, nil
}

// Delete removes the voter's vote; ErrNotFound when there was none.
func (r *voteRepository) Delete(ctx context.Context, commentID, voterID int64) (*models.Vote, error) {
	var vote models.Vote

	query := fmt.Sprintf(`DELETE FROM %s WHERE comment_id = $1 AND voter_id = $2 RETURNING %s`, r.table, voteColumns)

	if err := r.db.GetContext(ctx, &vote, query, commentID, voterID); err != nil {
		return nil, classify(err, "delete "+string(r.kind)+" comment vote")
	}
	return &vote, nil
}

// Score is upvotes minus downvotes, computed on every call.
func (r *voteRepository) Score(ctx context.Context, commentID int64) (int64, error) {
	var score int64

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(CASE WHEN is_upvote THEN 1 ELSE -1 END), 0)
		FROM %s
		WHERE comment_id = $1
	`, r.table)

	if err := r.db.GetContext(ctx, &score, query, commentID); err != nil {
		return 0, classify(err, "score "+string(r.kind)+" comment")
	}
	return score, nil
}
