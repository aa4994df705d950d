package service

import (
	"context"
	"errors"
	"log/slog"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/repository"
)

type VoteService interface {
	Upvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, error)
	Downvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, error)
	// Unvote reports deleted=false, with a nil vote and nil error, when the
	// caller had no vote on the comment.
	Unvote(ctx context.Context, caller auth.Identity, commentID int64) (vote *models.Vote, deleted bool, err error)
	// Score is upvotes minus downvotes.
	Score(ctx context.Context, caller auth.Identity, commentID int64) (int64, error)
}

type voteService struct {
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
	logger      *slog.Logger
}

func NewVoteService(commentRepo repository.CommentRepository, voteRepo repository.VoteRepository, logger *slog.Logger) VoteService {
	return &voteService{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		logger:      logger,
	}
}

func (s *voteService) Upvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, error) {
	return s.cast(ctx, caller, commentID, true)
}

func (s *voteService) Downvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, error) {
	return s.cast(ctx, caller, commentID, false)
}

func (s *voteService) cast(ctx context.Context, caller auth.Identity, commentID int64, isUpvote bool) (*models.Vote, error) {
	if err := s.precheck(ctx, caller, commentID); err != nil {
		return nil, err
	}

	vote, err := s.voteRepo.Upsert(ctx, commentID, caller.StudentID, isUpvote)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("vote cast", "comment_id", commentID, "voter_id", caller.StudentID, "upvote", isUpvote)
	return vote, nil
}

func (s *voteService) Unvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, bool, error) {
	if err := s.precheck(ctx, caller, commentID); err != nil {
		return nil, false, err
	}

	vote, err := s.voteRepo.Delete(ctx, commentID, caller.StudentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	s.logger.Debug("vote deleted", "comment_id", commentID, "voter_id", caller.StudentID)
	return vote, true, nil
}

func (s *voteService) Score(ctx context.Context, caller auth.Identity, commentID int64) (int64, error) {
	if err := s.precheck(ctx, caller, commentID); err != nil {
		return 0, err
	}
	return s.voteRepo.Score(ctx, commentID)
}

// precheck turns a vote on a missing comment into ErrNotFound rather than a
// foreign key failure.
func (s *voteService) precheck(ctx context.Context, caller auth.Identity, commentID int64) error {
	if err := auth.Require(auth.AnyAuthenticated, caller, 0); err != nil {
		return err
	}
	_, err := s.commentRepo.GetByID(ctx, commentID)
	return err
}
