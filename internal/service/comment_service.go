package service

import (
	"context"
	"log/slog"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/repository"
	"schoolfeedback/internal/view"
)

type CommentService interface {
	Get(ctx context.Context, caller auth.Identity, id int64) (view.CommentView, error)
	List(ctx context.Context, caller auth.Identity) ([]view.CommentView, error)
	// Create always records the caller as author.
	Create(ctx context.Context, caller auth.Identity, req models.NewComment) (*models.Comment, error)
	Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, logger *slog.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (s *commentService) Get(ctx context.Context, caller auth.Identity, id int64) (view.CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return view.CommentView{}, err
	}
	return view.Comment(caller, *comment), nil
}

func (s *commentService) List(ctx context.Context, caller auth.Identity) ([]view.CommentView, error) {
	comments, err := s.commentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Comments(caller, comments), nil
}

func (s *commentService) Create(ctx context.Context, caller auth.Identity, req models.NewComment) (*models.Comment, error) {
	if err := auth.Require(auth.AnyAuthenticated, caller, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID:   caller.StudentID,
		ReceiverID: req.ReceiverID,
		Body:       req.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Debug("comment created", "comment_id", comment.ID, "receiver_id", comment.ReceiverID)
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Comment, error) {
	existing, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Require(auth.IsAuthorOrAdmin, caller, existing.AuthorID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("comment deleted", "comment_id", comment.ID)
	return comment, nil
}
