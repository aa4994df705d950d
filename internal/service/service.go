package service

import (
	"context"
	"errors"
	"log/slog"

	"schoolfeedback/internal/config"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Pinger is the part of the database handle the health check needs.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type Service struct {
	Auth     AuthService
	Student  StudentService
	Teacher  TeacherService
	Comments map[models.CommentKind]CommentService
	Votes    map[models.CommentKind]VoteService
	Health   HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, db Pinger, logger *slog.Logger) *Service {
	svc := &Service{
		Auth:     NewAuthService(rep.Student, cfg, logger),
		Student:  NewStudentService(rep.Student, logger),
		Teacher:  NewTeacherService(rep.Teacher, logger),
		Comments: make(map[models.CommentKind]CommentService, len(models.CommentKinds)),
		Votes:    make(map[models.CommentKind]VoteService, len(models.CommentKinds)),
		Health:   NewHealthService(db, rep.Schema),
	}
	for _, kind := range models.CommentKinds {
		svc.Comments[kind] = NewCommentService(rep.Comments[kind], logger)
		svc.Votes[kind] = NewVoteService(rep.Comments[kind], rep.Votes[kind], logger)
	}
	return svc
}
