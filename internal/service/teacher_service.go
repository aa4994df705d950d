package service

import (
	"context"
	"log/slog"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/repository"
)

// TeacherService has no owner concept: reads are open to any caller and
// every mutation is admin only.
type TeacherService interface {
	Get(ctx context.Context, caller auth.Identity, id int64) (*models.Teacher, error)
	List(ctx context.Context, caller auth.Identity) ([]models.Teacher, error)
	Add(ctx context.Context, caller auth.Identity, req models.NewTeacher) (*models.Teacher, error)
	Reset(ctx context.Context, caller auth.Identity, id int64, req models.NewTeacher) (*models.Teacher, error)
	Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Teacher, error)
}

type teacherService struct {
	teacherRepo repository.TeacherRepository
	logger      *slog.Logger
}

func NewTeacherService(teacherRepo repository.TeacherRepository, logger *slog.Logger) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

func (s *teacherService) Get(ctx context.Context, caller auth.Identity, id int64) (*models.Teacher, error) {
	if err := auth.Require(auth.AnyAuthenticated, caller, id); err != nil {
		return nil, err
	}
	return s.teacherRepo.GetByID(ctx, id)
}

func (s *teacherService) List(ctx context.Context, caller auth.Identity) ([]models.Teacher, error) {
	if err := auth.Require(auth.AnyAuthenticated, caller, 0); err != nil {
		return nil, err
	}
	return s.teacherRepo.List(ctx)
}

func (s *teacherService) Add(ctx context.Context, caller auth.Identity, req models.NewTeacher) (*models.Teacher, error) {
	if err := auth.Require(auth.IsAdmin, caller, 0); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{Name: req.Name, Prefix: req.Prefix}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Debug("teacher added", "teacher_id", teacher.ID)
	return teacher, nil
}

func (s *teacherService) Reset(ctx context.Context, caller auth.Identity, id int64, req models.NewTeacher) (*models.Teacher, error) {
	if err := auth.Require(auth.IsAdmin, caller, id); err != nil {
		return nil, err
	}

	teacher, err := s.teacherRepo.Update(ctx, &models.Teacher{ID: id, Name: req.Name, Prefix: req.Prefix})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("teacher reset", "teacher_id", teacher.ID)
	return teacher, nil
}

func (s *teacherService) Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Teacher, error) {
	if err := auth.Require(auth.IsAdmin, caller, id); err != nil {
		return nil, err
	}

	teacher, err := s.teacherRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("teacher deleted", "teacher_id", teacher.ID)
	return teacher, nil
}
