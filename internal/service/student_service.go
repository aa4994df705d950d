package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/repository"
	"schoolfeedback/internal/view"
)

type StudentService interface {
	Get(ctx context.Context, caller auth.Identity, id int64) (view.StudentView, error)
	GetSelf(ctx context.Context, caller auth.Identity) (*models.Student, error)
	List(ctx context.Context, caller auth.Identity) ([]view.StudentView, error)
	Register(ctx context.Context, caller auth.Identity, req models.RegisterStudent) (*models.Student, error)
	ResetEmail(ctx context.Context, caller auth.Identity, id int64, email string) (*models.Student, error)
	ResetPassword(ctx context.Context, caller auth.Identity, id int64, password string) (*models.Student, error)
	ResetName(ctx context.Context, caller auth.Identity, id int64, firstName, lastName string) (*models.Student, error)
	MakeAdmin(ctx context.Context, caller auth.Identity, id int64) (*models.Student, error)
	ResetFull(ctx context.Context, caller auth.Identity, id int64, req models.RegisterStudent) (*models.Student, error)
	Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	logger      *slog.Logger
	hashCost    int
}

func NewStudentService(studentRepo repository.StudentRepository, logger *slog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
		hashCost:    bcrypt.DefaultCost,
	}
}

func (s *studentService) Get(ctx context.Context, caller auth.Identity, id int64) (view.StudentView, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return view.StudentView{}, err
	}
	return view.Student(caller, *student), nil
}

// GetSelf has no row to return for the root identity and reports ErrNotFound.
func (s *studentService) GetSelf(ctx context.Context, caller auth.Identity) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, caller.StudentID)
}

func (s *studentService) List(ctx context.Context, caller auth.Identity) ([]view.StudentView, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.Students(caller, students), nil
}

func (s *studentService) Register(ctx context.Context, caller auth.Identity, req models.RegisterStudent) (*models.Student, error) {
	if err := auth.Require(auth.IsAdmin, caller, 0); err != nil {
		return nil, err
	}

	student, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Debug("student registered", "student_id", student.ID, "admin", student.IsAdmin)
	return student, nil
}

func (s *studentService) ResetEmail(ctx context.Context, caller auth.Identity, id int64, email string) (*models.Student, error) {
	if err := auth.Require(auth.IsSelfOrAdmin, caller, id); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.UpdateEmail(ctx, id, email)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("student email reset", "student_id", student.ID)
	return student, nil
}

func (s *studentService) ResetPassword(ctx context.Context, caller auth.Identity, id int64, password string) (*models.Student, error) {
	if err := auth.Require(auth.IsSelfOrAdmin, caller, id); err != nil {
		return nil, err
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.UpdatePasswordHash(ctx, id, hash)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("student password reset", "student_id", student.ID)
	return student, nil
}

func (s *studentService) ResetName(ctx context.Context, caller auth.Identity, id int64, firstName, lastName string) (*models.Student, error) {
	if err := auth.Require(auth.IsAdmin, caller, id); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.UpdateName(ctx, id, firstName, lastName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("student name reset", "student_id", student.ID)
	return student, nil
}

func (s *studentService) MakeAdmin(ctx context.Context, caller auth.Identity, id int64) (*models.Student, error) {
	if err := auth.Require(auth.IsAdmin, caller, id); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.SetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("student made admin", "student_id", student.ID)
	return student, nil
}

func (s *studentService) ResetFull(ctx context.Context, caller auth.Identity, id int64, req models.RegisterStudent) (*models.Student, error) {
	if err := auth.Require(auth.IsAdmin, caller, id); err != nil {
		return nil, err
	}

	replacement, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	replacement.ID = id

	student, err := s.studentRepo.Replace(ctx, replacement)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("student reset", "student_id", student.ID)
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Student, error) {
	if err := auth.Require(auth.IsSelfOrAdmin, caller, id); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("student deleted", "student_id", student.ID)
	return student, nil
}

func (s *studentService) fromRequest(req models.RegisterStudent) (*models.Student, error) {
	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		IsAdmin:      req.Admin != nil && *req.Admin,
	}, nil
}

func (s *studentService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
