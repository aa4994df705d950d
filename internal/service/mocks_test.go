package service

import (
	"context"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"schoolfeedback/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) student(args mock.Arguments) (*models.Student, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.student(m.Called(ctx, id))
}

func (m *MockStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return m.student(m.Called(ctx, email))
}

func (m *MockStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentRepository) UpdateEmail(ctx context.Context, id int64, email string) (*models.Student, error) {
	return m.student(m.Called(ctx, id, email))
}

func (m *MockStudentRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) (*models.Student, error) {
	return m.student(m.Called(ctx, id, passwordHash))
}

func (m *MockStudentRepository) UpdateName(ctx context.Context, id int64, firstName, lastName string) (*models.Student, error) {
	return m.student(m.Called(ctx, id, firstName, lastName))
}

func (m *MockStudentRepository) SetAdmin(ctx context.Context, id int64) (*models.Student, error) {
	return m.student(m.Called(ctx, id))
}

func (m *MockStudentRepository) Replace(ctx context.Context, student *models.Student) (*models.Student, error) {
	return m.student(m.Called(ctx, student))
}

func (m *MockStudentRepository) Delete(ctx context.Context, id int64) (*models.Student, error) {
	return m.student(m.Called(ctx, id))
}

type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) teacher(args mock.Arguments) (*models.Teacher, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, id))
}

func (m *MockTeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, teacher))
}

func (m *MockTeacherRepository) Delete(ctx context.Context, id int64) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, id))
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) comment(args mock.Arguments) (*models.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

func (m *MockCommentRepository) List(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (*models.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

type MockSchemaRepository struct {
	mock.Mock
}

func (m *MockSchemaRepository) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
