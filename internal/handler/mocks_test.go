package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/service"
	"schoolfeedback/internal/view"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Validate(token string) (auth.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(auth.Identity), args.Error(1)
}

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) student(args mock.Arguments) (*models.Student, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) Get(ctx context.Context, caller auth.Identity, id int64) (view.StudentView, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(view.StudentView), args.Error(1)
}

func (m *MockStudentService) GetSelf(ctx context.Context, caller auth.Identity) (*models.Student, error) {
	return m.student(m.Called(ctx, caller))
}

func (m *MockStudentService) List(ctx context.Context, caller auth.Identity) ([]view.StudentView, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.StudentView), args.Error(1)
}

func (m *MockStudentService) Register(ctx context.Context, caller auth.Identity, req models.RegisterStudent) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, req))
}

func (m *MockStudentService) ResetEmail(ctx context.Context, caller auth.Identity, id int64, email string) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, id, email))
}

func (m *MockStudentService) ResetPassword(ctx context.Context, caller auth.Identity, id int64, password string) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, id, password))
}

func (m *MockStudentService) ResetName(ctx context.Context, caller auth.Identity, id int64, firstName, lastName string) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, id, firstName, lastName))
}

func (m *MockStudentService) MakeAdmin(ctx context.Context, caller auth.Identity, id int64) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, id))
}

func (m *MockStudentService) ResetFull(ctx context.Context, caller auth.Identity, id int64, req models.RegisterStudent) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, id, req))
}

func (m *MockStudentService) Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Student, error) {
	return m.student(m.Called(ctx, caller, id))
}

type MockTeacherService struct {
	mock.Mock
}

func (m *MockTeacherService) teacher(args mock.Arguments) (*models.Teacher, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockTeacherService) Get(ctx context.Context, caller auth.Identity, id int64) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, caller, id))
}

func (m *MockTeacherService) List(ctx context.Context, caller auth.Identity) ([]models.Teacher, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *MockTeacherService) Add(ctx context.Context, caller auth.Identity, req models.NewTeacher) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, caller, req))
}

func (m *MockTeacherService) Reset(ctx context.Context, caller auth.Identity, id int64, req models.NewTeacher) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, caller, id, req))
}

func (m *MockTeacherService) Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Teacher, error) {
	return m.teacher(m.Called(ctx, caller, id))
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Get(ctx context.Context, caller auth.Identity, id int64) (view.CommentView, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(view.CommentView), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, caller auth.Identity) ([]view.CommentView, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.CommentView), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, caller auth.Identity, req models.NewComment) (*models.Comment, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, caller auth.Identity, id int64) (*models.Comment, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) vote(args mock.Arguments) (*models.Vote, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vote), args.Error(1)
}

func (m *MockVoteService) Upvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, error) {
	return m.vote(m.Called(ctx, caller, commentID))
}

func (m *MockVoteService) Downvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, error) {
	return m.vote(m.Called(ctx, caller, commentID))
}

func (m *MockVoteService) Unvote(ctx context.Context, caller auth.Identity, commentID int64) (*models.Vote, bool, error) {
	args := m.Called(ctx, caller, commentID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Vote), args.Bool(1), args.Error(2)
}

func (m *MockVoteService) Score(ctx context.Context, caller auth.Identity, commentID int64) (int64, error) {
	args := m.Called(ctx, caller, commentID)
	return args.Get(0).(int64), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) (*service.Health, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Health), args.Error(1)
}
