package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/models"
	"schoolfeedback/internal/repository"
)

var aliceComment = &models.Comment{
	ID:          10,
	AuthorID:    2,
	ReceiverID:  3,
	Body:        "great lab partner",
	PublishedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("author is the caller", func(t *testing.T) {
		repo := new(MockCommentRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.AuthorID == alice.StudentID && c.ReceiverID == 3 && c.Body == "hi"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Comment).ID = 11
		}).Return(nil)
		svc := NewCommentService(repo, discardLogger())

		comment, err := svc.Create(ctx, alice, models.NewComment{ReceiverID: 3, Body: "hi"})

		require.NoError(t, err)
		assert.Equal(t, int64(11), comment.ID)
		assert.Equal(t, int64(2), comment.AuthorID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		repo := new(MockCommentRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrInvalidReference)
		svc := NewCommentService(repo, discardLogger())

		_, err := svc.Create(ctx, alice, models.NewComment{ReceiverID: 404, Body: "hi"})

		assert.ErrorIs(t, err, repository.ErrInvalidReference)
	})
}

func TestCommentService_Projection(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCommentRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(aliceComment, nil)
	repo.On("List", mock.Anything).Return([]models.Comment{
		*aliceComment,
		{ID: 12, AuthorID: 3, ReceiverID: 2, Body: "thanks"},
	}, nil)
	svc := NewCommentService(repo, discardLogger())

	own, err := svc.Get(ctx, alice, 10)
	require.NoError(t, err)
	assert.True(t, own.IsFull())

	other, err := svc.Get(ctx, bob, 10)
	require.NoError(t, err)
	require.False(t, other.IsFull())
	assert.Equal(t, "great lab partner", other.Limited.Body)

	views, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].IsFull())
	assert.False(t, views[1].IsFull())
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  auth.Identity
		allowed bool
	}{
		{"author", alice, true},
		{"admin", admin, true},
		{"someone else", bob, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCommentRepository)
			repo.On("GetByID", mock.Anything, int64(10)).Return(aliceComment, nil)
			repo.On("Delete", mock.Anything, int64(10)).Return(aliceComment, nil).Maybe()
			svc := NewCommentService(repo, discardLogger())

			comment, err := svc.Delete(ctx, tt.caller, 10)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, aliceComment, comment)
				repo.AssertCalled(t, "Delete", mock.Anything, int64(10))
				return
			}
			assert.ErrorIs(t, err, auth.ErrForbidden)
			repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}

	t.Run("missing comment", func(t *testing.T) {
		repo := new(MockCommentRepository)
		repo.On("GetByID", mock.Anything, int64(50)).Return(nil, repository.ErrNotFound)
		svc := NewCommentService(repo, discardLogger())

		_, err := svc.Delete(ctx, admin, 50)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
