package question

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateQuestion(ctx context.Context, q models.Question) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}
func (m *RepoMock) UpdateQuestion(ctx context.Context, q models.Question) error {
	return m.Called(ctx, q).Error(0)
}
func (m *RepoMock) SoftDeleteQuestion(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *RepoMock) ListQuestionsAdmin(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.QuestionListItem), args.Int(1), args.Error(2)
}
func (m *RepoMock) ListUserPostedQuestions(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionListItem, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.QuestionListItem), args.Int(1), args.Error(2)
}
func (m *RepoMock) ListUserQuestions(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionListItem, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.QuestionListItem), args.Int(1), args.Error(2)
}
func (m *RepoMock) AddQuestionView(ctx context.Context, questionID, userID int64) error {
	return m.Called(ctx, questionID, userID).Error(0)
}
func (m *RepoMock) AddQuestionLike(ctx context.Context, questionID, userID int64) error {
	return m.Called(ctx, questionID, userID).Error(0)
}
func (m *RepoMock) RemoveQuestionLike(ctx context.Context, questionID, userID int64) error {
	return m.Called(ctx, questionID, userID).Error(0)
}
func (m *RepoMock) ListQuestionLikes(ctx context.Context, questionID int64) ([]models.UserRef, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).([]models.UserRef), args.Error(1)
}
func (m *RepoMock) AddComment(ctx context.Context, c models.Comment) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}
func (m *RepoMock) SoftDeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) ListComments(ctx context.Context, questionID int64) ([]models.Comment, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).([]models.Comment), args.Error(1)
}
func (m *RepoMock) AddCommentLike(ctx context.Context, commentID, userID int64) error {
	return m.Called(ctx, commentID, userID).Error(0)
}
func (m *RepoMock) RemoveCommentLike(ctx context.Context, commentID, userID int64) error {
	return m.Called(ctx, commentID, userID).Error(0)
}
func (m *RepoMock) ListCommentLikes(ctx context.Context, commentID int64) ([]models.UserRef, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).([]models.UserRef), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTags_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tags
		wantErr bool
	}{
		{name: "array", input: `["go", "sql"]`, want: Tags{"go", "sql"}},
		{name: "comma string", input: `"go, sql ,,db"`, want: Tags{"go", " sql ", "", "db"}},
		{name: "number", input: `42`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Tags
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got, err := NormalizeTags([]string{" go ", "", "sql", "  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, got)

	_, err = NormalizeTags([]string{"a", "b", "c", "d", "e", "f"})
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestService_Create(t *testing.T) {
	t.Run("same title twice gives conflict", func(t *testing.T) {
		repo := new(RepoMock)
		want := models.Question{UserID: 1, Title: "Test Q", Details: "body", Tags: []string{"go"}}
		repo.On("CreateQuestion", mock.Anything, want).Return(int64(10), nil).Once()
		repo.On("CreateQuestion", mock.Anything, want).Return(int64(0), storage.ErrAlreadyExists).Once()

		svc := New(repo, newNoopLogger())
		in := Input{Title: " Test Q ", Details: "body", Tags: []string{"go", " "}}

		q, err := svc.Create(context.Background(), 1, in)
		require.NoError(t, err)
		assert.Equal(t, int64(10), q.ID)

		_, err = svc.Create(context.Background(), 1, in)
		assert.True(t, apperr.Is(err, apperr.Conflict))
		repo.AssertExpectations(t)
	})

	t.Run("missing details", func(t *testing.T) {
		repo := new(RepoMock)
		_, err := New(repo, newNoopLogger()).Create(context.Background(), 1, Input{Title: "x", Details: "  "})
		assert.True(t, apperr.Is(err, apperr.Validation))
		repo.AssertNotCalled(t, "CreateQuestion", mock.Anything, mock.Anything)
	})

	t.Run("title longer than column", func(t *testing.T) {
		repo := new(RepoMock)
		_, err := New(repo, newNoopLogger()).Create(context.Background(), 1, Input{
			Title: strings.Repeat("x", models.MaxTitleLen+45), Details: "d",
		})
		assert.True(t, apperr.Is(err, apperr.Validation))
		repo.AssertNotCalled(t, "CreateQuestion", mock.Anything, mock.Anything)
	})

	t.Run("title at the limit in multibyte runes", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateQuestion", mock.Anything, mock.Anything).Return(int64(4), nil)
		_, err := New(repo, newNoopLogger()).Create(context.Background(), 1, Input{
			Title: strings.Repeat("я", models.MaxTitleLen), Details: "d",
		})
		require.NoError(t, err)
	})

	t.Run("too many tags", func(t *testing.T) {
		_, err := New(new(RepoMock), newNoopLogger()).Create(context.Background(), 1, Input{
			Title: "x", Details: "y", Tags: []string{"1", "2", "3", "4", "5", "6"},
		})
		assert.True(t, apperr.Is(err, apperr.Validation))
	})
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantKind apperr.Kind
	}{
		{name: "ok"},
		{name: "not owned", repoErr: storage.ErrNotFound, wantKind: apperr.NotFound},
		{name: "title taken", repoErr: storage.ErrAlreadyExists, wantKind: apperr.Conflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("UpdateQuestion", mock.Anything, mock.AnythingOfType("models.Question")).Return(tt.repoErr)

			_, err := New(repo, newNoopLogger()).Update(context.Background(), 1, 2, Input{Title: "t", Details: "d"})
			if tt.repoErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}

func TestService_AddLike(t *testing.T) {
	active := &models.Question{ID: 3}
	deleted := &models.Question{ID: 4, IsDeleted: true}

	tests := []struct {
		name     string
		setup    func(r *RepoMock)
		qID      int64
		wantKind apperr.Kind
		wantOK   bool
	}{
		{
			name: "first like",
			qID:  3,
			setup: func(r *RepoMock) {
				r.On("GetQuestion", mock.Anything, int64(3)).Return(active, nil)
				r.On("AddQuestionLike", mock.Anything, int64(3), int64(7)).Return(nil)
			},
			wantOK: true,
		},
		{
			name: "duplicate like",
			qID:  3,
			setup: func(r *RepoMock) {
				r.On("GetQuestion", mock.Anything, int64(3)).Return(active, nil)
				r.On("AddQuestionLike", mock.Anything, int64(3), int64(7)).Return(storage.ErrAlreadyExists)
			},
			wantKind: apperr.Conflict,
		},
		{
			name: "deleted question",
			qID:  4,
			setup: func(r *RepoMock) {
				r.On("GetQuestion", mock.Anything, int64(4)).Return(deleted, nil)
			},
			wantKind: apperr.NotFound,
		},
		{
			name: "missing question",
			qID:  5,
			setup: func(r *RepoMock) {
				r.On("GetQuestion", mock.Anything, int64(5)).Return(nil, storage.ErrNotFound)
			},
			wantKind: apperr.NotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)
			err := New(repo, newNoopLogger()).AddLike(context.Background(), 7, tt.qID)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}

func TestService_DeleteComment(t *testing.T) {
	comment := &models.Comment{ID: 8, UserID: 1}

	tests := []struct {
		name     string
		actor    models.Actor
		setup    func(r *RepoMock)
		wantKind apperr.Kind
		wantOK   bool
	}{
		{
			name:  "owner deletes",
			actor: models.Actor{UserID: 1, UserType: models.UserTypeVisitor},
			setup: func(r *RepoMock) {
				r.On("GetComment", mock.Anything, int64(8)).Return(comment, nil)
				r.On("SoftDeleteComment", mock.Anything, int64(8)).Return(nil)
			},
			wantOK: true,
		},
		{
			name:  "admin deletes foreign comment",
			actor: models.Actor{UserID: 99, UserType: models.UserTypeAdmin},
			setup: func(r *RepoMock) {
				r.On("GetComment", mock.Anything, int64(8)).Return(comment, nil)
				r.On("SoftDeleteComment", mock.Anything, int64(8)).Return(nil)
			},
			wantOK: true,
		},
		{
			name:  "other visitor forbidden",
			actor: models.Actor{UserID: 2, UserType: models.UserTypeVisitor},
			setup: func(r *RepoMock) {
				r.On("GetComment", mock.Anything, int64(8)).Return(comment, nil)
			},
			wantKind: apperr.Forbidden,
		},
		{
			name:  "missing comment",
			actor: models.Actor{UserID: 1, UserType: models.UserTypeVisitor},
			setup: func(r *RepoMock) {
				r.On("GetComment", mock.Anything, int64(8)).Return(nil, storage.ErrNotFound)
			},
			wantKind: apperr.NotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)
			err := New(repo, newNoopLogger()).DeleteComment(context.Background(), tt.actor, 8)
			if tt.wantOK {
				assert.NoError(t, err)
				repo.AssertExpectations(t)
				return
			}
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			repo.AssertNotCalled(t, "SoftDeleteComment", mock.Anything, mock.Anything)
		})
	}
}

func TestService_ListMine_PageBeyondEnd(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListUserQuestions", mock.Anything, int64(1), 10, 40).Return([]models.QuestionListItem{}, 12, nil)

	items, meta, err := New(repo, newNoopLogger()).ListMine(context.Background(), 1, pagination.New(5, 10))
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, pagination.Meta{Total: 12, Page: 5, Limit: 10, TotalPages: 2}, meta)
}

func TestService_Likes(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetQuestion", mock.Anything, int64(3)).Return(&models.Question{ID: 3}, nil)
	repo.On("ListQuestionLikes", mock.Anything, int64(3)).Return([]models.UserRef{{UserID: 1, Username: "a"}, {UserID: 2, Username: "b"}}, nil)

	likes, err := New(repo, newNoopLogger()).Likes(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, likes.TotalLikes)
}

func TestService_RemoveLike_NotLiked(t *testing.T) {
	repo := new(RepoMock)
	repo.On("RemoveQuestionLike", mock.Anything, int64(3), int64(7)).Return(storage.ErrNotFound)

	err := New(repo, newNoopLogger()).RemoveLike(context.Background(), 7, 3)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestService_InternalErrorsWrapped(t *testing.T) {
	repo := new(RepoMock)
	repo.On("SoftDeleteQuestion", mock.Anything, int64(1), int64(2)).Return(errors.New("db down"))

	err := New(repo, newNoopLogger()).Delete(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
