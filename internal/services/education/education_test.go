package education_test

import (
	"context"
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
	"github.com/magabrotheeeer/qa-platform/internal/services/education"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateEducationContent(ctx context.Context, c models.EducationContent) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ListEducationContent(ctx context.Context, limit, offset int) ([]models.EducationContent, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.EducationContent), args.Int(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateEducationContent", mock.Anything, models.EducationContent{Title: "Go", Description: "basics"}).Return(int64(1), nil)
	svc := education.New(repo, newNoopLogger())

	c, err := svc.Create(context.Background(), " Go ", "basics ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = svc.Create(context.Background(), "  ", "x")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Create(context.Background(), strings.Repeat("t", 300), "x")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	repo.AssertNumberOfCalls(t, "CreateEducationContent", 1)
}

func TestService_List_BeyondEnd(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListEducationContent", mock.Anything, 10, 90).Return([]models.EducationContent{}, 3, nil)

	items, meta, err := education.New(repo, newNoopLogger()).List(context.Background(), pagination.New(10, 10))
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, meta.TotalPages)
}
