package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewWithDB(db), mock
}

func TestWithinTx_Commit(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE questions").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO approve_reject_notifications").
		WithArgs(int64(2), int64(5), models.ModerationApproved, "ok").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := s.ApproveQuestion(ctx, 5); err != nil {
			return err
		}
		_, err := s.CreateModerationNotification(ctx, models.ModerationNotification{
			UserID: 2, QuestionID: 5, Status: models.ModerationApproved, Message: "ok",
		})
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET subscription_type").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		return s.UpdateSubscriptionType(ctx, 99, models.SubscriptionPro)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_Nested(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		return s.WithinTx(ctx, func(_ context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFails(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	called := false
	err := s.WithinTx(context.Background(), func(_ context.Context) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: storage.ErrAlreadyExists},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: storage.ErrNotFound},
		{name: "value too long", err: &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException}, want: storage.ErrInvalidInput},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: storage.ErrInvalidInput},
		{name: "index row too large", err: &pgconn.PgError{Code: pgerrcode.ProgramLimitExceeded}, want: storage.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}

func TestCreateQuestion_Duplicate(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO questions").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO questions").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	q := models.Question{UserID: 3, Title: "Test Q", Details: "details", Tags: []string{"go"}}
	id, err := s.CreateQuestion(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = s.CreateQuestion(context.Background(), q)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddQuestionLike_Duplicate(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("INSERT INTO question_likes").WithArgs(int64(4), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO question_likes").WithArgs(int64(4), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.AddQuestionLike(context.Background(), 4, 7))
	assert.ErrorIs(t, s.AddQuestionLike(context.Background(), 4, 7), storage.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveQuestionLike_NotLiked(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("DELETE FROM question_likes").WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.RemoveQuestionLike(context.Background(), 4, 7)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetQuestion(t *testing.T) {
	s, mock := newMockStorage(t)
	posted := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	cols := []string{"id", "user_id", "title", "details", "tags", "is_approved", "is_reject",
		"reject_reason", "is_deleted", "posted_at", "updated_at", "deleted_at"}
	mock.ExpectQuery("FROM questions q WHERE q.id").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(9), int64(2), "Title", "Details", []byte(`["go","sql"]`), false, false,
				nil, false, posted, nil, nil))
	mock.ExpectQuery("FROM questions q WHERE q.id").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(cols))

	q, err := s.GetQuestion(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, q.Tags)
	assert.Equal(t, models.ModerationPending, q.Status())
	assert.Nil(t, q.RejectReason)

	_, err = s.GetQuestion(context.Background(), 10)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListQuestionBookmarks_PageBeyondEnd(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("FROM bookmark_questions b").WithArgs(int64(1), 10, 90).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "details", "tags", "created_at"}))

	items, total, err := s.ListQuestionBookmarks(context.Background(), 1, 10, 90)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
	assert.Equal(t, 3, total)
}

func TestSavePayment_Idempotent(t *testing.T) {
	s, mock := newMockStorage(t)
	p := models.Payment{UserID: 1, Amount: "19.99", Currency: "usd", Status: "succeeded", PaymentIntentID: "pi_1"}

	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := s.SavePayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.SavePayment(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestUpdateAd_OnlyPatchedFields(t *testing.T) {
	s, mock := newMockStorage(t)
	title := "New"

	mock.ExpectExec(`UPDATE ads SET title = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("New", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateAd(context.Background(), 3, models.AdPatch{Title: &title}))
	assert.Error(t, s.UpdateAd(context.Background(), 3, models.AdPatch{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTemplates_AccessFilter(t *testing.T) {
	s, mock := newMockStorage(t)
	uploaded := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "type", "access", "file_path", "uploaded_at"}

	mock.ExpectQuery(`WHERE access IN \(\$1, \$2\)`).WithArgs("free", "pro").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "Guide", "pdf", "pro", "/uploads/templatesPdf/a.pdf", uploaded))
	mock.ExpectQuery(`FROM templates_pdf ORDER BY`).
		WillReturnRows(sqlmock.NewRows(cols))

	list, err := s.ListTemplates(context.Background(), []string{"free", "pro"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Guide", list[0].Name)

	list, err = s.ListTemplates(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkNotificationRead_Owner(t *testing.T) {
	s, mock := newMockStorage(t)
	owner := int64(8)

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(4), owner).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE id = \$1$`).
		WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.ErrorIs(t, s.MarkNotificationRead(context.Background(), 4, &owner), storage.ErrNotFound)
	assert.NoError(t, s.MarkNotificationRead(context.Background(), 4, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanceledContext(t *testing.T) {
	s, _ := newMockStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetUserByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
