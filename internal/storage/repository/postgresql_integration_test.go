package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

func TestIntegration_Repository(t *testing.T) {
	s, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(s)
	verification := NewTestVerification(s)

	author := factory.CreateUser(t, "author", models.UserTypeVisitor, models.SubscriptionFree)
	reader := factory.CreateUser(t, "reader", models.UserTypeVisitor, models.SubscriptionFree)

	t.Run("duplicate user", func(t *testing.T) {
		_, err := s.CreateUser(ctx, models.User{
			Username: "author", Email: "other@example.com", PasswordHash: "h",
			UserType: models.UserTypeVisitor, SubscriptionType: models.SubscriptionFree,
		})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("question title unique per author", func(t *testing.T) {
		factory.CreateQuestion(t, author, "Test Q")
		_, err := s.CreateQuestion(ctx, models.Question{UserID: author, Title: "Test Q", Details: "again"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)

		_, err = s.CreateQuestion(ctx, models.Question{UserID: reader, Title: "Test Q", Details: "mine"})
		assert.NoError(t, err)
	})

	t.Run("views and likes are recorded once", func(t *testing.T) {
		qID := factory.CreateQuestion(t, author, "Likes")

		require.NoError(t, s.AddQuestionView(ctx, qID, reader))
		assert.ErrorIs(t, s.AddQuestionView(ctx, qID, reader), storage.ErrAlreadyExists)

		require.NoError(t, s.AddQuestionLike(ctx, qID, reader))
		assert.ErrorIs(t, s.AddQuestionLike(ctx, qID, reader), storage.ErrAlreadyExists)

		likes, err := s.ListQuestionLikes(ctx, qID)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, "reader", likes[0].Username)

		require.NoError(t, s.RemoveQuestionLike(ctx, qID, reader))
		assert.ErrorIs(t, s.RemoveQuestionLike(ctx, qID, reader), storage.ErrNotFound)
	})

	t.Run("like on missing question maps to not found", func(t *testing.T) {
		assert.ErrorIs(t, s.AddQuestionLike(ctx, 999999, reader), storage.ErrNotFound)
	})

	t.Run("moderation in transaction", func(t *testing.T) {
		qID := factory.CreateQuestion(t, author, "Moderate me")

		err := s.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.ApproveQuestion(ctx, qID); err != nil {
				return err
			}
			_, err := s.CreateModerationNotification(ctx, models.ModerationNotification{
				UserID: author, QuestionID: qID, Status: models.ModerationApproved, Message: "approved",
			})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, verification.CountRows(t, "approve_reject_notifications", "question_id = $1", qID))
		assert.ErrorIs(t, s.ApproveQuestion(ctx, qID), storage.ErrNotFound)

		items, total, err := s.ListApprovedQuestions(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, models.ModerationApproved, items[0].Status)
	})

	t.Run("failed transaction leaves no trace", func(t *testing.T) {
		qID := factory.CreateQuestion(t, author, "Rollback")
		boom := errors.New("boom")

		err := s.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.RejectQuestion(ctx, qID, "spam"); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		q, err := s.GetQuestion(ctx, qID)
		require.NoError(t, err)
		assert.Equal(t, models.ModerationPending, q.Status())
	})

	t.Run("bookmarks pagination", func(t *testing.T) {
		for _, title := range []string{"B1", "B2", "B3"} {
			require.NoError(t, s.AddQuestionBookmark(ctx, reader, factory.CreateQuestion(t, author, title)))
		}

		items, total, err := s.ListQuestionBookmarks(ctx, reader, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 2)

		items, total, err = s.ListQuestionBookmarks(ctx, reader, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, items)
	})

	t.Run("payment upgrade is idempotent", func(t *testing.T) {
		p := models.Payment{UserID: reader, Amount: "9.99", Currency: "usd", Status: "succeeded", PaymentIntentID: "pi_123"}

		err := s.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.UpdateSubscriptionType(ctx, reader, models.SubscriptionPro); err != nil {
				return err
			}
			_, err := s.SavePayment(ctx, p)
			return err
		})
		require.NoError(t, err)

		created, err := s.SavePayment(ctx, p)
		require.NoError(t, err)
		assert.False(t, created)

		verification.VerifySubscriptionType(t, reader, models.SubscriptionPro)
		assert.Equal(t, 1, verification.CountRows(t, "payments", "payment_intent_id = $1", "pi_123"))

		payments, err := s.ListPayments(ctx, reader)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, "9.99", payments[0].Amount)
	})

	t.Run("support inquiry unique and replies", func(t *testing.T) {
		id, err := s.CreateInquiry(ctx, models.Inquiry{UserID: reader, Subject: "Help", Message: "Cannot login"})
		require.NoError(t, err)
		_, err = s.CreateInquiry(ctx, models.Inquiry{UserID: reader, Subject: "Help", Message: "Cannot login"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)

		_, err = s.CreateInquiryReply(ctx, models.InquiryReply{
			InquiryID: id, SenderType: models.SenderVisitor, SenderID: reader, Message: "any news?",
		})
		require.NoError(t, err)

		list, total, err := s.ListInquiries(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, 1, list[0].ReplyCount)
		assert.Equal(t, "reader", list[0].Username)
	})

	t.Run("calculator toggles", func(t *testing.T) {
		id, err := s.CreateCalculator(ctx, models.Calculator{Title: "ROI", Subtitle: "returns"})
		require.NoError(t, err)
		_, err = s.CreateCalculator(ctx, models.Calculator{Title: "ROI"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)

		hidden, err := s.ToggleCalculatorHidden(ctx, id)
		require.NoError(t, err)
		assert.True(t, hidden)

		visible, err := s.ListCalculators(ctx, true)
		require.NoError(t, err)
		assert.Empty(t, visible)

		_, err = s.ToggleCalculatorComingSoon(ctx, 999999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
