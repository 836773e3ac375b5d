package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/qa-platform/internal/migrations"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// TestDataFactory создаёт тестовые данные напрямую через SQL.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создаёт новую фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создаёт пользователя и возвращает его ID.
func (f *TestDataFactory) CreateUser(t *testing.T, username, userType, subscriptionType string) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, email, password_hash, full_name, user_type, subscription_type)
		VALUES ($1, $2, 'hash', $3, $4, $5) RETURNING id`,
		username, username+"@example.com", "Full "+username, userType, subscriptionType).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateQuestion создаёт вопрос и возвращает его ID.
func (f *TestDataFactory) CreateQuestion(t *testing.T, userID int64, title string) int64 {
	t.Helper()
	id, err := f.storage.CreateQuestion(context.Background(), models.Question{
		UserID: userID, Title: title, Details: "details of " + title, Tags: []string{"go"},
	})
	require.NoError(t, err)
	return id
}

// CreateComment создаёт комментарий и возвращает его ID.
func (f *TestDataFactory) CreateComment(t *testing.T, questionID, userID int64, text string) int64 {
	t.Helper()
	id, err := f.storage.AddComment(context.Background(), models.Comment{QuestionID: questionID, UserID: userID, Comment: text})
	require.NoError(t, err)
	return id
}

// TestVerification содержит общие проверки состояния БД.
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создаёт новый объект для проверки результатов.
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// CountRows возвращает число строк таблицы, удовлетворяющих условию.
func (v *TestVerification) CountRows(t *testing.T, table, where string, args ...any) int {
	t.Helper()
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE "+where, args...).Scan(&count)
	require.NoError(t, err)
	return count
}

// VerifySubscriptionType проверяет тип подписки пользователя.
func (v *TestVerification) VerifySubscriptionType(t *testing.T, userID int64, expected string) {
	t.Helper()
	var subscriptionType string
	err := v.storage.DB.QueryRow("SELECT subscription_type FROM users WHERE id = $1", userID).Scan(&subscriptionType)
	require.NoError(t, err)
	require.Equal(t, expected, subscriptionType)
}

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		_ = pgContainer.Terminate(ctx)
	}

	return storage, cleanup
}
