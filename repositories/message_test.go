package repositories

import (
	"testing"
	"time"

	"github.com/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMessage(t *testing.T, repo *MessageRepository, subject string, createdAt time.Time) models.Message {
	t.Helper()
	message, err := repo.Create(models.Message{
		Name:      "Visitor",
		Email:     "visitor@example.com",
		Subject:   subject,
		Message:   "hello",
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return message
}

func TestMessageCountSinceBoundary(t *testing.T) {
	setupTestDB(t)
	repo := NewMessageRepository()
	now := time.Now()

	seedMessage(t, repo, "fresh", now.Add(-time.Minute))
	seedMessage(t, repo, "old", now.AddDate(0, 0, -8))

	count, err := repo.CountSince(now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "a message from 8 days ago is outside the window")

	total, err := repo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestMessageTrendSince(t *testing.T) {
	setupTestDB(t)
	repo := NewMessageRepository()
	now := time.Now()

	seedMessage(t, repo, "today-1", now)
	seedMessage(t, repo, "today-2", now)
	seedMessage(t, repo, "earlier", now.AddDate(0, 0, -3))
	seedMessage(t, repo, "ancient", now.AddDate(0, 0, -40))

	trend, err := repo.TrendSince(now.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, trend, 2, "days without messages are absent, not zero")

	assert.Equal(t, now.AddDate(0, 0, -3).Format("2006-01-02"), trend[0].Date)
	assert.Equal(t, int64(1), trend[0].Count)
	assert.Equal(t, now.Format("2006-01-02"), trend[1].Date)
	assert.Equal(t, int64(2), trend[1].Count)
}

func TestMessageFindRecent(t *testing.T) {
	setupTestDB(t)
	repo := NewMessageRepository()
	now := time.Now()

	for i := 0; i < 7; i++ {
		seedMessage(t, repo, "msg", now.Add(-time.Duration(i)*time.Hour))
	}

	recent, err := repo.FindRecent(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt), "newest first")
	}
}

func TestMessageMarkRead(t *testing.T) {
	setupTestDB(t)
	repo := NewMessageRepository()

	message := seedMessage(t, repo, "unread", time.Now())
	assert.False(t, message.IsRead)

	require.NoError(t, repo.MarkRead(message.ID))

	reloaded, err := repo.FindByID(message.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsRead)
}
