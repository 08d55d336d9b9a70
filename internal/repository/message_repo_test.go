package repository

import (
	"context"
	"testing"

	"novepus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sendMessage(t *testing.T, db *gorm.DB, sender, receiver, content string) *model.Message {
	t.Helper()
	message := &model.Message{Sender: sender, Receiver: receiver, Content: content}
	require.NoError(t, NewMessageRepo(db).CreateMessage(context.Background(), message))
	return message
}

func TestMessageRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	sent := sendMessage(t, db, "alice", "bob", "hi bob")

	got, err := repo.GetMessageByID(ctx, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Sender)
	assert.Equal(t, "bob", got.Receiver)
	assert.Equal(t, "hi bob", got.Content)
	assert.False(t, got.IsDeleted)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.GetMessageByID(ctx, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Inbox and sent listings are history queries. They keep listing deleted
// ids, the rendering layer filters on the flag.
func TestInboxSentKeepDeletedHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	first := sendMessage(t, db, "alice", "bob", "first")
	second := sendMessage(t, db, "bob", "alice", "second")

	inbox, err := repo.InboxOf(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []uint64{first.ID}, inbox)

	sent, err := repo.SentOf(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []uint64{first.ID}, sent)

	require.NoError(t, repo.SetDeleted(ctx, first.ID, true))

	inbox, err = repo.InboxOf(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []uint64{first.ID}, inbox)

	sent, err = repo.SentOf(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []uint64{first.ID}, sent)

	got, err := repo.GetMessageByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	messages, err := repo.GetMessagesByIDs(ctx, []uint64{second.ID, first.ID})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, first.ID, messages[0].ID)
	assert.Equal(t, second.ID, messages[1].ID)
}

func TestGetMessagesByIDsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepo(db)

	messages, err := repo.GetMessagesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
