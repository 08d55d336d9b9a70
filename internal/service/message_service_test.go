package service

import (
	"context"
	"testing"

	"novepus/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageToUnknownReceiver(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice", "secret")

	_, err := f.messages.Send(ctx, "alice", &dto.MessageInput{
		Receiver: "ghost",
		Content:  "anyone there?",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.messages.Send(ctx, "alice", &dto.MessageInput{Receiver: "alice"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMessageDeliveryAndDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice", "secret")
	f.register(t, "bob", "secret")
	f.register(t, "carol", "secret")

	sent, err := f.messages.Send(ctx, "alice", &dto.MessageInput{
		Receiver: "bob",
		Content:  "hi bob",
	})
	require.NoError(t, err)

	inbox, err := f.messages.Inbox(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "hi bob", inbox[0].Content)

	outbox, err := f.messages.Sent(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, outbox, 1)

	// A third party owns nothing here.
	assert.ErrorIs(t, f.messages.Delete(ctx, "carol", sent.ID), ErrNotOwner)

	require.NoError(t, f.messages.Delete(ctx, "bob", sent.ID))

	inbox, err = f.messages.Inbox(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, inbox)

	outbox, err = f.messages.Sent(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, outbox)

	// The row stays in sender history even though rendering hides it.
	history, err := f.messageRepo.SentOf(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []uint64{sent.ID}, history)

	_, err = f.messages.Get(ctx, sent.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
	assert.ErrorIs(t, f.messages.Delete(ctx, "bob", sent.ID), ErrMessageNotFound)
}

func TestGetMissingMessage(t *testing.T) {
	f := newFixture(t)
	_, err := f.messages.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
