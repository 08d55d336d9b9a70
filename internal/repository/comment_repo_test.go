package repository

import (
	"context"
	"testing"

	"novepus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsOfPostOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice, "a", "discuss")

	require.NoError(t, repo.CreateComment(ctx, &model.PostComment{
		PostID: post.ID, UserID: bob.ID, Content: "first",
	}))
	require.NoError(t, repo.CreateComment(ctx, &model.PostComment{
		PostID: post.ID, UserID: alice.ID, Content: "second",
	}))

	comments, err := repo.CommentsOfPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "bob", comments[0].User.Username)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "alice", comments[1].User.Username)

	comments, err = repo.CommentsOfPost(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
