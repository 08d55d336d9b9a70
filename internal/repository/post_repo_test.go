package repository

import (
	"context"
	"testing"

	"novepus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePostWithLabels(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, "hello", "first words", "go", "db")

	got, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, "first words", got.Content)
	assert.Equal(t, "alice", got.User.Username)
	assert.ElementsMatch(t, []string{"go", "db"}, got.Labels)

	// A second post reusing a label must not duplicate the catalog row.
	seedPost(t, db, alice, "again", "more words", "go")
	var count int64
	require.NoError(t, db.Model(&model.Interest{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetPostsByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	first := seedPost(t, db, alice, "first", "one", "go")
	second := seedPost(t, db, alice, "second", "two")

	posts, err := repo.GetPostsByIDs(ctx, []uint64{second.ID, first.ID})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID)
	assert.Equal(t, []string{"go"}, posts[0].Labels)
	assert.Equal(t, second.ID, posts[1].ID)
	assert.Empty(t, posts[1].Labels)

	posts, err = repo.GetPostsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

// Soft deletion hides a post from every listing but keeps the row
// resolvable by id.
func TestSoftDeleteVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	kept := seedPost(t, db, alice, "kept", "alive")
	gone := seedPost(t, db, alice, "gone", "dead")
	require.NoError(t, repo.SetDeleted(ctx, gone.ID, true))

	ids, err := repo.AllPostIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{kept.ID}, ids)

	ids, err = repo.PostIDsByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{kept.ID}, ids)

	got, err := repo.GetPostByID(ctx, gone.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	exists, err := repo.PostExists(ctx, gone.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetPostByID(ctx, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchByKeyword(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	hello := seedPost(t, db, alice, "a", "Hello World out there")
	seedPost(t, db, alice, "b", "nothing to see")
	gone := seedPost(t, db, alice, "c", "Hello World but deleted")
	require.NoError(t, repo.SetDeleted(ctx, gone.ID, true))

	ids, err := repo.SearchByKeyword(ctx, "Hello World")
	require.NoError(t, err)
	assert.Equal(t, []uint64{hello.ID}, ids)

	ids, err = repo.SearchByKeyword(ctx, "absent")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// LIKE metacharacters typed by the user match literally, never as a
// pattern.
func TestSearchEscapesLikePattern(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	literal := seedPost(t, db, alice, "a", "save 50% today")
	seedPost(t, db, alice, "b", "save 50 coins today")

	ids, err := repo.SearchByKeyword(ctx, "50%")
	require.NoError(t, err)
	assert.Equal(t, []uint64{literal.ID}, ids)

	underscore := seedPost(t, db, alice, "c", "the flag_name option")
	ids, err = repo.SearchByKeyword(ctx, "flag_name")
	require.NoError(t, err)
	assert.Equal(t, []uint64{underscore.ID}, ids)
}

func TestPostIDsByInterests(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	require.NoError(t, NewInterestRepo(db).AddUserInterest(ctx, alice.ID, "go"))

	tagged := seedPost(t, db, bob, "a", "about go", "go")
	seedPost(t, db, bob, "b", "about music", "music")
	deleted := seedPost(t, db, bob, "c", "go but gone", "go")
	require.NoError(t, repo.SetDeleted(ctx, deleted.ID, true))

	ids, err := repo.PostIDsByInterests(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{tagged.ID}, ids)

	ids, err = repo.PostIDsByInterests(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLikePostIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice, "a", "likeable")

	require.NoError(t, repo.LikePost(ctx, bob.ID, post.ID))
	require.NoError(t, repo.LikePost(ctx, bob.ID, post.ID))

	count, err := repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.LikePost(ctx, alice.ID, post.ID))
	count, err = repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
