package repository

import (
	"context"
	"testing"

	"novepus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUserInterestReusesCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterestRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, repo.AddUserInterest(ctx, alice.ID, "go"))
	require.NoError(t, repo.AddUserInterest(ctx, bob.ID, "go"))
	require.NoError(t, repo.AddUserInterest(ctx, alice.ID, "music"))
	// Declaring the same interest twice is a no-op.
	require.NoError(t, repo.AddUserInterest(ctx, alice.ID, "go"))

	var count int64
	require.NoError(t, db.Model(&model.Interest{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	labels, err := repo.InterestsOfUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "music"}, labels)

	labels, err = repo.InterestsOfUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, labels)
}

func TestLabelsOfPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewInterestRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, "a", "tagged", "go", "db")
	bare := seedPost(t, db, alice, "b", "untagged")

	labels, err := repo.LabelsOfPost(ctx, post.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "db"}, labels)

	labels, err = repo.LabelsOfPost(ctx, bare.ID)
	require.NoError(t, err)
	assert.Empty(t, labels)
}
