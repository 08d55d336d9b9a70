package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"novepus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func TestFollowAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, repo.Follow(ctx, alice.ID, bob.ID), gorm.ErrDuplicatedKey)

	following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The relation is directed, the reverse edge does not exist.
	following, err = repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestUnfollowReportsRemovedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	removed, err := repo.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	removed, err = repo.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestFollowGraphSymmetry(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Follow(ctx, carol.ID, bob.ID))

	followings, err := repo.FollowingIDsOf(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{bob.ID}, followings)

	followers, err := repo.FollowerIDsOf(ctx, bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{alice.ID, carol.ID}, followers)

	followers, err = repo.FollowerIDsOf(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

// Concurrent sessions racing on the same pair end up with exactly one
// stored edge, the composite key turns every loser into a duplicate.
func TestConcurrentFollowKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	var successes int64
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			err := repo.Follow(ctx, alice.ID, bob.ID)
			if err == nil {
				atomic.AddInt64(&successes, 1)
				return nil
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&model.UserFollow{}).
		Where("follower_id = ? AND followee_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
