package repository

import (
	"context"
	"testing"

	"novepus/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// TranslateError is on so constraint violations surface the same way they
// do against MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.PostComment{},
		&model.Message{},
		&model.Interest{},
		&model.InterestUser{},
		&model.InterestPost{},
		&model.UserFollow{},
		&model.PostLike{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "hash-" + username}
	require.NoError(t, NewUserRepo(db).CreateUser(context.Background(), user, nil))
	return user
}

func seedPost(t *testing.T, db *gorm.DB, author *model.User, title, content string, labels ...string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: author.ID, Title: title, Content: content}
	require.NoError(t, NewPostRepo(db).CreatePost(context.Background(), post, labels))
	return post
}
