package service

import (
	"context"
	"testing"

	"novepus/internal/dto"
	"novepus/internal/model"
	"novepus/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fixture wires the services over real repositories and an in-memory
// database, the same composition the application container builds.
type fixture struct {
	db          *gorm.DB
	session     *Session
	users       UserService
	posts       PostService
	messages    MessageService
	follows     FollowService
	messageRepo repository.MessageRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
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

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	followRepo := repository.NewFollowRepo(db)
	interestRepo := repository.NewInterestRepo(db)

	return &fixture{
		db:          db,
		session:     NewSession(userRepo),
		users:       NewUserService(userRepo, interestRepo, messageRepo),
		posts:       NewPostService(postRepo, commentRepo, userRepo),
		messages:    NewMessageService(messageRepo, userRepo),
		follows:     NewFollowService(followRepo, userRepo),
		messageRepo: messageRepo,
	}
}

func (f *fixture) register(t *testing.T, username, password string) *model.User {
	t.Helper()
	user, err := f.users.Register(context.Background(), &dto.RegisterInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) post(t *testing.T, author, title, content string, labels ...string) *model.Post {
	t.Helper()
	post, err := f.posts.Create(context.Background(), author, &dto.PostInput{
		Title:   title,
		Content: content,
		Labels:  labels,
	})
	require.NoError(t, err)
	return post
}
