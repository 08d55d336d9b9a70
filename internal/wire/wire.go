package wire

import (
	"novepus/internal/console"
	"novepus/internal/menu"
	"novepus/internal/repository"
	"novepus/internal/service"

	"gorm.io/gorm"
)

// ApplicationContainer bundles the top level components of one run.
type ApplicationContainer struct {
	Menu *menu.Controller
	DB   *gorm.DB
}

func BuildApplication(db *gorm.DB, io console.Console) *ApplicationContainer {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	followRepo := repository.NewFollowRepo(db)
	interestRepo := repository.NewInterestRepo(db)

	session := service.NewSession(userRepo)
	userService := service.NewUserService(userRepo, interestRepo, messageRepo)
	postService := service.NewPostService(postRepo, commentRepo, userRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)

	controller := menu.NewController(io, session, userService, postService, messageService, followService)

	return &ApplicationContainer{
		Menu: controller,
		DB:   db,
	}
}
