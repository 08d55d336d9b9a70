package main

import (
	"context"
	"fmt"
	log "log/slog"
	"os"

	"novepus/internal/config"
	"novepus/internal/console"
	"novepus/internal/model"
	"novepus/internal/pkg/database"
	"novepus/internal/pkg/logger"
	"novepus/internal/wire"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(); err != nil {
		log.Error("Fatal error: failed to initialize logger", "err", err)
		os.Exit(1)
	}

	// A storage failure before the first menu is fatal, the process never
	// enters an interactive state it cannot serve.
	db, err := database.NewGormDB(&config.Cfg.DB)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		fmt.Fprintln(os.Stderr, "System Failure! Cannot connect to storage! Exit")
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.PostComment{},
		&model.Message{},
		&model.Interest{},
		&model.InterestUser{},
		&model.InterestPost{},
		&model.UserFollow{},
		&model.PostLike{},
	); err != nil {
		log.Error("Fatal error: failed to migrate schema", "err", err)
		os.Exit(1)
	}

	ctx := logger.WithTraceID(context.Background())
	app := wire.BuildApplication(db, console.NewTerminal())

	log.InfoContext(ctx, "Novepus session starting")
	app.Menu.Run(ctx)
	log.InfoContext(ctx, "Novepus session finished")
}
