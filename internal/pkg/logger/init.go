package logger

import (
	"fmt"
	log "log/slog"
	"os"

	"novepus/internal/config"
)

// InitLogger routes structured logs to the configured file. Stdout is
// reserved for the interactive menus, so nothing is logged there.
func InitLogger() error {
	cfg := config.Cfg.Log

	out, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}

	level := log.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = log.LevelInfo
	}

	handler := log.NewJSONHandler(out, &log.HandlerOptions{Level: level})
	log.SetDefault(log.New(&ContextHandler{handler}))

	return nil
}
