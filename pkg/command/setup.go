package command

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jackwhich/jenkins_api/pkg/config"
)

func setupLogger(cfg *config.Config) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: loggerLevel(cfg),
	}

	if cfg.Logs.Pretty {
		return slog.New(
			slog.NewTextHandler(os.Stdout, options),
		)
	}

	return slog.New(
		slog.NewJSONHandler(os.Stdout, options),
	)
}

func loggerLevel(cfg *config.Config) slog.Leveler {
	switch strings.ToLower(cfg.Logs.Level) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
