package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"codekeeper/internal/app/client/config"
	"codekeeper/internal/utils/logger/slogpretty"
)

// New создает логгер под окружение из конфигурации. Логи идут в stderr,
// чтобы не смешиваться с выводом команд (json, csv).
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	level, pretty := envDefaults(cfg)

	// LOG_LEVEL перекрывает уровень окружения, некорректное значение игнорируется
	if cfg.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			level = lvl
		}
	}

	if pretty {
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: level},
		}
		return slog.New(opts.NewPrettyHandler(w))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func envDefaults(cfg *config.Config) (slog.Level, bool) {
	switch {
	case cfg.IsLocal():
		return slog.LevelDebug, true
	case cfg.IsDev():
		return slog.LevelDebug, false
	case cfg.IsProd():
		return slog.LevelInfo, false
	default:
		return slog.LevelInfo, false
	}
}
