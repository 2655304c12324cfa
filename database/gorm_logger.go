package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm/logger"
)

// slogWriter feeds gorm's log lines into the process slog handler so SQL
// traces share the API's format and destination.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Info("gorm", "detail", fmt.Sprintf(format, args...))
}

// newGormLogger logs slow queries and errors, plus every statement at debug.
func newGormLogger(log *slog.Logger, level string) logger.Interface {
	gormLevel := logger.Warn
	if level == "debug" {
		gormLevel = logger.Info
	}
	return logger.New(slogWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
