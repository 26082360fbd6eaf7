package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"gospelmedia_backend/internals/logger"
)

// GormLogger routes GORM query logs through zerolog.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	logger.Log.Info().Msgf(msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	logger.Log.Warn().Msgf(msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	logger.Log.Error().Msgf(msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gormLogger.ErrRecordNotFound):
		l.event(logger.Log.Error(), file, elapsed, rows, sql).Err(err).Msg("query failed")
	case elapsed > l.SlowThreshold:
		l.event(logger.Log.Warn(), file, elapsed, rows, sql).Msg("slow query")
	case l.LogLevel >= gormLogger.Info:
		l.event(logger.Log.Debug(), file, elapsed, rows, sql).Msg("query")
	}
}

func (l *GormLogger) event(e *zerolog.Event, file string, elapsed time.Duration, rows int64, sql string) *zerolog.Event {
	return e.Str("caller", file).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql)
}
