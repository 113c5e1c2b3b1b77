package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm's SQL logging through zap.
type GormLogger struct {
	log   *zap.Logger
	level gormLogger.LogLevel
}

func NewGormLogger(log *zap.Logger, level gormLogger.LogLevel) *GormLogger {
	return &GormLogger{log: log.Named("gorm"), level: level}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}

	switch {
	// Missing rows and constraint hits are reported to callers as domain errors
	case err != nil && l.level >= gormLogger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) &&
		!errors.Is(err, gorm.ErrDuplicatedKey) &&
		!errors.Is(err, gorm.ErrForeignKeyViolated):
		metrics.DBOperationErrors.WithLabelValues("query").Inc()
		l.log.Error("Query failed", append(fields, zap.Error(err))...)
	case elapsed > slowQueryThreshold && l.level >= gormLogger.Warn:
		metrics.DBOperationErrors.WithLabelValues("slow").Inc()
		l.log.Warn("Slow query", fields...)
	case l.level >= gormLogger.Info:
		l.log.Debug("Query executed", fields...)
	}
}
