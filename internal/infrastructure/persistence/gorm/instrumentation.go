package gorm

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// QueryRecorder receives one observation per executed statement
type QueryRecorder interface {
	DBQuery(operation, table string, duration time.Duration, err error)
}

const startKey = "culinaryos:query_start"

// QueryMonitor is a GORM plugin that times every statement and logs slow ones
type QueryMonitor struct {
	recorder      QueryRecorder
	logger        *zap.Logger
	slowThreshold time.Duration
}

// NewQueryMonitor creates a query monitor. recorder may be nil.
func NewQueryMonitor(recorder QueryRecorder, log *zap.Logger, slowThreshold time.Duration) *QueryMonitor {
	return &QueryMonitor{
		recorder:      recorder,
		logger:        log.Named("query-monitor"),
		slowThreshold: slowThreshold,
	}
}

// Name implements gorm.Plugin
func (qm *QueryMonitor) Name() string {
	return "culinaryos:query_monitor"
}

// Initialize implements gorm.Plugin by wrapping every callback chain
func (qm *QueryMonitor) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		op := h.op
		if err := h.before("monitor:before_"+op, qm.before); err != nil {
			return err
		}
		if err := h.after("monitor:after_"+op, func(tx *gorm.DB) { qm.after(op, tx) }); err != nil {
			return err
		}
	}
	return nil
}

func (qm *QueryMonitor) before(tx *gorm.DB) {
	tx.InstanceSet(startKey, time.Now())
}

func (qm *QueryMonitor) after(op string, tx *gorm.DB) {
	v, ok := tx.InstanceGet(startKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}

	duration := time.Since(start)
	table := "unknown"
	if tx.Statement != nil && tx.Statement.Table != "" {
		table = tx.Statement.Table
	}

	var err error
	if tx.Error != nil && tx.Error != gorm.ErrRecordNotFound {
		err = tx.Error
	}

	if qm.recorder != nil {
		qm.recorder.DBQuery(op, table, duration, err)
	}

	if qm.slowThreshold > 0 && duration > qm.slowThreshold {
		qm.logger.Warn("Slow query detected",
			zap.String("operation", op),
			zap.String("table", table),
			zap.Duration("duration", duration),
			zap.String("sql", tx.Statement.SQL.String()),
		)
	}
}

// GORMLogWriter routes GORM's logger output to zap
type GORMLogWriter struct {
	logger *zap.Logger
}

// Printf implements the logger.Writer interface
func (w *GORMLogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	switch {
	case strings.Contains(msg, "SLOW SQL"):
		w.logger.Warn("GORM slow query", zap.String("message", msg))
	case strings.Contains(msg, "ERROR") || strings.Contains(msg, "Error"):
		w.logger.Error("GORM error", zap.String("message", msg))
	default:
		w.logger.Debug("GORM log", zap.String("message", msg))
	}
}

// NewLogger builds a GORM logger that writes through zap at the given level name
func NewLogger(log *zap.Logger, level string, slowThreshold time.Duration) logger.Interface {
	return logger.New(
		&GORMLogWriter{logger: log.Named("gorm")},
		logger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  ParseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// ParseLogLevel maps a config level name to a GORM log level
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug", "info":
		return logger.Info
	case "warn", "warning":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// AutoMigrate creates or updates the schema for every model
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
