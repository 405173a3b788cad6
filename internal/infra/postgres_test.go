package infra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
)

func TestGormLogger_WritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{App: config.AppConfig{Env: "production"}}

	l := newGormLogger(cfg, zap.New(core))
	l.Error(context.Background(), "connection reset")
	l.Info(context.Background(), "only in development")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "connection reset", entries[0].Message)
		assert.Equal(t, "gorm", entries[0].LoggerName)
	}
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{App: config.AppConfig{Env: "development"}}

	l := newGormLogger(cfg, zap.New(core))
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	for _, e := range logs.All() {
		assert.NotEqual(t, zapcore.ErrorLevel, e.Level)
	}
}
