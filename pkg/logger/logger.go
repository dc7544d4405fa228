package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	ServiceName string
	Development bool
}

var (
	mu     sync.RWMutex
	global *zap.SugaredLogger = zap.NewNop().Sugar()
)

// Init builds the global logger from config. Safe to call once at startup.
func Init(cfg *Config) error {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(normalizeLevel(cfg.Level))); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	base, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	if cfg.ServiceName != "" {
		base = base.With(zap.String("service", cfg.ServiceName))
	}

	mu.Lock()
	global = base.Sugar()
	mu.Unlock()
	return nil
}

// Get returns the global logger. Before Init it is a no-op logger, so
// library code can log unconditionally.
func Get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Sync flushes buffered log entries
func Sync() error {
	return Get().Sync()
}

// Environment names double as levels in config files; map the common
// ones onto zap levels.
func normalizeLevel(s string) string {
	switch s {
	case "development", "local":
		return "debug"
	case "production", "staging":
		return "info"
	}
	return s
}
