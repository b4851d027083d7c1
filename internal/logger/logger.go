package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/vimquiz/internal/config"
)

// New builds a zap logger for the configured environment.
// Production uses JSON output; everything else uses the development console encoder.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", cfg.Log.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		zc.OutputPaths = []string{cfg.Log.File}
		zc.ErrorOutputPaths = []string{cfg.Log.File}
	}

	return zc.Build()
}

// DefaultFile returns the log file used while the terminal UI owns the screen:
// $XDG_STATE_HOME/vimquiz/vimquiz.log, falling back to ~/.local/state.
func DefaultFile() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "vimquiz", "vimquiz.log"), nil
}
