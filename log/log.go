// Package log writes diagnostics to a daily file through logrus, when logging is enabled.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled is false until Setup finds logs.write set; every emission is dropped while false.
var enabled bool

// Setup opens today's log file and applies the configured formatter and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Enabled reports whether emissions reach the log file.
func Enabled() bool {
	return enabled
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}

// WithFields logs a structured info line, e.g. one per served request.
func WithFields(fields map[string]any, msg string) {
	if enabled {
		logrus.WithFields(fields).Info(msg)
	}
}
