// Package log provides a structured logging facade over logrus with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/filesystem"
	"github.com/anipeek/anipeek/key"
	"github.com/anipeek/anipeek/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem from the global configuration.
// When logs.write is off every emission below is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	out, err := output(dir)
	if err != nil {
		return err
	}
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// output opens either a size-rotated file or the file for the current day.
func output(dir string) (io.Writer, error) {
	if viper.GetBool(key.LogsRotate) {
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, constant.Anipeek+".log"),
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
		}, nil
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Enabled reports whether Setup turned logging on.
func Enabled() bool {
	return enabled
}

// WithField returns an entry carrying one structured field, or a discarding entry when logging is off.
func WithField(k string, v any) *logrus.Entry {
	if !enabled {
		return discard.WithField(k, v)
	}
	return logrus.WithField(k, v)
}

// WithFields is the multi-field variant of WithField.
func WithFields(fields logrus.Fields) *logrus.Entry {
	if !enabled {
		return discard.WithFields(fields)
	}
	return logrus.WithFields(fields)
}

var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
