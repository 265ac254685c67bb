package core

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.InfoLevel,
		Prefix:          "room-renderer",
	})
}

// SetLogLevel adjusts verbosity. Unknown names fall back to info.
func SetLogLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
}

func LogDebug(msg interface{}, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

func LogInfo(msg interface{}, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

func LogWarn(msg interface{}, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

func LogError(msg interface{}, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

func LogFatal(msg interface{}, keyvals ...interface{}) {
	logger.Fatal(msg, keyvals...)
}
