// Package log sets up leveled logging for e6dl on top of apex/log.
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init installs the handler and picks a log level. The level argument
// wins; when empty, the E6DL_LOG environment variable is consulted and
// the default is "info".
func Init(level string) {
	if level == "" {
		level = os.Getenv("E6DL_LOG")
	}

	var apexLevel log.Level
	switch strings.ToLower(level) {
	case "debug":
		apexLevel = log.DebugLevel
	case "", "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	default:
		apexLevel = log.InfoLevel
	}

	log.SetHandler(&handler{})
	log.SetLevel(apexLevel)
}

// handler writes one timestamped line per entry to stderr, keeping
// stdout free for the program's own output.
type handler struct{}

// HandleLog implements the log.Handler interface.
func (h *handler) HandleLog(e *log.Entry) error {
	level := "?"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.InfoLevel:
		level = "I"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(os.Stderr, "%s %s %s\n", timestamp, level, e.Message)
	return nil
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
