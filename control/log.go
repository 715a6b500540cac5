// control/log.go
// Author: momentics <momentics@gmail.com>
//
// Process logger and the observer that writes pool events to it.

package control

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-pool/api"
)

// LogLevelEnv selects the default logger level.
const LogLevelEnv = "HIOLOAD_POOL_LOGLEVEL"

var (
	logOnce sync.Once
	logger  = logrus.New()
)

// Logger returns the process-wide logger. Its level is read once from
// LogLevelEnv and can be changed later through SetLogLevel.
func Logger() *logrus.Logger {
	logOnce.Do(func() {
		logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
		logger.Level = parseLevel(os.Getenv(LogLevelEnv))
	})
	return logger
}

// SetLogLevel applies a textual level (debug, info, warn, error) to Logger.
func SetLogLevel(level string) {
	Logger().SetLevel(parseLevel(level))
}

func parseLevel(s string) logrus.Level {
	switch strings.ToLower(s) {
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// LogObserver writes every pool event to a logrus logger at debug level.
type LogObserver struct {
	log logrus.FieldLogger
}

// NewLogObserver binds an observer to log. A nil log selects Logger().
func NewLogObserver(log logrus.FieldLogger) *LogObserver {
	if log == nil {
		log = Logger()
	}
	return &LogObserver{log: log}
}

// ForPool returns an observer that tags entries with the pool name.
func (o *LogObserver) ForPool(name string) api.Observer {
	return &LogObserver{log: o.log.WithField("pool", name)}
}

func (o *LogObserver) OnAlloc(bytes uintptr) {
	o.log.WithField("bytes", bytes).Debug("pool storage allocated")
}

func (o *LogObserver) OnFree(bytes uintptr) {
	o.log.WithField("bytes", bytes).Debug("pool storage freed")
}

func (o *LogObserver) OnRequest(slot api.Handle) {
	o.log.WithFields(logrus.Fields{
		"slot":       slot.Index,
		"generation": slot.Generation,
	}).Debug("object requested")
}

func (o *LogObserver) OnRelease(slot api.Handle) {
	o.log.WithFields(logrus.Fields{
		"slot":       slot.Index,
		"generation": slot.Generation,
	}).Debug("object released")
}

var _ api.Observer = (*LogObserver)(nil)
