package twist

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// RequestLogger receives one debug line per API call and a warning for every
// failed call. The same value is installed as resty's logger, so its method
// set matches resty.Logger. Supply your own with [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger discards everything. A client built without
// [WithRequestLogger] uses it.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// HCLogger adapts an [hclog.Logger] to [RequestLogger].
type HCLogger struct {
	logger hclog.Logger
}

// NewHCLogger wraps logger. A nil logger falls back to hclog's default logger.
func NewHCLogger(logger hclog.Logger) *HCLogger {
	if logger == nil {
		logger = hclog.Default()
	}

	return &HCLogger{logger: logger.Named("twist")}
}

func (l *HCLogger) Errorf(format string, v ...any) { l.logger.Error(fmt.Sprintf(format, v...)) }
func (l *HCLogger) Warnf(format string, v ...any)  { l.logger.Warn(fmt.Sprintf(format, v...)) }
func (l *HCLogger) Debugf(format string, v ...any) { l.logger.Debug(fmt.Sprintf(format, v...)) }
