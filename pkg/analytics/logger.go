package analytics

import "log/slog"

// gaLogger wraps slog.Logger to automatically prepend "[ga]" to all messages
type gaLogger struct {
	logger *slog.Logger
}

func newGALogger(logger *slog.Logger) *gaLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &gaLogger{logger: logger}
}

func (l *gaLogger) Debug(msg string, args ...any) {
	l.logger.Debug("[ga] "+msg, args...)
}

func (l *gaLogger) Warn(msg string, args ...any) {
	l.logger.Warn("[ga] "+msg, args...)
}

func (l *gaLogger) Error(msg string, args ...any) {
	l.logger.Error("[ga] "+msg, args...)
}
