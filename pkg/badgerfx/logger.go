package badgerfx

import (
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger adapts zap to badger.Logger. Badger is chatty at info level, so
// info messages are demoted to debug.
type zapLogger struct {
	logger *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		logger: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.logger.Debugf(format, a...)
}

func (l *zapLogger) Infof(format string, a ...any) {
	l.logger.Debugf(format, a...)
}

func (l *zapLogger) Warningf(format string, a ...any) {
	l.logger.Warnf(format, a...)
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.logger.Errorf(format, a...)
}

var _ badger.Logger = (*zapLogger)(nil)
