// Package logging provides loggers used throughout the library.
//
// The library is silent by default. Applications that want diagnostic
// output install a process-wide backend using Set. A *zap.SugaredLogger
// satisfies Logger directly.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Logger is used to emit diagnostic messages. It is a subset of
// zap.SugaredLogger.
type Logger interface {
	Debugf(msg string, args ...interface{})
	Debugw(msg string, keyValuePairs ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

//nolint:gochecknoglobals
var backend atomic.Pointer[Logger]

//nolint:gochecknoinits
func init() {
	Set(nil)
}

// Set installs the process-wide logging backend. Passing nil restores the
// default backend, which discards all messages.
func Set(l Logger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}

	backend.Store(&l)
}

// Module returns a logger for the given module name. The returned logger
// resolves the installed backend on each call, so it is safe to capture in
// package-level variables before Set is called.
func Module(module string) Logger {
	return &moduleLogger{prefix: "[" + module + "] "}
}

type moduleLogger struct {
	prefix string
}

func (l *moduleLogger) current() Logger {
	return *backend.Load()
}

func (l *moduleLogger) Debugf(msg string, args ...interface{}) {
	l.current().Debugf(l.prefix+msg, args...)
}

func (l *moduleLogger) Debugw(msg string, keyValuePairs ...interface{}) {
	l.current().Debugw(l.prefix+msg, keyValuePairs...)
}

func (l *moduleLogger) Infof(msg string, args ...interface{}) {
	l.current().Infof(l.prefix+msg, args...)
}

func (l *moduleLogger) Warnf(msg string, args ...interface{}) {
	l.current().Warnf(l.prefix+msg, args...)
}

func (l *moduleLogger) Errorf(msg string, args ...interface{}) {
	l.current().Errorf(l.prefix+msg, args...)
}

var _ Logger = (*moduleLogger)(nil)
