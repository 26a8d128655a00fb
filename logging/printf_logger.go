package logging

import "fmt"

type printfLogger struct {
	printf func(msg string, args ...interface{})
}

func (l *printfLogger) Debugf(msg string, args ...interface{}) { l.printf(msg, args...) }
func (l *printfLogger) Infof(msg string, args ...interface{})  { l.printf(msg, args...) }
func (l *printfLogger) Warnf(msg string, args ...interface{})  { l.printf(msg, args...) }
func (l *printfLogger) Errorf(msg string, args ...interface{}) { l.printf(msg, args...) }

func (l *printfLogger) Debugw(msg string, keyValuePairs ...interface{}) {
	l.printf("%v%v", msg, fmt.Sprintln(keyValuePairs...))
}

var _ Logger = (*printfLogger)(nil)

// Printf returns a Logger that uses the given printf-style function to print
// log output.
func Printf(printf func(msg string, args ...interface{})) Logger {
	return &printfLogger{printf}
}
