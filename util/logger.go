package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(LogLevelInfo.logrusLevel())
	return l
}

func SetLevel(level LogLevel) {
	logger.SetLevel(level.logrusLevel())
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// WithFields returns an entry that attaches the given fields to every line.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return logger.WithFields(logrus.Fields(fields))
}

func Debug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func Info(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func Warn(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

func Error(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	logger.Fatalf(format, v...)
}
