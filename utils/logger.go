package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger provides leveled logging throughout the application. Output goes to
// stderr so log lines never interleave with the interactive prompts on stdout.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a Logger writing to stderr at info level.
func NewLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{log: l}
}

// SetLevel parses a level name (debug, info, warn, error...) and applies it.
// If the level string is not valid an error is returned and the level is kept.
func (l *Logger) SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.log.SetLevel(parsed)
	return nil
}

func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

func (l *Logger) Info(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log.Debugf(format, args...)
}
