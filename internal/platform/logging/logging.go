package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Option func(*logrus.Logger)

func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

func WithLevel(level string) Option {
	return func(l *logrus.Logger) {
		parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			parsed = logrus.InfoLevel
		}
		l.SetLevel(parsed)
	}
}

// WithFormat selects "json" or the default text formatter.
func WithFormat(format string) Option {
	return func(l *logrus.Logger) {
		if strings.EqualFold(format, "json") {
			l.SetFormatter(&logrus.JSONFormatter{})
			return
		}
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func New(opts ...Option) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}

// Component returns an entry tagged for one module.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithField("component", name)
}

func Discard() *logrus.Logger {
	return New(WithOutput(io.Discard))
}
