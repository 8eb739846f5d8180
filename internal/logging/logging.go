package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a configured logrus logger writing to stdout.
func New(appName, env, level string) *logrus.Logger {
	return NewWithWriter(os.Stdout, appName, env, level)
}

// NewWithWriter is like New but writes to w.
// Development environments get human-readable text, everything else JSON.
func NewWithWriter(w io.Writer, appName, env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if env == "development" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.WithFields(logrus.Fields{"app": appName, "env": env, "log_level": level}).Info("logger initialized")

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		if env == "development" {
			lvl = logrus.DebugLevel
		}
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything. Useful as a default collaborator.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
