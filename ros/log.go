package ros

import (
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogger returns the logger nodes use unless WithLogger is given.
func DefaultLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

// NewLogger returns a text logger on stderr at the given level.
func NewLogger(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}
