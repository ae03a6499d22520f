package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a configured application logger.
// It writes to Stderr so Stdout stays free for drawing instructions.
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Parse builds a logger from a level name such as "info" or "debug".
func Parse(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return New(lvl), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
