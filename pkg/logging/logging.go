package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface accepted by the platform packages. Both
// *logrus.Logger and *logrus.Entry satisfy it.
type Logger interface {
	logrus.FieldLogger
	Writer() *io.PipeWriter
}

// New creates a text logger writing to out at the named level.
func New(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
