package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StderrHook routes warnings and errors to stderr and everything else to
// the regular output.
type StderrHook struct {
	Out    io.Writer
	Stderr io.Writer
}

func (h *StderrHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *StderrHook) Fire(entry *logrus.Entry) error {
	if entry.Level <= logrus.WarnLevel {
		entry.Logger.Out = h.Stderr
	} else {
		entry.Logger.Out = h.Out
	}
	return nil
}

func SetupLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.AddHook(&StderrHook{Out: os.Stdout, Stderr: os.Stderr})
}

// Configure applies the configured level. In terminal mode stdout carries
// the drawn track, so every entry goes to stderr.
func Configure(level string, stderrOnly bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	logrus.SetLevel(lvl)
	if stderrOnly {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stderr)
	}
	return nil
}
