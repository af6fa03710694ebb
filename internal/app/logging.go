package app

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// newLogger builds the application logger. Output goes to a file when one is
// configured and is discarded otherwise: the terminal belongs to the TUI and
// must stay clean.
func newLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)

	if strings.TrimSpace(path) == "" {
		return log
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log
	}
	log.SetOutput(file)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
