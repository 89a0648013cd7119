// Package log is the operator-visible channel for failures that are
// reported rather than raised (sidecar writes, settings writes). It writes
// through logrus to a dated file under the XDG state directory; until Setup
// runs, output is discarded so the terminal UI is never polluted.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

const appName = "bop"

var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	return l
}()

// Setup directs log output to a dated file under the state directory.
func Setup() error {
	dir := filepath.Join(xdg.StateHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.InfoLevel)
	return nil
}

// SetOutput redirects log output; used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}
