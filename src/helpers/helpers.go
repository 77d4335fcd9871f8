// Package helpers contains few helper functions which are used throughout the
// project.
package helpers

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ProjectUserPath returns the directory in which the user's configuration
// and data are kept by default.
func ProjectUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ArtrepoDir), nil
}

// AbsolutePath returns `path` if it is absolute. Otherwise it is considered
// relative to `root`.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// OpenLogFile opens `logFilePath` in `fs` for appending, creating it together
// with its directory when missing.
func OpenLogFile(fs afero.Fs, logFilePath string) (afero.File, error) {
	if err := fs.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := fs.OpenFile(
		logFilePath,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return logFile, nil
}

// SetLogsFile sets the output of the standard "log" package to the file
// `logFilePath`.
func SetLogsFile(fs afero.Fs, logFilePath string) error {
	logFile, err := OpenLogFile(fs, logFilePath)
	if err != nil {
		return err
	}

	log.SetOutput(logFile)
	return nil
}

// NewLogger returns the logger of the process. It writes JSON lines to `out`
// and logs at debug level only when `debug` is true. Everything written by
// the standard "log" package ends up in it too.
func NewLogger(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	log.SetFlags(0)
	log.SetOutput(logger)

	return logger
}

// SetUpPidFile writes the PID of the current process in the file `pidFile`.
func SetUpPidFile(fs afero.Fs, pidFile string) error {
	err := afero.WriteFile(fs, pidFile, []byte(fmt.Sprintf("%d", os.Getpid())), 0o644)
	if err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	return nil
}

// RemovePidFile removes the PID file if it is there.
func RemovePidFile(fs afero.Fs, pidFile string) error {
	err := fs.Remove(pidFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing PID file: %w", err)
	}
	return nil
}
