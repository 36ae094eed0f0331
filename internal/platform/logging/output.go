package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

// nopCloser keeps Close from closing a process-wide stream such as stderr.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Open returns the writer logs should go to. A path is created (with parent
// directories) and appended to. An empty path selects stderr, unless stderr
// is a terminal: the UI owns it, so logs are discarded instead.
// The caller must Close the returned writer.
func Open(path string) (io.WriteCloser, error) {
	if path == "" {
		return stderrOutput(term.IsTerminal(int(os.Stderr.Fd()))), nil //nolint:gosec // fd fits in int
	}

	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, nil
}

func stderrOutput(isTerminal bool) io.WriteCloser {
	if isTerminal {
		return nopCloser{io.Discard}
	}
	return nopCloser{os.Stderr}
}
