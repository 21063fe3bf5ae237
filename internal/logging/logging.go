// Package logging builds the game's logr logger.
//
// The terminal belongs to the UI while the game runs, so log output goes to
// a file (or nowhere) rather than stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to path at the given verbosity, plus a closer
// for the sink. An empty path discards all output.
func New(path string, verbosity int) (logr.Logger, io.Closer, error) {
	var sink io.WriteCloser = nopCloser{io.Discard}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return logr.Discard(), nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		sink = f
	}

	return NewWithWriter(sink, verbosity), sink, nil
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(
		log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		stdr.Options{LogCaller: stdr.Error},
	).WithName("mazerun")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
