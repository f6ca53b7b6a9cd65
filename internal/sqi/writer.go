// Package sqi holds small internal helpers shared by the asm and vm packages.
package sqi

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors. Write will keep returning
// the last error over and over.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}
