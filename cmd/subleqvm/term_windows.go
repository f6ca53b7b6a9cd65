package main

import "github.com/pkg/errors"

// setRawIO: raw terminal IO is not implemented on Windows, matching the
// teacher's cmd/retro/term_windows.go; the host loop runs without a
// keypress-driven shutdown signal on this platform.
func setRawIO() (func(), error) {
	return nil, errors.New("raw IO not supported")
}
