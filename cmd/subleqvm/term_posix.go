//go:build !windows

package main

import (
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// setRawIO switches stdin to raw mode, disabling canonical input and echo so
// a single keypress can be read without waiting for Enter. Adapted from the
// teacher's cmd/retro/term_linux.go; the original input/output port
// wrappers don't apply here, only the raw-mode toggle itself does.
func setRawIO() (func(), error) {
	var tios syscall.Termios
	if err := termios.Tcgetattr(0, &tios); err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	a := tios
	a.Iflag &^= syscall.IGNBRK | syscall.ISTRIP | syscall.IXON | syscall.IXOFF
	a.Iflag |= syscall.BRKINT | syscall.IGNPAR
	a.Lflag &^= syscall.ICANON | syscall.IEXTEN | syscall.ECHO
	a.Cc[syscall.VMIN] = 1
	a.Cc[syscall.VTIME] = 0
	if err := termios.Tcsetattr(0, termios.TCSANOW, &a); err != nil {
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
		return nil, errors.Wrap(err, "Tcsetattr failed")
	}
	return func() {
		termios.Tcsetattr(0, termios.TCSANOW, &tios)
	}, nil
}
