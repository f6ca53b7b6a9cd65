package main

import "os"

// watchShutdownKey blocks on a single byte from stdin and closes stop once
// one arrives, the keypress-as-shutdown-signal spec.md §5 calls the host's
// responsibility ("the host breaks out of the batching loop on an external
// signal"). Call it only after stdin has been put into raw mode: in
// canonical mode this would block until a full line is entered instead.
func watchShutdownKey(stop chan struct{}) {
	buf := make([]byte, 1)
	os.Stdin.Read(buf)
	close(stop)
}

// setupIO attempts to switch the controlling terminal to raw mode so a
// single keypress can be polled without waiting for a newline. It returns
// whether raw mode was actually enabled and a function to restore the
// terminal's prior settings; ok is false (and tearDown nil) on any platform
// or environment where raw mode isn't available, in which case the host
// loop simply runs without a shutdown keypress.
func setupIO(noRawIO bool) (ok bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}
