package vm

// RunBatch executes up to n steps, stopping early only if shouldStop
// returns true before a given step. It returns the number of steps actually
// executed. This is the host-facing counterpart to the spec's "configured
// number of steps per frame": the core has no concept of a frame or of
// yielding, it just executes a bounded batch and gives control back (spec
// §4.8, §5).
func (i *Instance) RunBatch(n int, shouldStop func() bool) int {
	for k := 0; k < n; k++ {
		if shouldStop != nil && shouldStop() {
			return k
		}
		i.Step()
	}
	return n
}
