package vm

// DefaultRAMCells is the cell count of an address space covering the
// 2^22-bit addressable range (spec §4.8), plus two cells so that a field
// starting near the top of the range (including the branch field read at
// ip+52) can straddle past it without leaving the slice.
const DefaultRAMCells = (1<<RAMBits)/64 + 2

// Option configures an Instance at construction time.
type Option func(*Instance) error

// InitialIP sets the instruction pointer an Instance starts execution from.
// The default is 0.
func InitialIP(ip int) Option {
	return func(i *Instance) error { i.IP = ip; return nil }
}

// Instance is one running subleq machine: its memory and instruction
// pointer, plus an instruction counter for host-side reporting.
type Instance struct {
	Mem      Memory
	IP       int
	insCount int64
}

// New creates an Instance over mem, applying opts in order.
func New(mem Memory, opts ...Option) (*Instance, error) {
	i := &Instance{Mem: mem}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// InstructionCount returns the number of Step calls executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Step executes exactly one instruction and advances i.IP.
func (i *Instance) Step() {
	i.IP = Step(i.Mem, i.IP)
	i.insCount++
}
