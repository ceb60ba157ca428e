package trace

// Trace is an ordered, 1-indexed sequence of decoded instructions.
// Index 0 is reserved and never populated; program order starts at 1.
type Trace struct {
	insns []*Instruction
}

// New builds a Trace from instructions already in program order. Each
// instruction's Index is assigned 1..len(insns) regardless of any value
// already set.
func New(insns []*Instruction) *Trace {
	for i, instr := range insns {
		instr.Index = i + 1
	}
	return &Trace{insns: insns}
}

// Get returns the decoded instruction at 1-based program-order position
// i, or nil if i is out of range. Position 0 is reserved and always
// returns nil.
func (t *Trace) Get(i int) *Instruction {
	if i < 1 || i > len(t.insns) {
		return nil
	}
	return t.insns[i-1]
}

// NumInsn returns the total instruction count in the trace.
func (t *Trace) NumInsn() int {
	return len(t.insns)
}
