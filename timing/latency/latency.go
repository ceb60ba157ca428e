// Package latency provides the functional-unit latency lookup the engine
// consults when it charges execute time. Latencies are configurable via
// TimingConfig so a trace can be replayed under a different functional-unit
// timing without touching the core package.
package latency

import "github.com/sarchlab/tomasulo-sim/trace"

// Table maps a trace instruction to the latency its functional unit
// charges it.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with the default timing values.
func NewTable() *Table {
	return &Table{config: DefaultTimingConfig()}
}

// NewTableWithConfig creates a new latency table with a custom timing
// configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{config: config}
}

// GetLatency returns the number of cycles inst occupies its functional
// unit, once issued. Branches and traps never reach a functional unit and
// report zero.
func (t *Table) GetLatency(inst *trace.Instruction) uint64 {
	if inst == nil {
		return 0
	}

	switch {
	case inst.UsesFPFU():
		return t.config.FPLatency
	case inst.UsesIntFU():
		return t.config.IntLatency
	default:
		return 0
	}
}

// IsMemoryOp reports whether inst is a load or a store.
func (t *Table) IsMemoryOp(inst *trace.Instruction) bool {
	return inst != nil && (inst.Op.IsLoad() || inst.Op.IsStore())
}

// IsLoadOp reports whether inst is a load.
func (t *Table) IsLoadOp(inst *trace.Instruction) bool {
	return inst != nil && inst.Op.IsLoad()
}

// IsStoreOp reports whether inst is a store: it completes execution
// silently, with no CDB broadcast.
func (t *Table) IsStoreOp(inst *trace.Instruction) bool {
	return inst != nil && inst.Op.IsStore()
}

// IsBranchOp reports whether inst is a branch: it never occupies a
// reservation station or a functional unit.
func (t *Table) IsBranchOp(inst *trace.Instruction) bool {
	return inst != nil && inst.IsBranch()
}

// IsFPOp reports whether inst is a floating-point-class instruction,
// i.e. one the FP functional-unit pool (rather than the integer pool)
// executes.
func (t *Table) IsFPOp(inst *trace.Instruction) bool {
	return inst != nil && inst.Op.IsFPCompute()
}

// Config returns the timing configuration backing this table.
func (t *Table) Config() *TimingConfig {
	return t.config
}
