package core

import (
	"github.com/sarchlab/tomasulo-sim/timing/latency"
	"github.com/sarchlab/tomasulo-sim/trace"
)

// assert panics if cond is false. The core has no user-visible error
// channel (spec §7): every fault here is a structural invariant
// violation, i.e. a simulator bug, not a reportable runtime condition.
func assert(cond bool, msg string) {
	if !cond {
		panic("tomasulo: " + msg)
	}
}

// readyCandidates returns every instruction in occupants eligible to
// move from issue to execute this cycle: issued strictly before this
// cycle, not already occupying a functional unit, and with every input
// it depends on already broadcast.
func readyCandidates(occupants []*trace.Instruction, cycle int) []*trace.Instruction {
	var out []*trace.Instruction
	for _, instr := range occupants {
		if instr.IssueCycle == 0 || instr.IssueCycle >= cycle {
			continue
		}
		if instr.InFU() {
			continue
		}
		if !instr.Ready() {
			continue
		}
		out = append(out, instr)
	}
	return out
}

// oldestOf returns the instruction with the smallest program-order index
// among candidates, or nil if candidates is empty. This is the tie-break
// used for both functional-unit assignment and CDB arbitration.
func oldestOf(candidates []*trace.Instruction) *trace.Instruction {
	var oldest *trace.Instruction
	for _, instr := range candidates {
		if oldest == nil || instr.Index < oldest.Index {
			oldest = instr
		}
	}
	return oldest
}

// completedNonStores returns every instruction in occupants whose FU
// occupancy has reached its latency-table latency as of cycle and that
// will broadcast on the CDB (i.e. is not a store).
func completedNonStores(occupants []*trace.Instruction, cycle int, table *latency.Table) []*trace.Instruction {
	var out []*trace.Instruction
	for _, instr := range occupants {
		if table.IsStoreOp(instr) {
			continue
		}
		if cycleGap(cycle, instr.ExecuteCycle) >= table.GetLatency(instr) {
			out = append(out, instr)
		}
	}
	return out
}

// cycleGap returns the number of cycles an instruction has occupied its
// FU as of cycle, given it began execution at executeCycle.
func cycleGap(cycle, executeCycle int) uint64 {
	return uint64(cycle - executeCycle)
}
