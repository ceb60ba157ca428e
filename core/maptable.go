package core

import "github.com/sarchlab/tomasulo-sim/trace"

// mapTable is the register-renaming map: architectural register number
// to its current producer, or nil if the architectural value is live.
// Register trace.NoReg is conventionally never tracked. Entries are
// never explicitly cleared on broadcast; a later dispatch simply
// overwrites the producer, and once a consumer's Q reference is cleared
// by the CDB, the map-table entry is never consulted again on that
// producer's behalf (spec §9, "re-architecture guidance").
type mapTable struct {
	producers []*trace.Instruction
}

func newMapTable(numRegisters int) *mapTable {
	return &mapTable{producers: make([]*trace.Instruction, numRegisters)}
}

// producerOf returns the current producer of register r, or nil if the
// architectural value is live or r is the untracked register.
func (m *mapTable) producerOf(r int) *trace.Instruction {
	if r == trace.NoReg || r < 0 || r >= len(m.producers) {
		return nil
	}
	return m.producers[r]
}

// rename records instr as the current producer of every register in its
// ROut, skipping trace.NoReg.
func (m *mapTable) rename(instr *trace.Instruction) {
	for _, r := range instr.ROut {
		if r != trace.NoReg {
			m.producers[r] = instr
		}
	}
}
