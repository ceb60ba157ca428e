package core

import "github.com/sarchlab/tomasulo-sim/trace"

// rsPool is a reservation-station pool: an unordered bag of fixed
// capacity, each slot holding at most one instruction from dispatch
// through its CDB broadcast (or, for a store, through execute
// completion). Ties among occupants are always broken by program-order
// index, never by slot position.
type rsPool struct {
	slots []*trace.Instruction
}

func newRSPool(capacity int) *rsPool {
	return &rsPool{slots: make([]*trace.Instruction, capacity)}
}

// add places instr into the first free slot. It returns false without
// modifying the pool if every slot is occupied.
func (p *rsPool) add(instr *trace.Instruction) bool {
	for i, s := range p.slots {
		if s == nil {
			p.slots[i] = instr
			return true
		}
	}
	return false
}

// remove frees the slot holding instr, if any.
func (p *rsPool) remove(instr *trace.Instruction) {
	for i, s := range p.slots {
		if s == instr {
			p.slots[i] = nil
			return
		}
	}
}

// occupants returns every instruction currently held by the pool, in
// slot order. Slot order carries no program-order meaning; callers that
// need oldest-first selection must sort or scan explicitly.
func (p *rsPool) occupants() []*trace.Instruction {
	var out []*trace.Instruction
	for _, s := range p.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
