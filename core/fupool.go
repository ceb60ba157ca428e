package core

import "github.com/sarchlab/tomasulo-sim/trace"

// fuPool is a functional-unit pool: a bag of FU slots, each occupied for
// the fixed latency of the instruction it holds. An instruction in an FU
// slot also remains in its reservation-station slot until the CDB (or,
// for a store, execute completion) frees both.
type fuPool struct {
	slots []*trace.Instruction
}

func newFUPool(capacity int) *fuPool {
	return &fuPool{slots: make([]*trace.Instruction, capacity)}
}

func (p *fuPool) freeSlot() bool {
	for _, s := range p.slots {
		if s == nil {
			return true
		}
	}
	return false
}

// occupy places instr into the first free slot. It returns false without
// modifying the pool if every slot is busy.
func (p *fuPool) occupy(instr *trace.Instruction) bool {
	for i, s := range p.slots {
		if s == nil {
			p.slots[i] = instr
			instr.SetInFU(true)
			return true
		}
	}
	return false
}

// vacate frees the slot holding instr, if any.
func (p *fuPool) vacate(instr *trace.Instruction) {
	for i, s := range p.slots {
		if s == instr {
			p.slots[i] = nil
			instr.SetInFU(false)
			return
		}
	}
}

func (p *fuPool) occupants() []*trace.Instruction {
	var out []*trace.Instruction
	for _, s := range p.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (p *fuPool) empty() bool {
	return len(p.occupants()) == 0
}
