package core

import "github.com/sarchlab/tomasulo-sim/trace"

// instrQueue is the in-order Instruction Fetch Queue: a bounded FIFO
// between fetch and dispatch. Slots beyond the logical occupancy are
// always nil; relative program order is preserved by shifting on pop,
// mirroring the reference implementation's array-shift queue.
type instrQueue struct {
	slots []*trace.Instruction
}

func newInstrQueue(capacity int) *instrQueue {
	return &instrQueue{slots: make([]*trace.Instruction, capacity)}
}

func (q *instrQueue) empty() bool {
	return q.slots[0] == nil
}

func (q *instrQueue) full() bool {
	return q.slots[len(q.slots)-1] != nil
}

func (q *instrQueue) head() *trace.Instruction {
	return q.slots[0]
}

// push appends instr to the tail. It returns false without modifying the
// queue if the queue is full.
func (q *instrQueue) push(instr *trace.Instruction) bool {
	for i, s := range q.slots {
		if s == nil {
			q.slots[i] = instr
			return true
		}
	}
	return false
}

// popHead removes and returns the head of the queue, shifting every
// later entry down by one slot.
func (q *instrQueue) popHead() *trace.Instruction {
	instr := q.slots[0]
	copy(q.slots, q.slots[1:])
	q.slots[len(q.slots)-1] = nil
	return instr
}
