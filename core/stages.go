package core

import "github.com/sarchlab/tomasulo-sim/trace"

// fetch grabs the next non-trap instruction from the trace and pushes it
// onto the tail of the IFQ, at most one per cycle. Traps are skipped by
// advancing the fetch cursor without ever entering the pipeline.
func (e *Engine) fetch() {
	for e.fetchCursor <= e.tr.NumInsn() {
		instr := e.tr.Get(e.fetchCursor)
		if !instr.IsTrap() {
			break
		}
		e.fetchCursor++
	}

	if e.fetchCursor > e.tr.NumInsn() {
		return
	}

	if e.ifq.full() {
		e.counters.FetchStall()
		return
	}

	instr := e.tr.Get(e.fetchCursor)
	instr.FetchCycle = e.cycle
	assert(e.ifq.push(instr), "fetch: push into non-full IFQ failed")
	e.history = append(e.history, instr)
	e.fetchCursor++
}

// fetchToDispatch runs fetch, then attempts to move the IFQ head into
// dispatch: a branch is popped and dropped immediately with no RS; an
// integer or floating-point instruction is placed into the matching
// reservation-station pool if one has a free slot, otherwise the head
// stalls at the IFQ for a later cycle.
func (e *Engine) fetchToDispatch() {
	e.fetch()

	if e.ifq.empty() {
		return
	}

	head := e.ifq.head()

	if e.table.IsBranchOp(head) {
		head.DispatchCycle = e.cycle
		e.ifq.popHead()
		return
	}

	switch {
	case e.table.IsFPOp(head):
		e.dispatchInto(head, e.rsFP)
	case head.UsesIntFU():
		e.dispatchInto(head, e.rsInt)
	}
}

// dispatchInto attempts to place instr into pool. On success, it
// snapshots each used input's current producer from the map table
// before renaming the map table against instr's own outputs, so a
// self-referential instruction never renames against itself.
func (e *Engine) dispatchInto(instr *trace.Instruction, pool *rsPool) {
	if !pool.add(instr) {
		e.counters.DispatchStall()
		return
	}

	e.ifq.popHead()

	for i, r := range instr.RIn {
		instr.Q[i] = e.regs.producerOf(r)
	}
	e.regs.rename(instr)

	instr.DispatchCycle = e.cycle
}

// dispatchToIssue promotes every reservation-station occupant that was
// dispatched strictly before this cycle and has not yet issued. There is
// no limit on how many entries may issue in the same cycle; issue is a
// timestamp wavefront, not a resource grant.
func (e *Engine) dispatchToIssue() {
	e.issueReady(e.rsInt)
	e.issueReady(e.rsFP)
}

func (e *Engine) issueReady(pool *rsPool) {
	for _, instr := range pool.occupants() {
		if instr.IssueCycle == 0 && instr.DispatchCycle != 0 && instr.DispatchCycle < e.cycle {
			instr.IssueCycle = e.cycle
		}
	}
}

// issueToExecute assigns ready, issued instructions to free functional
// units, oldest program-order index first, one pool at a time. A cycle in
// which either pool is left with a ready candidate counts as one
// structural stall.
func (e *Engine) issueToExecute() {
	intStalled := e.assignToFU(e.rsInt, e.fuInt)
	fpStalled := e.assignToFU(e.rsFP, e.fuFP)
	if intStalled || fpStalled {
		e.counters.StructuralStall()
	}
}

// assignToFU repeatedly picks the oldest ready candidate in rs that is
// not already occupying an FU slot and places it into a free fu slot,
// until fu has no free slot left or no candidate remains. An instruction
// only becomes a candidate once its own issue is at least a cycle old,
// the same no-same-cycle-hand-off rule dispatch→issue enforces. It
// reports whether a ready candidate was left without a free slot.
func (e *Engine) assignToFU(rs *rsPool, fu *fuPool) bool {
	for fu.freeSlot() {
		candidate := oldestOf(readyCandidates(rs.occupants(), e.cycle))
		if candidate == nil {
			return false
		}

		assert(fu.occupy(candidate), "issueToExecute: occupy of a reported-free FU slot failed")
		candidate.ExecuteCycle = e.cycle
	}

	return len(readyCandidates(rs.occupants(), e.cycle)) > 0
}

// executeToCDB retires completed stores silently, then selects at most
// one completed non-store instruction across both FU pools to broadcast
// this cycle: the one with the smallest program-order index among every
// instruction whose FU occupancy has reached its fixed latency.
func (e *Engine) executeToCDB() {
	e.retireDoneStores(e.rsInt, e.fuInt)
	e.retireDoneStores(e.rsFP, e.fuFP)

	var candidates []*trace.Instruction
	candidates = append(candidates, completedNonStores(e.fuInt.occupants(), e.cycle, e.table)...)
	candidates = append(candidates, completedNonStores(e.fuFP.occupants(), e.cycle, e.table)...)

	broadcaster := oldestOf(candidates)
	if broadcaster == nil {
		return
	}

	assert(e.cdb == nil, "executeToCDB: CDB slot already occupied this cycle")

	broadcaster.CDBCycle = e.cycle
	e.cdb = broadcaster

	rsPoolFor(e, broadcaster).remove(broadcaster)
	if broadcaster.UsesIntFU() {
		e.fuInt.vacate(broadcaster)
	} else {
		e.fuFP.vacate(broadcaster)
	}

	e.counters.Retire()
}

// retireDoneStores vacates every store in fu whose occupancy has reached
// its latency-table latency, silently: no CDB broadcast, no winner
// selection, no wake-up.
func (e *Engine) retireDoneStores(rs *rsPool, fu *fuPool) {
	for _, instr := range fu.occupants() {
		if !e.table.IsStoreOp(instr) {
			continue
		}
		if cycleGap(e.cycle, instr.ExecuteCycle) >= e.table.GetLatency(instr) {
			instr.MarkStoreDone()
			fu.vacate(instr)
			rs.remove(instr)
			e.counters.Retire()
		}
	}
}

func rsPoolFor(e *Engine, instr *trace.Instruction) *rsPool {
	if instr.UsesIntFU() {
		return e.rsInt
	}
	return e.rsFP
}

// cdbToRetire wakes every reservation-station entry waiting on the
// instruction that just broadcast, then clears the bus: the value is
// live for every waiter this same cycle and gone by the next.
func (e *Engine) cdbToRetire() {
	if e.cdb == nil {
		return
	}

	clearWaiters(e.rsInt, e.cdb)
	clearWaiters(e.rsFP, e.cdb)

	e.cdb = nil
}

func clearWaiters(pool *rsPool, producer *trace.Instruction) {
	for _, instr := range pool.occupants() {
		for i, q := range instr.Q {
			if q == producer {
				instr.Q[i] = nil
			}
		}
	}
}
