// Package stats aggregates engine performance counters into a
// human-reportable snapshot. Keeping this accounting here, rather than
// inside the core package, keeps core limited to scheduling decisions:
// nothing in core ever reads a counter back to decide anything.
package stats

// Stats is a point-in-time snapshot of aggregate performance statistics
// for a run.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64

	// Retired is the number of instructions that left the pipeline,
	// either by CDB broadcast or, for stores, by execute completion.
	// Branches and traps never reach an RS and are not counted.
	Retired uint64

	// CPI is Cycles / Retired, zero if nothing has retired yet.
	CPI float64

	// FetchStalls counts cycles in which fetch had a non-trap
	// instruction ready but the IFQ was full.
	FetchStalls uint64

	// DispatchStalls counts cycles in which the IFQ head was ready to
	// dispatch but its reservation-station pool was full.
	DispatchStalls uint64

	// StructuralStalls counts cycles in which a ready instruction
	// could not be assigned to a functional unit because its pool was
	// fully occupied.
	StructuralStalls uint64
}

// Recorder accumulates the counters behind a Stats snapshot over the
// course of a run. The zero value is ready to use.
type Recorder struct {
	retired          uint64
	fetchStalls      uint64
	dispatchStalls   uint64
	structuralStalls uint64
}

// FetchStall records one cycle in which fetch was blocked by a full IFQ.
func (r *Recorder) FetchStall() { r.fetchStalls++ }

// DispatchStall records one cycle in which dispatch was blocked by a
// full reservation-station pool.
func (r *Recorder) DispatchStall() { r.dispatchStalls++ }

// StructuralStall records one cycle in which a ready instruction found
// no free functional unit.
func (r *Recorder) StructuralStall() { r.structuralStalls++ }

// Retire records one instruction leaving the pipeline.
func (r *Recorder) Retire() { r.retired++ }

// Snapshot returns a Stats value reflecting the counters recorded so
// far, against the given cycle count.
func (r *Recorder) Snapshot(cycles uint64) Stats {
	s := Stats{
		Cycles:           cycles,
		Retired:          r.retired,
		FetchStalls:      r.fetchStalls,
		DispatchStalls:   r.dispatchStalls,
		StructuralStalls: r.structuralStalls,
	}
	if s.Retired > 0 {
		s.CPI = float64(s.Cycles) / float64(s.Retired)
	}
	return s
}
