// Package core implements the cycle-accurate Tomasulo dynamic-scheduling
// engine: the interaction between the instruction queue, the reservation
// stations, the functional units, the register map table, and the single
// common data bus. It consumes a pre-decoded trace.Trace and reports the
// total number of cycles required to drain it.
//
// The engine does not execute instruction semantics, model the memory
// hierarchy, or predict/speculate across branches: branches resolve in
// dispatch, and stores complete on execute-done without a CDB broadcast.
package core

import (
	"github.com/sarchlab/tomasulo-sim/stats"
	"github.com/sarchlab/tomasulo-sim/timing/latency"
	"github.com/sarchlab/tomasulo-sim/trace"
)

// Default tunable parameters, matching the reference lab's compile-time
// constants.
const (
	DefaultIFQSize      = 10
	DefaultRSInt        = 4
	DefaultRSFP         = 2
	DefaultFUInt        = 2
	DefaultFUFP         = 1
	DefaultIntLatency   = 4
	DefaultFPLatency    = 9
	DefaultNumRegisters = 32
)

// Engine is the cycle-driven Tomasulo state machine. It is not safe for
// concurrent use: Run must be driven from a single goroutine at a time.
type Engine struct {
	tr          *trace.Trace
	fetchCursor int

	ifq   *instrQueue
	rsInt *rsPool
	rsFP  *rsPool
	fuInt *fuPool
	fuFP  *fuPool
	cdb   *trace.Instruction
	regs  *mapTable

	table *latency.Table

	cycle   int
	history []*trace.Instruction

	counters stats.Recorder
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	ifqSize      int
	rsInt        int
	rsFP         int
	fuInt        int
	fuFP         int
	table        *latency.Table
	numRegisters int
}

func defaultConfig() engineConfig {
	return engineConfig{
		ifqSize:      DefaultIFQSize,
		rsInt:        DefaultRSInt,
		rsFP:         DefaultRSFP,
		fuInt:        DefaultFUInt,
		fuFP:         DefaultFUFP,
		table:        latency.NewTable(),
		numRegisters: DefaultNumRegisters,
	}
}

// WithIFQSize overrides the instruction fetch queue's capacity.
func WithIFQSize(n int) Option {
	return func(c *engineConfig) { c.ifqSize = n }
}

// WithReservationStations overrides the integer and floating-point
// reservation-station pool sizes.
func WithReservationStations(intN, fpN int) Option {
	return func(c *engineConfig) { c.rsInt, c.rsFP = intN, fpN }
}

// WithFunctionalUnits overrides the integer and floating-point
// functional-unit pool sizes.
func WithFunctionalUnits(intN, fpN int) Option {
	return func(c *engineConfig) { c.fuInt, c.fuFP = intN, fpN }
}

// WithLatencies overrides the fixed per-cycle latency of the integer and
// floating-point functional units.
func WithLatencies(intLatency, fpLatency uint64) Option {
	return func(c *engineConfig) {
		c.table = latency.NewTableWithConfig(&latency.TimingConfig{
			IntLatency: intLatency,
			FPLatency:  fpLatency,
		})
	}
}

// WithLatencyTable overrides the engine's functional-unit latency and
// category lookups with a caller-supplied table, e.g. one built from a
// timing configuration file loaded by the CLI.
func WithLatencyTable(t *latency.Table) Option {
	return func(c *engineConfig) { c.table = t }
}

// WithNumRegisters overrides the architectural register file size backing
// the map table.
func WithNumRegisters(n int) Option {
	return func(c *engineConfig) { c.numRegisters = n }
}

// New builds an Engine over tr with the given options applied over the
// spec's default tunables.
func New(tr *trace.Trace, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		tr:          tr,
		fetchCursor: 1,
		ifq:         newInstrQueue(cfg.ifqSize),
		rsInt:       newRSPool(cfg.rsInt),
		rsFP:        newRSPool(cfg.rsFP),
		fuInt:       newFUPool(cfg.fuInt),
		fuFP:        newFUPool(cfg.fuFP),
		regs:        newMapTable(cfg.numRegisters),
		table:       cfg.table,
	}
}

// Run drives the engine to completion and returns the total cycle count.
//
// An empty trace (or one containing only traps) never dispatches
// anything; Run reports it as draining at cycle 1 without running a
// tick. Otherwise, the drain condition (§4.7) becomes structurally true
// at the end of the cycle in which the last instruction leaves its
// reservation station; Run checks it right after that cycle's tick and
// then counts one more cycle, so the reported total is always one cycle
// past the last cycle that did real work, matching the worked scenarios
// in the testable-properties section.
func (e *Engine) Run() uint64 {
	if e.onlyTrapsOrEmpty() {
		e.cycle = 1
		return 1
	}

	for {
		e.cycle++
		e.tick()
		if e.done() {
			e.cycle++
			return uint64(e.cycle)
		}
	}
}

// onlyTrapsOrEmpty reports whether the trace contains no instruction
// that would ever reach dispatch.
func (e *Engine) onlyTrapsOrEmpty() bool {
	for i := 1; i <= e.tr.NumInsn(); i++ {
		if !e.tr.Get(i).IsTrap() {
			return false
		}
	}
	return true
}

// tick runs one cycle's substages in the fixed order the spec mandates:
// Fetch→Dispatch, Dispatch→Issue, Issue→Execute, Execute→CDB, CDB→Retire.
// The strict-inequality guards within each substage (dispatch_cycle <
// current_cycle, issue_cycle < current_cycle) forbid a same-cycle
// hand-off from dispatch to issue and from issue to execute. A consumer
// woken by a broadcast reaches execute only in the following cycle
// because Issue→Execute runs before Execute→CDB and CDB→Retire here.
func (e *Engine) tick() {
	e.fetchToDispatch()
	e.dispatchToIssue()
	e.issueToExecute()
	e.executeToCDB()
	e.cdbToRetire()
}

// done reports whether the pipeline has fully drained: the IFQ, both
// reservation-station pools, and both functional-unit pools are empty.
// By invariant at that point the CDB is clear and fetch has reached the
// end of the trace.
func (e *Engine) done() bool {
	return e.ifq.empty() &&
		len(e.rsInt.occupants()) == 0 &&
		len(e.rsFP.occupants()) == 0 &&
		e.fuInt.empty() &&
		e.fuFP.empty()
}

// History returns every instruction that ever entered the pipeline, in
// fetch order, for post-run inspection of stage timestamps.
func (e *Engine) History() []*trace.Instruction {
	return e.history
}

// Stats returns aggregate statistics for the run so far. The
// aggregation itself happens in the stats package, not here: core only
// reports the raw counters it recorded while scheduling.
func (e *Engine) Stats() stats.Stats {
	return e.counters.Snapshot(uint64(e.cycle))
}
