// Package main provides the entry point for tomasulo-sim's CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/tomasulo-sim/core"
	"github.com/sarchlab/tomasulo-sim/timing/latency"
	"github.com/sarchlab/tomasulo-sim/trace"
)

var (
	configPath = flag.String("config", "", "Path to a functional-unit timing configuration JSON file")
	report     = flag.Bool("report", false, "Print a per-instruction stage-timestamp table after the run")
	ifqSize    = flag.Int("ifq", core.DefaultIFQSize, "Instruction fetch queue capacity")
	rsInt      = flag.Int("rs-int", core.DefaultRSInt, "Integer reservation-station pool size")
	rsFP       = flag.Int("rs-fp", core.DefaultRSFP, "Floating-point reservation-station pool size")
	fuInt      = flag.Int("fu-int", core.DefaultFUInt, "Integer functional-unit pool size")
	fuFP       = flag.Int("fu-fp", core.DefaultFUFP, "Floating-point functional-unit pool size")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tomasim [options] <trace-file>\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	tracePath := flag.Arg(0)

	tr, err := trace.Load(tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
		os.Exit(1)
	}

	timingConfig := latency.DefaultTimingConfig()
	if *configPath != "" {
		timingConfig, err = latency.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timing config: %v\n", err)
			os.Exit(1)
		}
	}
	table := latency.NewTableWithConfig(timingConfig)

	engine := core.New(tr,
		core.WithIFQSize(*ifqSize),
		core.WithReservationStations(*rsInt, *rsFP),
		core.WithFunctionalUnits(*fuInt, *fuFP),
		core.WithLatencyTable(table),
	)

	total := engine.Run()

	fmt.Printf("Total cycles: %d\n", total)

	runStats := engine.Stats()
	fmt.Printf("Retired: %d  CPI: %.3f\n", runStats.Retired, runStats.CPI)
	fmt.Printf("Fetch stalls: %d  Dispatch stalls: %d  Structural stalls: %d\n",
		runStats.FetchStalls, runStats.DispatchStalls, runStats.StructuralStalls)

	if *report {
		printReport(engine, table)
	}
}

func printReport(engine *core.Engine, table *latency.Table) {
	fmt.Printf("\n%-5s %-6s %-6s %-8s %-10s %-6s %-7s %-5s\n",
		"Idx", "Op", "Class", "Fetch", "Dispatch", "Issue", "Execute", "CDB")
	for _, instr := range engine.History() {
		fmt.Printf("%-5d %-6d %-6s %-8d %-10d %-6d %-7d %-5d\n",
			instr.Index, instr.Op, opClass(table, instr), instr.FetchCycle, instr.DispatchCycle,
			instr.IssueCycle, instr.ExecuteCycle, instr.CDBCycle)
	}
}

// opClass reports the category the latency table assigns an
// instruction, for display alongside its stage timestamps.
func opClass(table *latency.Table, instr *trace.Instruction) string {
	switch {
	case table.IsBranchOp(instr):
		return "branch"
	case table.IsLoadOp(instr):
		return "load"
	case table.IsStoreOp(instr):
		return "store"
	case table.IsFPOp(instr):
		return "fp"
	default:
		return "int"
	}
}
