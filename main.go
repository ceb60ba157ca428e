// Package main provides a short banner for tomasulo-sim.
//
// For the full CLI, use: go run ./cmd/tomasim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("tomasulo-sim - cycle-accurate Tomasulo dynamic-scheduling simulator")
	fmt.Println("")
	fmt.Println("Usage: tomasim [options] <trace-file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to a functional-unit timing configuration JSON file")
	fmt.Println("  -report    Print a per-instruction stage-timestamp table")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/tomasim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/tomasim' instead.")
	}
}
