package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds the fixed per-cycle latency the engine charges a
// functional unit for each instruction class it executes. The reference
// algorithm only distinguishes integer and floating-point functional
// units, so this config carries exactly those two knobs (fetch,
// dispatch, and issue are always one cycle and are not configurable).
type TimingConfig struct {
	// IntLatency is the number of cycles an integer-class instruction
	// (ALU op, load, store) occupies its functional unit. Default: 4.
	IntLatency uint64 `json:"int_latency"`

	// FPLatency is the number of cycles a floating-point-class
	// instruction occupies its functional unit. Default: 9.
	FPLatency uint64 `json:"fp_latency"`
}

// DefaultTimingConfig returns a TimingConfig matching the reference lab's
// compile-time latency constants.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		IntLatency: 4,
		FPLatency:  9,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields absent from
// the file keep their default value.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timing config %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that both latencies are positive; a zero-cycle
// functional unit would let an instruction broadcast the same cycle it
// enters execute, violating the no-same-cycle-hand-off invariant.
func (c *TimingConfig) Validate() error {
	if c.IntLatency == 0 {
		return fmt.Errorf("int_latency must be > 0")
	}
	if c.FPLatency == 0 {
		return fmt.Errorf("fp_latency must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	return &TimingConfig{
		IntLatency: c.IntLatency,
		FPLatency:  c.FPLatency,
	}
}
