package latency_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tomasulo-sim/timing/latency"
	"github.com/sarchlab/tomasulo-sim/trace"
)

func instr(op trace.Op) *trace.Instruction {
	return &trace.Instruction{Index: 1, Op: op}
}

var _ = Describe("Latency", func() {
	var table *latency.Table

	BeforeEach(func() {
		table = latency.NewTable()
	})

	Describe("Default Timing Values", func() {
		It("should have correct integer latency", func() {
			Expect(table.Config().IntLatency).To(Equal(uint64(4)))
		})

		It("should have correct floating-point latency", func() {
			Expect(table.Config().FPLatency).To(Equal(uint64(9)))
		})
	})

	Describe("Integer Instruction Latencies", func() {
		It("should return IntLatency for add", func() {
			Expect(table.GetLatency(instr(trace.OpAdd))).To(Equal(uint64(4)))
		})

		It("should return IntLatency for sub", func() {
			Expect(table.GetLatency(instr(trace.OpSub))).To(Equal(uint64(4)))
		})

		It("should return IntLatency for a load", func() {
			Expect(table.GetLatency(instr(trace.OpLoad))).To(Equal(uint64(4)))
		})

		It("should return IntLatency for a store", func() {
			Expect(table.GetLatency(instr(trace.OpStore))).To(Equal(uint64(4)))
		})
	})

	Describe("Floating-Point Instruction Latencies", func() {
		It("should return FPLatency for fadd", func() {
			Expect(table.GetLatency(instr(trace.OpFAdd))).To(Equal(uint64(9)))
		})

		It("should return FPLatency for fdiv", func() {
			Expect(table.GetLatency(instr(trace.OpFDiv))).To(Equal(uint64(9)))
		})
	})

	Describe("Branch and Trap Latencies", func() {
		It("should return zero for an unconditional jump", func() {
			Expect(table.GetLatency(instr(trace.OpJump))).To(Equal(uint64(0)))
		})

		It("should return zero for a conditional branch", func() {
			Expect(table.GetLatency(instr(trace.OpBeq))).To(Equal(uint64(0)))
		})

		It("should return zero for a trap", func() {
			Expect(table.GetLatency(instr(trace.OpTrap))).To(Equal(uint64(0)))
		})
	})

	Describe("Instruction Type Detection", func() {
		It("should detect memory operations", func() {
			Expect(table.IsMemoryOp(instr(trace.OpLoad))).To(BeTrue())
			Expect(table.IsMemoryOp(instr(trace.OpStore))).To(BeTrue())
			Expect(table.IsMemoryOp(instr(trace.OpAdd))).To(BeFalse())
		})

		It("should detect load operations", func() {
			Expect(table.IsLoadOp(instr(trace.OpLoad))).To(BeTrue())
			Expect(table.IsLoadOp(instr(trace.OpStore))).To(BeFalse())
		})

		It("should detect store operations", func() {
			Expect(table.IsStoreOp(instr(trace.OpStore))).To(BeTrue())
			Expect(table.IsStoreOp(instr(trace.OpLoad))).To(BeFalse())
		})

		It("should detect branch operations", func() {
			Expect(table.IsBranchOp(instr(trace.OpJump))).To(BeTrue())
			Expect(table.IsBranchOp(instr(trace.OpBeq))).To(BeTrue())
			Expect(table.IsBranchOp(instr(trace.OpAdd))).To(BeFalse())
		})

		It("should detect floating-point operations", func() {
			Expect(table.IsFPOp(instr(trace.OpFMul))).To(BeTrue())
			Expect(table.IsFPOp(instr(trace.OpMul))).To(BeFalse())
		})
	})

	Describe("Nil Instruction Handling", func() {
		It("should return zero latency for a nil instruction", func() {
			Expect(table.GetLatency(nil)).To(Equal(uint64(0)))
		})

		It("should return false for every nil instruction predicate", func() {
			Expect(table.IsMemoryOp(nil)).To(BeFalse())
			Expect(table.IsLoadOp(nil)).To(BeFalse())
			Expect(table.IsStoreOp(nil)).To(BeFalse())
			Expect(table.IsBranchOp(nil)).To(BeFalse())
			Expect(table.IsFPOp(nil)).To(BeFalse())
		})
	})

	Describe("Custom Configuration", func() {
		It("should use custom config values", func() {
			config := &latency.TimingConfig{IntLatency: 2, FPLatency: 6}
			customTable := latency.NewTableWithConfig(config)

			Expect(customTable.GetLatency(instr(trace.OpAdd))).To(Equal(uint64(2)))
			Expect(customTable.GetLatency(instr(trace.OpFAdd))).To(Equal(uint64(6)))
		})
	})
})

var _ = Describe("TimingConfig", func() {
	Describe("Default Config", func() {
		It("should create a valid default config", func() {
			config := latency.DefaultTimingConfig()
			Expect(config.Validate()).To(Succeed())
		})
	})

	Describe("Validation", func() {
		It("should reject zero integer latency", func() {
			config := latency.DefaultTimingConfig()
			config.IntLatency = 0
			Expect(config.Validate()).To(HaveOccurred())
		})

		It("should reject zero floating-point latency", func() {
			config := latency.DefaultTimingConfig()
			config.FPLatency = 0
			Expect(config.Validate()).To(HaveOccurred())
		})
	})

	Describe("Clone", func() {
		It("should create an independent copy", func() {
			original := latency.DefaultTimingConfig()
			clone := original.Clone()

			clone.IntLatency = 100

			Expect(original.IntLatency).To(Equal(uint64(4)))
			Expect(clone.IntLatency).To(Equal(uint64(100)))
		})
	})

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "latency-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load a config", func() {
			original := latency.DefaultTimingConfig()
			original.IntLatency = 5
			original.FPLatency = 11

			path := filepath.Join(tempDir, "timing.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.IntLatency).To(Equal(uint64(5)))
			Expect(loaded.FPLatency).To(Equal(uint64(11)))
		})

		It("should return an error for a non-existent file", func() {
			_, err := latency.LoadConfig("/nonexistent/path/timing.json")
			Expect(err).To(HaveOccurred())
		})

		It("should return an error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			err := os.WriteFile(path, []byte("not valid json"), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = latency.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an invalid loaded config", func() {
			path := filepath.Join(tempDir, "zero.json")
			err := os.WriteFile(path, []byte(`{"int_latency": 0, "fp_latency": 9}`), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = latency.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
