package trace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tomasulo-sim/trace"
)

var _ = Describe("Op", func() {
	DescribeTable("category predicates",
		func(op trace.Op, usesInt, usesFP, isBranch, isTrap, writesCDB bool) {
			Expect(op.UsesIntFU()).To(Equal(usesInt))
			Expect(op.UsesFPFU()).To(Equal(usesFP))
			Expect(op.IsBranch()).To(Equal(isBranch))
			Expect(op.IsTrap()).To(Equal(isTrap))
			Expect(op.WritesCDB()).To(Equal(writesCDB))
		},
		Entry("add", trace.OpAdd, true, false, false, false, true),
		Entry("load", trace.OpLoad, true, false, false, false, true),
		Entry("store", trace.OpStore, true, false, false, false, false),
		Entry("fadd", trace.OpFAdd, false, true, false, false, true),
		Entry("beq", trace.OpBeq, false, false, true, false, false),
		Entry("jump", trace.OpJump, false, false, true, false, false),
		Entry("trap", trace.OpTrap, false, false, false, true, false),
		Entry("unknown", trace.OpUnknown, false, false, false, false, false),
	)

	Describe("LookupMnemonic", func() {
		It("resolves a known mnemonic", func() {
			op, ok := trace.LookupMnemonic("add")
			Expect(ok).To(BeTrue())
			Expect(op).To(Equal(trace.OpAdd))
		})

		It("reports false for an unrecognized mnemonic", func() {
			_, ok := trace.LookupMnemonic("nope")
			Expect(ok).To(BeFalse())
		})
	})
})
