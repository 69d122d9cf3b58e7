package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/isasim/htif"
)

var _ = Describe("Builder", func() {
	It("should attach hooks to the scheduler", func() {
		s, err := MakeBuilder().
			WithMapper(&heapMapper{}).
			WithMemoryMB(1).
			WithHook(NewQuantumLogger(nil)).
			WithHook(hookFunc(func(HookCtx) {})).
			Build()
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		Expect(s.Scheduler().NumHooks()).To(Equal(2))
	})

	It("should hand the launch arguments to the HTIF", func() {
		s, err := MakeBuilder().
			WithMapper(&heapMapper{}).
			WithMemoryMB(1).
			WithArgs([]string{"pk", "hello"}).
			Build()
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		Expect(s.HTIF().(*htif.Controller).Args()).
			To(Equal([]string{"pk", "hello"}))
	})

	It("should not share state between copies", func() {
		base := MakeBuilder().WithMapper(&heapMapper{}).WithMemoryMB(1)
		two := base.WithNumCores(2)

		a, err := base.Build()
		Expect(err).NotTo(HaveOccurred())
		defer a.Close()
		b, err := two.Build()
		Expect(err).NotTo(HaveOccurred())
		defer b.Close()

		Expect(a.NumProcessors()).To(Equal(1))
		Expect(b.NumProcessors()).To(Equal(2))
	})

	It("should keep hooks of sibling builders apart", func() {
		var hitA, hitB int
		noop := hookFunc(func(HookCtx) {})

		base := MakeBuilder().
			WithMapper(&heapMapper{}).
			WithMemoryMB(1).
			WithHook(noop).
			WithHook(noop).
			WithHook(noop)

		a := base.WithHook(hookFunc(func(HookCtx) { hitA++ }))
		base.WithHook(hookFunc(func(HookCtx) { hitB++ }))

		s, err := a.Build()
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		s.Step(Interleave, false)

		Expect(s.Scheduler().NumHooks()).To(Equal(4))
		Expect(hitA).To(BeNumerically(">", 0))
		Expect(hitB).To(BeZero())
	})

	It("should reject a nil mapper", func() {
		_, err := MakeBuilder().WithMapper(nil).Build()

		Expect(err).To(MatchError(ContainSubstring("mapper")))
	})
})
